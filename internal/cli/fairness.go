package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llxisdsh/atomwait/internal/harness"
)

// NewFairnessCmd returns the fairness command.
func NewFairnessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fairness",
		Short: "Check that the ticket lock admits goroutines in ticket order",
		RunE: func(cc *cobra.Command, _ []string) error {
			contenders, err := cc.Flags().GetInt("contenders")
			if err != nil {
				return fmt.Errorf("invalid argument: %w", err)
			}

			rep := harness.NewReporter(cc.OutOrStdout())
			if _, err := harness.RunFairness(cc.Context(), harness.FairnessConfig{Contenders: contenders}, rep); err != nil {
				return fmt.Errorf("fairness run: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().Int("contenders", 64, "Goroutines queued behind the lock holder")

	return cmd
}

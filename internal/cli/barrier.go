package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/llxisdsh/atomwait/internal/harness"
)

// NewBarrierCmd returns the barrier command.
func NewBarrierCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "barrier",
		Short: "Meet goroutines at a one-shot barrier and report progress",
		RunE: func(cc *cobra.Command, _ []string) error {
			flags := cc.Flags()

			var merr error

			parties, err := flags.GetInt("parties")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			stagger, err := flags.GetDuration("stagger")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("invalid argument: %w", merr)
			}

			rep := harness.NewReporter(cc.OutOrStdout())
			cfg := harness.BarrierConfig{Parties: parties, Stagger: stagger}
			res, err := harness.RunBarrier(cc.Context(), cfg, rep)
			if err != nil {
				return fmt.Errorf("barrier run: %w", err)
			}

			slog.InfoContext(cc.Context(), "barrier run passed",
				"parties", parties, "transitions", len(res.Transitions))

			return nil
		},
	}

	cmd.Flags().Int("parties", 64, "Number of goroutines meeting at the barrier")
	cmd.Flags().Duration("stagger", 2*time.Millisecond, "Arrival delay step; party i sleeps (parties-i)*stagger")

	return cmd
}

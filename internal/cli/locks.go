package cli

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/llxisdsh/atomwait/internal/harness"
)

// NewLocksCmd returns the locks command.
func NewLocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locks",
		Short: "Time lock/unlock cycles for each lock under varying goroutine counts",
		RunE: func(cc *cobra.Command, _ []string) error {
			flags := cc.Flags()

			var merr error

			locks, err := flags.GetStringSlice("lock")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			threads, err := flags.GetIntSlice("threads")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			sections, err := flags.GetInt("sections")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("invalid argument: %w", merr)
			}

			if len(locks) == 1 && locks[0] == "all" {
				locks = harness.LockerNames()
			}

			rep := harness.NewReporter(cc.OutOrStdout())
			cfg := harness.LockConfig{Locks: locks, Threads: threads, Sections: sections}
			results, err := harness.RunLocks(cc.Context(), cfg, rep)
			if err != nil {
				return fmt.Errorf("lock run: %w", err)
			}

			slog.InfoContext(cc.Context(), "lock runs passed", "runs", len(results))

			return nil
		},
	}

	cmd.Flags().StringSlice("lock", []string{"spin", "ticket"},
		fmt.Sprintf("Locks to time (%v, or all)", harness.LockerNames()))
	cmd.Flags().IntSlice("threads", []int{1, 2, 128, 0}, "Goroutine counts; 0 means GOMAXPROCS")
	cmd.Flags().Int("sections", 1<<20, "Critical sections per run")

	return cmd
}

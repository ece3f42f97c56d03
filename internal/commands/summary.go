package commands

import (
	"github.com/spf13/cobra"

	"github.com/budget-mate/budgetmate/internal/display"
	"github.com/budget-mate/budgetmate/internal/history"
)

func newSummaryCommand(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the current month's budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if all {
				return runSummaryAll(cmd, e)
			}
			return runSummary(cmd, e)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show every saved month")

	return cmd
}

func runSummary(cmd *cobra.Command, e *env) error {
	out := cmd.OutOrStdout()

	rec, ok, err := e.store.Record(e.month)
	if err != nil {
		return err
	}
	if !ok {
		display.NoData(out, e.month)
		return nil
	}

	display.Summary(out, display.SummaryView{
		Month:     e.month,
		LastAdded: lastAdded(e),
		Record:    rec,
	})
	return nil
}

func runSummaryAll(cmd *cobra.Command, e *env) error {
	budget, err := e.store.Load()
	if err != nil {
		return err
	}
	display.Months(cmd.OutOrStdout(), budget)
	return nil
}

// lastAdded returns the most recent increment for the month from history, or 0.
func lastAdded(e *env) int64 {
	if e.cfg.Store.HistoryPath == "" {
		return 0
	}
	entries, err := history.Read(e.cfg.Store.HistoryPath)
	if err != nil {
		e.logger.WithError(err).Warn("failed to read earnings history")
		return 0
	}
	month := history.ForMonth(entries, e.month)
	if len(month) == 0 {
		return 0
	}
	return month[len(month)-1].Amount
}

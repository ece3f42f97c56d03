package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budget-mate/budgetmate/internal/display"
	"github.com/budget-mate/budgetmate/internal/history"
)

func newAddCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <amount>",
		Short: "Add earnings to the current month without the menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runAdd(cmd, e, opts, amount)
		},
	}
}

func runAdd(cmd *cobra.Command, e *env, opts *options, amount int64) error {
	rec, err := e.store.AddEarnings(e.month, amount)
	if err != nil {
		return err
	}

	if path := e.cfg.Store.HistoryPath; path != "" {
		entry := history.NewEntry(opts.now(), e.month, amount, rec.Earnings)
		if err := history.Append(path, []history.Entry{entry}); err != nil {
			e.logger.WithError(err).WithField("path", path).Warn("failed to write earnings history")
		}
	}

	display.Summary(cmd.OutOrStdout(), display.SummaryView{
		Month:     e.month,
		LastAdded: amount,
		Record:    rec,
	})
	return nil
}

// parseAmount accepts a non-negative whole number of dollars.
func parseAmount(s string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || amount < 0 {
		return 0, fmt.Errorf("invalid amount %q: income must be a non-negative whole number", s)
	}
	return amount, nil
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/budget-mate/budgetmate/internal/display"
	"github.com/budget-mate/budgetmate/internal/history"
)

func newHistoryCommand(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List earnings added to the current month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}

			entries, err := history.Read(e.cfg.Store.HistoryPath)
			if err != nil {
				return err
			}

			title := "all months"
			if !all {
				title = e.month
				entries = history.ForMonth(entries, e.month)
			}
			display.History(cmd.OutOrStdout(), title, entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every month")

	return cmd
}

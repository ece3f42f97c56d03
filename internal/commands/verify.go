package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budget-mate/budgetmate/internal/allocator"
)

func newVerifyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check saved allocations against the 50/30/20 rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}

			budget, err := e.store.Load()
			if err != nil {
				return err
			}

			errs := allocator.FiftyThirtyTwenty.Check(budget)
			out := cmd.OutOrStdout()
			if len(errs) == 0 {
				fmt.Fprintf(out, "%d month(s) OK in %s\n", len(budget), e.store.Path())
				return nil
			}
			for _, v := range errs {
				fmt.Fprintln(out, v.Error())
			}
			return fmt.Errorf("%d problem(s) found in %s", len(errs), e.store.Path())
		},
	}
}

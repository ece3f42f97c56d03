package allocator

import (
	"fmt"

	"github.com/budget-mate/budgetmate/internal/model"
	"github.com/budget-mate/budgetmate/internal/month"
)

// Violation describes one saved record that disagrees with the rule.
type Violation struct {
	Month       string
	Description string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Month, v.Description)
}

// Check reports every record in budget whose allocations or percentages
// differ from what the rule would produce for its earnings. Months are
// visited in chronological order.
func (r Rule) Check(budget model.Budget) []Violation {
	var errs []Violation

	labels := budget.Months()
	month.Sort(labels)

	for _, label := range labels {
		rec := budget[label]

		if _, err := month.Parse(label); err != nil {
			errs = append(errs, Violation{Month: label, Description: "key is not a month label"})
		}

		if rec.Earnings < 0 {
			errs = append(errs, Violation{
				Month:       label,
				Description: fmt.Sprintf("earnings %d are negative", rec.Earnings),
			})
			continue
		}

		want := r.Allocate(rec.Earnings)
		for _, c := range model.Categories {
			if got := rec.Allocations.Get(c); got != want.Get(c) {
				errs = append(errs, Violation{
					Month:       label,
					Description: fmt.Sprintf("%s allocation %d, want %d for earnings %d", c, got, want.Get(c), rec.Earnings),
				})
			}
		}

		pct := r.Percentages()
		for _, c := range model.Categories {
			if got := rec.Percentages.Get(c); got != pct.Get(c) {
				errs = append(errs, Violation{
					Month:       label,
					Description: fmt.Sprintf("%s percentage %g, want %g", c, got, pct.Get(c)),
				})
			}
		}
	}

	return errs
}

package model

// Category is one bucket of the 50/30/20 split.
type Category string

const (
	CategoryDebt  Category = "debt"
	CategoryNeeds Category = "needs"
	CategoryWants Category = "wants"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryDebt, CategoryNeeds, CategoryWants}

// Allocations holds the whole-dollar amount assigned to each category.
type Allocations struct {
	Debt  int64 `json:"debt"`
	Needs int64 `json:"needs"`
	Wants int64 `json:"wants"`
}

// Get returns the allocation for a category, or 0 for an unknown one.
func (a Allocations) Get(c Category) int64 {
	switch c {
	case CategoryDebt:
		return a.Debt
	case CategoryNeeds:
		return a.Needs
	case CategoryWants:
		return a.Wants
	default:
		return 0
	}
}

// Total returns the sum of all category allocations.
func (a Allocations) Total() int64 {
	return a.Debt + a.Needs + a.Wants
}

// Percentages holds the fraction of earnings assigned to each category.
// Kept as float64 so the JSON file carries plain numbers (0.5, 0.3, 0.2).
type Percentages struct {
	Debt  float64 `json:"debt"`
	Needs float64 `json:"needs"`
	Wants float64 `json:"wants"`
}

// Get returns the fraction for a category, or 0 for an unknown one.
func (p Percentages) Get(c Category) float64 {
	switch c {
	case CategoryDebt:
		return p.Debt
	case CategoryNeeds:
		return p.Needs
	case CategoryWants:
		return p.Wants
	default:
		return 0
	}
}

// Record is one month's entry in monthly_budget.json.
type Record struct {
	Earnings    int64       `json:"earnings"`
	Allocations Allocations `json:"allocations"`
	Percentages Percentages `json:"percentages"`
}

// Budget maps a month label ("June 2024") to its record.
type Budget map[string]Record

// Months returns the month labels present in the budget, in no particular order.
func (b Budget) Months() []string {
	months := make([]string, 0, len(b))
	for m := range b {
		months = append(months, m)
	}
	return months
}

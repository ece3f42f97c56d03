package allocator

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/budget-mate/budgetmate/internal/model"
)

var (
	// ErrNegativeAmount is returned when crediting a negative earnings amount.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrOverflow is returned when a credit would overflow the earnings total.
	ErrOverflow = errors.New("earnings total overflows")
)

// Rule is a three-way split of earnings across the budget categories.
type Rule struct {
	Debt  decimal.Decimal
	Needs decimal.Decimal
	Wants decimal.Decimal
}

// FiftyThirtyTwenty is the fixed 50% debt / 30% needs / 20% wants rule.
var FiftyThirtyTwenty = Rule{
	Debt:  decimal.RequireFromString("0.50"),
	Needs: decimal.RequireFromString("0.30"),
	Wants: decimal.RequireFromString("0.20"),
}

// Validate checks each fraction lies in [0, 1] and that they sum to exactly 1.
func (r Rule) Validate() error {
	one := decimal.NewFromInt(1)
	for _, c := range model.Categories {
		f := r.fraction(c)
		if f.IsNegative() || f.GreaterThan(one) {
			return fmt.Errorf("%s fraction %s out of range [0, 1]", c, f)
		}
	}
	sum := r.Debt.Add(r.Needs).Add(r.Wants)
	if !sum.Equal(one) {
		return fmt.Errorf("fractions sum to %s, want 1", sum)
	}
	return nil
}

// Allocate splits total across the categories. Each share is
// floor(total * fraction), so the shares never exceed total.
func (r Rule) Allocate(total int64) model.Allocations {
	t := decimal.NewFromInt(total)
	return model.Allocations{
		Debt:  t.Mul(r.Debt).Floor().IntPart(),
		Needs: t.Mul(r.Needs).Floor().IntPart(),
		Wants: t.Mul(r.Wants).Floor().IntPart(),
	}
}

// Percentages returns the rule in the form stored alongside each record.
func (r Rule) Percentages() model.Percentages {
	return model.Percentages{
		Debt:  r.Debt.InexactFloat64(),
		Needs: r.Needs.InexactFloat64(),
		Wants: r.Wants.InexactFloat64(),
	}
}

// Credit returns rec with amount added to its earnings. Allocations are
// recomputed from the new total and percentages are rewritten from the rule.
func (r Rule) Credit(rec model.Record, amount int64) (model.Record, error) {
	if amount < 0 {
		return rec, fmt.Errorf("crediting %d: %w", amount, ErrNegativeAmount)
	}
	if rec.Earnings > math.MaxInt64-amount {
		return rec, fmt.Errorf("crediting %d to %d: %w", amount, rec.Earnings, ErrOverflow)
	}

	total := rec.Earnings + amount
	return model.Record{
		Earnings:    total,
		Allocations: r.Allocate(total),
		Percentages: r.Percentages(),
	}, nil
}

func (r Rule) fraction(c model.Category) decimal.Decimal {
	switch c {
	case model.CategoryDebt:
		return r.Debt
	case model.CategoryNeeds:
		return r.Needs
	default:
		return r.Wants
	}
}

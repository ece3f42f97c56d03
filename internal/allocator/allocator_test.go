package allocator

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-mate/budgetmate/internal/model"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		total int64
		want  model.Allocations
	}{
		{0, model.Allocations{}},
		{1, model.Allocations{Debt: 0, Needs: 0, Wants: 0}},
		{3, model.Allocations{Debt: 1, Needs: 0, Wants: 0}},
		{800, model.Allocations{Debt: 400, Needs: 240, Wants: 160}},
		{999, model.Allocations{Debt: 499, Needs: 299, Wants: 199}},
		{1000, model.Allocations{Debt: 500, Needs: 300, Wants: 200}},
		{1234, model.Allocations{Debt: 617, Needs: 370, Wants: 246}},
	}
	for _, tt := range tests {
		got := FiftyThirtyTwenty.Allocate(tt.total)
		assert.Equal(t, tt.want, got, "Allocate(%d)", tt.total)
	}
}

func TestAllocate_NeverOverAllocates(t *testing.T) {
	check := func(e int64) {
		got := FiftyThirtyTwenty.Allocate(e)
		assert.LessOrEqual(t, got.Total(), e, "total for %d", e)
		// Integer forms of floor(e*0.5), floor(e*0.3), floor(e*0.2).
		assert.Equal(t, e/2, got.Debt, "debt for %d", e)
		assert.Equal(t, e*3/10, got.Needs, "needs for %d", e)
		assert.Equal(t, e/5, got.Wants, "wants for %d", e)
	}

	for e := int64(0); e <= 5000; e++ {
		check(e)
	}
	for _, e := range []int64{123_456_789, 1_000_000_007, 3_000_000_000_000_000} {
		check(e)
	}
}

func TestAllocate_LargeTotal(t *testing.T) {
	got := FiftyThirtyTwenty.Allocate(math.MaxInt64)
	assert.Equal(t, int64(math.MaxInt64/2), got.Debt)
	assert.LessOrEqual(t, got.Debt+got.Needs, int64(math.MaxInt64)-got.Wants)
}

func TestValidate(t *testing.T) {
	require.NoError(t, FiftyThirtyTwenty.Validate())

	bad := Rule{
		Debt:  decimal.RequireFromString("0.5"),
		Needs: decimal.RequireFromString("0.3"),
		Wants: decimal.RequireFromString("0.3"),
	}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.1")

	negative := Rule{
		Debt:  decimal.RequireFromString("1.2"),
		Needs: decimal.RequireFromString("-0.2"),
		Wants: decimal.Zero,
	}
	err = negative.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestPercentages(t *testing.T) {
	p := FiftyThirtyTwenty.Percentages()
	assert.Equal(t, model.Percentages{Debt: 0.5, Needs: 0.3, Wants: 0.2}, p)
}

func TestCredit_NewRecord(t *testing.T) {
	rec, err := FiftyThirtyTwenty.Credit(model.Record{}, 1000)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), rec.Earnings)
	assert.Equal(t, model.Allocations{Debt: 500, Needs: 300, Wants: 200}, rec.Allocations)
	assert.Equal(t, model.Percentages{Debt: 0.5, Needs: 0.3, Wants: 0.2}, rec.Percentages)
}

func TestCredit_Cumulative(t *testing.T) {
	twice, err := FiftyThirtyTwenty.Credit(model.Record{}, 500)
	require.NoError(t, err)
	twice, err = FiftyThirtyTwenty.Credit(twice, 300)
	require.NoError(t, err)

	once, err := FiftyThirtyTwenty.Credit(model.Record{}, 800)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, model.Allocations{Debt: 400, Needs: 240, Wants: 160}, twice.Allocations)
}

func TestCredit_RecomputesFromScratch(t *testing.T) {
	// Allocations that drifted from the invariant are replaced, not adjusted.
	stale := model.Record{
		Earnings:    101,
		Allocations: model.Allocations{Debt: 1, Needs: 1, Wants: 1},
	}
	rec, err := FiftyThirtyTwenty.Credit(stale, 0)
	require.NoError(t, err)
	assert.Equal(t, model.Allocations{Debt: 50, Needs: 30, Wants: 20}, rec.Allocations)
	assert.Equal(t, FiftyThirtyTwenty.Percentages(), rec.Percentages)
}

func TestCredit_Negative(t *testing.T) {
	orig := model.Record{Earnings: 100}
	rec, err := FiftyThirtyTwenty.Credit(orig, -50)
	require.ErrorIs(t, err, ErrNegativeAmount)
	assert.Equal(t, orig, rec)
}

func TestCredit_Overflow(t *testing.T) {
	orig := model.Record{Earnings: math.MaxInt64 - 10}
	_, err := FiftyThirtyTwenty.Credit(orig, 11)
	require.ErrorIs(t, err, ErrOverflow)

	rec, err := FiftyThirtyTwenty.Credit(orig, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), rec.Earnings)
}

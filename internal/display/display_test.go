package display

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/budget-mate/budgetmate/internal/history"
	"github.com/budget-mate/budgetmate/internal/model"
)

func juneRecord() model.Record {
	return model.Record{
		Earnings:    800,
		Allocations: model.Allocations{Debt: 400, Needs: 240, Wants: 160},
		Percentages: model.Percentages{Debt: 0.5, Needs: 0.3, Wants: 0.2},
	}
}

func TestFormatDollars(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{5, "$5"},
		{999, "$999"},
		{1000, "$1,000"},
		{123456, "$123,456"},
		{1234567, "$1,234,567"},
		{-2500, "-$2,500"},
		{-7, "-$7"},
		{math.MaxInt64, "$9,223,372,036,854,775,807"},
		{math.MinInt64, "-$9,223,372,036,854,775,808"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDollars(tt.in), "FormatDollars(%d)", tt.in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50%", FormatPercent(0.5))
	assert.Equal(t, "30%", FormatPercent(0.3))
	assert.Equal(t, "20%", FormatPercent(0.2))
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, SummaryView{Month: "June 2024", LastAdded: 300, Record: juneRecord()})
	out := buf.String()

	assert.Contains(t, out, "Budget-Mate Summary Results")
	assert.Contains(t, out, "Added Earnings Amount")
	assert.Contains(t, out, "$300")
	assert.Contains(t, out, "Earnings Total for June 2024")
	assert.Contains(t, out, "$800")
	assert.Contains(t, out, "Debt Allocation (50%)")
	assert.Contains(t, out, "$400")
	assert.Contains(t, out, "Needs Allocation (30%)")
	assert.Contains(t, out, "$240")
	assert.Contains(t, out, "Wants Allocation (20%)")
	assert.Contains(t, out, "$160")
}

func TestNoData(t *testing.T) {
	var buf bytes.Buffer
	NoData(&buf, "June 2024")
	assert.Contains(t, buf.String(), "No saved budget found for June 2024 yet.")
	assert.Contains(t, buf.String(), "Choose option 1")
}

func TestMonths(t *testing.T) {
	budget := model.Budget{
		"July 2024": {Earnings: 2000, Allocations: model.Allocations{Debt: 1000, Needs: 600, Wants: 400}},
		"June 2024": juneRecord(),
	}

	var buf bytes.Buffer
	Months(&buf, budget)
	out := buf.String()

	assert.Contains(t, out, "$2,000")
	june := strings.Index(out, "June 2024")
	july := strings.Index(out, "July 2024")
	assert.Positive(t, june)
	assert.Greater(t, july, june, "months should be listed chronologically")
}

func TestMonths_Empty(t *testing.T) {
	var buf bytes.Buffer
	Months(&buf, model.Budget{})
	assert.Contains(t, buf.String(), "No saved budgets yet.")
}

func TestHistory(t *testing.T) {
	ts := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	entries := []history.Entry{
		history.NewEntry(ts, "June 2024", 500, 500),
		history.NewEntry(ts.Add(time.Hour), "June 2024", 1300, 1800),
	}

	var buf bytes.Buffer
	History(&buf, "June 2024", entries)
	out := buf.String()

	assert.Contains(t, out, "History: June 2024")
	assert.Contains(t, out, "$500")
	assert.Contains(t, out, "$1,300")
	assert.Contains(t, out, "$1,800")
}

func TestHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	History(&buf, "June 2024", nil)
	assert.Contains(t, buf.String(), "No earnings recorded for June 2024 yet.")
}

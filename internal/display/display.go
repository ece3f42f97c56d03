// Package display renders budget summaries and history for the terminal.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/budget-mate/budgetmate/internal/history"
	"github.com/budget-mate/budgetmate/internal/model"
	"github.com/budget-mate/budgetmate/internal/month"
)

// Colors (Flexoki Dark)
var (
	colorBorder    = lipgloss.Color("#575653")
	colorText      = lipgloss.Color("#FFFCF0")
	colorTextMuted = lipgloss.Color("#878580")
	colorAccent    = lipgloss.Color("#3AA99F")
	colorGreen     = lipgloss.Color("#879A39")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	amountStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Padding(0, 1).
			Align(lipgloss.Right)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorBorder)
)

// SummaryView is everything shown in a month summary.
type SummaryView struct {
	Month     string
	LastAdded int64
	Record    model.Record
}

// Summary renders the month's earnings and per-category allocations.
func Summary(w io.Writer, v SummaryView) {
	rows := [][]string{
		{"Added Earnings Amount", FormatDollars(v.LastAdded)},
		{"Earnings Total for " + v.Month, FormatDollars(v.Record.Earnings)},
	}
	for _, c := range model.Categories {
		label := fmt.Sprintf("%s Allocation (%s)", categoryTitle(c), FormatPercent(v.Record.Percentages.Get(c)))
		rows = append(rows, []string{label, FormatDollars(v.Record.Allocations.Get(c))})
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("---Budget-Mate Summary Results---"))
	fmt.Fprintln(w, newTable([]string{"Item", "Amount"}, rows).String())
}

// NoData prints the message shown when a month has no saved record.
func NoData(w io.Writer, monthLabel string) {
	fmt.Fprintf(w, "\nNo saved budget found for %s yet.\n", monthLabel)
	fmt.Fprintln(w, mutedStyle.Render("Choose option 1 to add earnings first."))
}

// Months renders every stored month in chronological order.
func Months(w io.Writer, budget model.Budget) {
	if len(budget) == 0 {
		fmt.Fprintln(w, "\nNo saved budgets yet.")
		return
	}

	labels := budget.Months()
	month.Sort(labels)

	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		rec := budget[label]
		rows = append(rows, []string{
			label,
			FormatDollars(rec.Earnings),
			FormatDollars(rec.Allocations.Debt),
			FormatDollars(rec.Allocations.Needs),
			FormatDollars(rec.Allocations.Wants),
		})
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("---Budget-Mate Monthly Budgets---"))
	fmt.Fprintln(w, newTable([]string{"Month", "Earnings", "Debt", "Needs", "Wants"}, rows).String())
}

// History renders earnings increments. title names the month or "all months".
func History(w io.Writer, title string, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "\nNo earnings recorded for %s yet.\n", title)
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			e.Month,
			FormatDollars(e.Amount),
			FormatDollars(e.Total),
		})
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("---Budget-Mate History: "+title+"---"))
	fmt.Fprintln(w, newTable([]string{"Added At", "Month", "Amount", "Month Total"}, rows).String())
}

// FormatDollars formats whole dollars with comma separators.
// e.g., 1234567 -> "$1,234,567"
func FormatDollars(n int64) string {
	var b strings.Builder

	// The magnitude goes through uint64 so math.MinInt64 does not overflow.
	mag := uint64(n)
	if n < 0 {
		b.WriteByte('-')
		mag = -mag
	}

	s := strconv.FormatUint(mag, 10)
	b.WriteByte('$')
	if len(s) <= 3 {
		b.WriteString(s)
		return b.String()
	}

	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPercent formats a 0-1 fraction as a whole percentage.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

func categoryTitle(c model.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// newTable builds a rounded table whose first column is a label and the rest are amounts.
func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			default:
				return amountStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)
}

package month

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// LabelFormat is the layout of a month label, e.g. "June 2024".
const LabelFormat = "January 2006"

// DefaultPayDayOffset biases a late-month pay date into the following month.
const DefaultPayDayOffset = 3

// Label returns the month label for t shifted by offsetDays.
func Label(t time.Time, offsetDays int) string {
	return t.AddDate(0, 0, offsetDays).Format(LabelFormat)
}

// Parse parses a month label like "June 2024" into the first day of that month (UTC).
func Parse(label string) (time.Time, error) {
	t, err := time.Parse(LabelFormat, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month label %q: %w", label, err)
	}
	return t, nil
}

// Normalize parses label and returns it in canonical form, so "june 2024"
// and "JUNE 2024" both become "June 2024".
func Normalize(label string) (string, error) {
	t, err := Parse(strings.TrimSpace(label))
	if err != nil {
		return "", err
	}
	return t.Format(LabelFormat), nil
}

// Sort orders labels chronologically in place.
// Labels that do not parse sort after all valid ones, alphabetically.
func Sort(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		ti, erri := Parse(labels[i])
		tj, errj := Parse(labels[j])
		switch {
		case erri == nil && errj == nil:
			return ti.Before(tj)
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return labels[i] < labels[j]
		}
	})
}

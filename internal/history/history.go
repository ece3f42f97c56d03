package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPath is the history file used when nothing else is configured.
const DefaultPath = "budget_history.csv"

// Header is the CSV header for the history file.
const Header = "id,timestamp,month,amount,earnings_total"

const (
	numFields    = 5
	colID        = 0
	colTimestamp = 1
	colMonth     = 2
	colAmount    = 3
	colTotal     = 4
)

// Entry records one accepted earnings increment.
type Entry struct {
	ID        string
	Timestamp time.Time
	Month     string
	Amount    int64
	Total     int64 // month earnings after the increment
}

// NewEntry returns an Entry with a fresh ID.
func NewEntry(ts time.Time, month string, amount, total int64) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: ts,
		Month:     month,
		Amount:    amount,
		Total:     total,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colMonth] = e.Month
	row[colAmount] = strconv.FormatInt(e.Amount, 10)
	row[colTotal] = strconv.FormatInt(e.Total, 10)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if _, err := uuid.Parse(record[colID]); err != nil {
		return Entry{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	amount, err := strconv.ParseInt(record[colAmount], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	total, err := strconv.ParseInt(record[colTotal], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing earnings_total %q: %w", record[colTotal], err)
	}

	return Entry{
		ID:        record[colID],
		Timestamp: ts,
		Month:     record[colMonth],
		Amount:    amount,
		Total:     total,
	}, nil
}

// Append writes entries to the history file at path, creating it and the header if needed.
func Append(path string, entries []Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating history dir: %w", err)
		}
	}

	needsHeader := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries in the history file at path.
// Returns nil if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

// ForMonth returns the entries recorded against month, in file order.
func ForMonth(entries []Entry, month string) []Entry {
	var result []Entry
	for _, e := range entries {
		if e.Month == month {
			result = append(result, e)
		}
	}
	return result
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading history CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

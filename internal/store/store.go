package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/budget-mate/budgetmate/internal/allocator"
	"github.com/budget-mate/budgetmate/internal/model"
)

// DefaultPath is the store file used when nothing else is configured.
const DefaultPath = "monthly_budget.json"

const indent = "    "

// Store reads and writes the monthly budget JSON file.
// It does no locking; concurrent writers race and the last one wins.
type Store struct {
	path   string
	rule   allocator.Rule
	logger *logrus.Logger
}

// New creates a Store backed by the file at path.
func New(path string, rule allocator.Rule, logger *logrus.Logger) *Store {
	return &Store{path: path, rule: rule, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole budget. A missing file or contents that do not decode
// yield an empty budget; only real read failures are returned.
func (s *Store) Load() (model.Budget, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Budget{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading budget %s: %w", s.path, err)
	}

	var budget model.Budget
	if err := json.Unmarshal(data, &budget); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Warn("budget file is not valid JSON, starting empty")
		return model.Budget{}, nil
	}
	if budget == nil {
		budget = model.Budget{}
	}
	return budget, nil
}

// Save overwrites the file with the full budget.
func (s *Store) Save(budget model.Budget) error {
	if budget == nil {
		budget = model.Budget{}
	}

	data, err := json.MarshalIndent(budget, "", indent)
	if err != nil {
		return fmt.Errorf("marshaling budget: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating budget dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing budget %s: %w", s.path, err)
	}

	s.logger.WithFields(logrus.Fields{"path": s.path, "months": len(budget)}).Debug("saved budget")
	return nil
}

// Record reloads the budget and returns the record for month.
func (s *Store) Record(month string) (model.Record, bool, error) {
	budget, err := s.Load()
	if err != nil {
		return model.Record{}, false, err
	}
	rec, ok := budget[month]
	return rec, ok, nil
}

// AddEarnings credits amount to month's record, creating it if needed, and
// persists the result. The file is left untouched when the credit is rejected.
func (s *Store) AddEarnings(month string, amount int64) (model.Record, error) {
	budget, err := s.Load()
	if err != nil {
		return model.Record{}, err
	}

	rec, err := s.rule.Credit(budget[month], amount)
	if err != nil {
		return model.Record{}, fmt.Errorf("adding earnings to %s: %w", month, err)
	}
	budget[month] = rec

	if err := s.Save(budget); err != nil {
		return model.Record{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"month":    month,
		"amount":   amount,
		"earnings": rec.Earnings,
	}).Info("added earnings")
	return rec, nil
}

// Package session runs the interactive Budget-Mate menu loop.
//
// The loop is a small state machine: the menu dispatches to adding earnings
// or showing the month summary and always comes back, until the user exits
// or input ends. Every accepted add is persisted immediately, so exiting
// never needs to save.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/budget-mate/budgetmate/internal/display"
	"github.com/budget-mate/budgetmate/internal/history"
	"github.com/budget-mate/budgetmate/internal/store"
)

type choice int

const (
	choiceAdd choice = iota + 1
	choiceSummary
	choiceExit
)

const (
	msgInvalidChoice = "\nInvalid input! Enter 1, 2, or 3."
	msgInvalidOption = "\nInvalid option! Enter 1, 2, or 3."
	msgInvalidAmount = "\nInvalid input! Income must be positive whole number."
	msgInvalidYesNo  = "\nInvalid input! Please enter 'y' or 'n'."
)

// Options configures a Session.
type Options struct {
	In          io.Reader
	Out         io.Writer
	Store       *store.Store
	HistoryPath string // empty disables the history log
	Month       string
	Now         func() time.Time
	Logger      *logrus.Logger
}

// Session is one run of the interactive menu against a single month.
type Session struct {
	in          *bufio.Reader
	out         io.Writer
	store       *store.Store
	historyPath string
	month       string
	now         func() time.Time
	logger      *logrus.Logger
	lastAdded   int64
}

// New creates a Session. Now defaults to time.Now.
func New(opts Options) *Session {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		in:          bufio.NewReader(opts.In),
		out:         opts.Out,
		store:       opts.Store,
		historyPath: opts.HistoryPath,
		month:       opts.Month,
		now:         now,
		logger:      opts.Logger,
	}
}

// Month returns the month label the session records against.
func (s *Session) Month() string {
	return s.month
}

// LastAdded returns the total of the most recent add in this session.
func (s *Session) LastAdded() int64 {
	return s.lastAdded
}

// Run drives the menu until the user exits or input ends. Only storage
// failures are returned; bad input is re-prompted.
func (s *Session) Run() error {
	s.greet()

	for {
		s.showMenu()
		c, err := s.readChoice()
		if errors.Is(err, io.EOF) {
			s.exit()
			return nil
		}
		if err != nil {
			return err
		}

		switch c {
		case choiceAdd:
			if err := s.addEarnings(); err != nil {
				if errors.Is(err, io.EOF) {
					s.exit()
					return nil
				}
				return err
			}
			if err := s.showSummary(); err != nil {
				return err
			}
		case choiceSummary:
			if err := s.showSummary(); err != nil {
				return err
			}
		case choiceExit:
			s.exit()
			return nil
		}
	}
}

func (s *Session) greet() {
	fmt.Fprintln(s.out, "\nWelcome to Budget-Mate: A Program Designed Around Money Management")
}

func (s *Session) showMenu() {
	fmt.Fprint(s.out, "\n--- BUDGET-MATE MENU ---"+
		"\n1. Add earnings"+
		"\n2. View Budget Mate summary"+
		"\n3. Exit\n")
}

func (s *Session) exit() {
	fmt.Fprintln(s.out, "\nExiting Budget-Mate...")
}

func (s *Session) readChoice() (choice, error) {
	for {
		line, err := s.prompt("Select an option: ")
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, msgInvalidChoice)
			continue
		}

		c := choice(n)
		switch c {
		case choiceAdd, choiceSummary, choiceExit:
			return c, nil
		default:
			fmt.Fprintln(s.out, msgInvalidOption)
		}
	}
}

// addEarnings collects one or more amounts and applies their sum as a single
// increment to the month's record.
func (s *Session) addEarnings() error {
	total, err := s.collectEarnings()
	if err != nil {
		return err
	}

	rec, err := s.store.AddEarnings(s.month, total)
	if err != nil {
		return err
	}
	s.lastAdded = total

	if s.historyPath != "" {
		entry := history.NewEntry(s.now(), s.month, total, rec.Earnings)
		if err := history.Append(s.historyPath, []history.Entry{entry}); err != nil {
			s.logger.WithError(err).WithField("path", s.historyPath).Warn("failed to write earnings history")
		}
	}
	return nil
}

func (s *Session) collectEarnings() (int64, error) {
	var total int64

	for {
		line, err := s.prompt("\nEnter an income amount you'd like to add: $")
		if err != nil {
			return 0, err
		}

		amount, err := strconv.ParseInt(line, 10, 64)
		if err != nil || amount < 0 || total > math.MaxInt64-amount {
			fmt.Fprintln(s.out, msgInvalidAmount)
			continue
		}
		total += amount

		more, err := s.askMore()
		if err != nil {
			return 0, err
		}
		if !more {
			return total, nil
		}
	}
}

func (s *Session) askMore() (bool, error) {
	for {
		line, err := s.prompt("Would you like to enter more earnings for this month? [y/n] ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			fmt.Fprintln(s.out, msgInvalidYesNo)
		}
	}
}

// showSummary reloads the store so it reflects what is on disk.
func (s *Session) showSummary() error {
	rec, ok, err := s.store.Record(s.month)
	if err != nil {
		return err
	}
	if !ok {
		display.NoData(s.out, s.month)
		return nil
	}

	display.Summary(s.out, display.SummaryView{
		Month:     s.month,
		LastAdded: s.lastAdded,
		Record:    rec,
	})
	return nil
}

// prompt writes text and returns the next trimmed input line, whatever its
// length. A final line without a newline is still returned.
// Returns io.EOF when input is exhausted.
func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

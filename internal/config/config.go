package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/budget-mate/budgetmate/internal/history"
	"github.com/budget-mate/budgetmate/internal/logging"
	"github.com/budget-mate/budgetmate/internal/month"
	"github.com/budget-mate/budgetmate/internal/store"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "budgetmate.yaml"

// Environment variables that override the config file.
const (
	EnvStorePath    = "BUDGETMATE_FILE"
	EnvHistoryPath  = "BUDGETMATE_HISTORY"
	EnvPayDayOffset = "BUDGETMATE_PAYDAY_OFFSET_DAYS"
	EnvLogLevel     = "BUDGETMATE_LOG_LEVEL"
)

const (
	minPayDayOffset = -31
	maxPayDayOffset = 31
)

// Config represents the budgetmate.yaml configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	PayDay PayDayConfig `yaml:"payday"`
	Log    LogConfig    `yaml:"log"`
}

// StoreConfig locates the files budgetmate reads and writes.
type StoreConfig struct {
	Path        string `yaml:"path"`
	HistoryPath string `yaml:"history_path"`
}

// PayDayConfig controls how the current month label is derived.
type PayDayConfig struct {
	OffsetDays int `yaml:"offset_days"` // days added to today before formatting the month
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config matching the tool's out-of-the-box behavior.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path:        store.DefaultPath,
			HistoryPath: history.DefaultPath,
		},
		PayDay: PayDayConfig{
			OffsetDays: month.DefaultPayDayOffset,
		},
		Log: LogConfig{
			Level: logging.DefaultLevel,
		},
	}
}

// Load reads a budgetmate.yaml file from disk. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, returning defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// EnvFile is the optional dotenv file read from the working directory.
const EnvFile = ".env"

// LoadEnvFile loads the dotenv file at path into the environment. A missing
// file is not an error. Variables already set in the environment win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any BUDGETMATE_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvStorePath); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv(EnvHistoryPath); v != "" {
		c.Store.HistoryPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvPayDayOffset); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", EnvPayDayOffset, v, err)
		}
		c.PayDay.OffsetDays = n
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Store.Path == "" {
		problems = append(problems, "store.path must not be empty")
	}
	if c.PayDay.OffsetDays < minPayDayOffset || c.PayDay.OffsetDays > maxPayDayOffset {
		problems = append(problems, fmt.Sprintf("payday.offset_days %d must be between %d and %d",
			c.PayDay.OffsetDays, minPayDayOffset, maxPayDayOffset))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level %q is not a valid level", c.Log.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

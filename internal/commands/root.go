package commands

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/budget-mate/budgetmate/internal/allocator"
	"github.com/budget-mate/budgetmate/internal/buildinfo"
	"github.com/budget-mate/budgetmate/internal/config"
	"github.com/budget-mate/budgetmate/internal/logging"
	"github.com/budget-mate/budgetmate/internal/month"
	"github.com/budget-mate/budgetmate/internal/session"
	"github.com/budget-mate/budgetmate/internal/store"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath  string
	storePath   string
	historyPath string
	month       string
	now         func() time.Time
}

// env is everything a command needs, built from config, environment and flags.
type env struct {
	cfg    *config.Config
	logger *logrus.Logger
	store  *store.Store
	month  string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it starts the interactive menu.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&options{now: time.Now})
}

func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "budgetmate",
		Short:   "Split monthly income with the 50/30/20 budget rule",
		Long:    "Budget-Mate tracks this month's earnings and splits them 50% debt, 30% needs and 20% wants.",
		Version: buildinfo.String(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			s := session.New(session.Options{
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
				Store:       e.store,
				HistoryPath: e.cfg.Store.HistoryPath,
				Month:       e.month,
				Now:         opts.now,
				Logger:      e.logger,
			})
			return s.Run()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "config file")
	flags.StringVar(&opts.storePath, "file", "", "budget JSON file (overrides config)")
	flags.StringVar(&opts.historyPath, "history", "", "earnings history CSV file (overrides config)")
	flags.StringVar(&opts.month, "month", "", `month label to record against, e.g. "June 2024" (default: current pay month)`)

	rootCmd.AddCommand(newAddCommand(opts))
	rootCmd.AddCommand(newSummaryCommand(opts))
	rootCmd.AddCommand(newHistoryCommand(opts))
	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newVerifyCommand(opts))

	return rootCmd
}

// load resolves configuration in order: defaults, config file, environment, flags.
func (o *options) load(cmd *cobra.Command) (*env, error) {
	envErr := config.LoadEnvFile(config.EnvFile)

	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if o.storePath != "" {
		cfg.Store.Path = o.storePath
	}
	if o.historyPath != "" {
		cfg.Store.HistoryPath = o.historyPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if envErr != nil {
		logger.WithError(envErr).Warn("could not load .env file")
	}

	rule := allocator.FiftyThirtyTwenty
	if err := rule.Validate(); err != nil {
		return nil, fmt.Errorf("budget rule: %w", err)
	}

	label := month.Label(o.now(), cfg.PayDay.OffsetDays)
	if o.month != "" {
		if label, err = month.Normalize(o.month); err != nil {
			return nil, err
		}
	}

	logger.WithFields(logrus.Fields{
		"store": cfg.Store.Path,
		"month": label,
	}).Debug("budgetmate ready")

	return &env{
		cfg:    cfg,
		logger: logger,
		store:  store.New(cfg.Store.Path, rule, logger),
		month:  label,
	}, nil
}

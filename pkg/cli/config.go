package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/cortex/pkg/repository"
	"github.com/m-mizutani/cortex/pkg/usecase/advice"
	"github.com/m-mizutani/cortex/pkg/usecase/prefs"
	"github.com/m-mizutani/cortex/pkg/usecase/reminder"
	"github.com/m-mizutani/cortex/pkg/usecase/task"
	"github.com/m-mizutani/cortex/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// config holds configuration values
type config struct {
	dataDir    string
	logLevel   string
	interval   time.Duration
	configPath string
}

// fileConfig is the optional YAML configuration file
type fileConfig struct {
	DataDir       string `yaml:"data_dir"`
	LogLevel      string `yaml:"log_level"`
	CheckInterval int    `yaml:"check_interval"` // seconds
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Aliases:     []string{"d"},
			Usage:       "Directory for persisted documents",
			Sources:     cli.EnvVars("CORTEX_DATA_DIR"),
			Destination: &cfg.dataDir,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Sources:     cli.EnvVars("CORTEX_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.DurationFlag{
			Name:        "check-interval",
			Usage:       "Reminder polling interval",
			Sources:     cli.EnvVars("CORTEX_CHECK_INTERVAL"),
			Destination: &cfg.interval,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to YAML configuration file",
			Sources:     cli.EnvVars("CORTEX_CONFIG"),
			Destination: &cfg.configPath,
		},
	}
}

// resolve merges the optional configuration file under the flag values
// and fills remaining defaults. Flags and environment variables win
// over the file.
func (cfg *config) resolve() error {
	if cfg.configPath != "" {
		raw, err := os.ReadFile(cfg.configPath)
		if err != nil {
			return goerr.Wrap(err, "failed to read config file", goerr.V("path", cfg.configPath))
		}

		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return goerr.Wrap(err, "failed to parse config file", goerr.V("path", cfg.configPath))
		}

		if cfg.dataDir == "" {
			cfg.dataDir = fc.DataDir
		}
		if cfg.logLevel == "" {
			cfg.logLevel = fc.LogLevel
		}
		if cfg.interval == 0 && fc.CheckInterval > 0 {
			cfg.interval = time.Duration(fc.CheckInterval) * time.Second
		}
	}

	if cfg.logLevel == "" {
		cfg.logLevel = "info"
	}
	if cfg.dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return goerr.Wrap(err, "failed to resolve home directory")
		}
		cfg.dataDir = filepath.Join(home, ".cortex")
	}
	return nil
}

// setup resolves configuration, installs the logger and opens the
// document store
func (cfg *config) setup(ctx context.Context) (context.Context, repository.Repository, error) {
	if err := cfg.resolve(); err != nil {
		return ctx, nil, err
	}

	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	ctx = logging.With(ctx, logger)

	repo, err := repository.NewLocal(cfg.dataDir)
	if err != nil {
		return ctx, nil, err
	}
	return ctx, repo, nil
}

// stores bundles the usecases the commands work with
type stores struct {
	prefs     *prefs.UseCase
	tasks     *task.UseCase
	reminders *reminder.UseCase
	advice    *advice.UseCase
}

func (cfg *config) newStores(ctx context.Context, repo repository.Repository, opts ...reminder.Option) (*stores, error) {
	prefsUC, err := prefs.New(ctx, repo)
	if err != nil {
		return nil, err
	}
	taskUC, err := task.New(ctx, repo)
	if err != nil {
		return nil, err
	}

	interval := cfg.interval
	if interval == 0 {
		interval = prefsUC.Current().CheckInterval()
	}
	reminderOpts := append([]reminder.Option{reminder.WithInterval(interval)}, opts...)
	reminderUC, err := reminder.New(ctx, repo, reminderOpts...)
	if err != nil {
		return nil, err
	}

	adviceUC, err := advice.New(ctx, repo)
	if err != nil {
		return nil, err
	}

	return &stores{
		prefs:     prefsUC,
		tasks:     taskUC,
		reminders: reminderUC,
		advice:    adviceUC,
	}, nil
}

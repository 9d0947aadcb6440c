package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"solarenroll/internal/app"
	"solarenroll/internal/logging"
)

// annotationTerminal marks commands that take over the terminal.
const annotationTerminal = "terminal"

var (
	configPath string
	apiURL     string
	verbose    bool

	appCtx *app.Wire
	logger *zap.Logger
)

// Execute runs the CLI with ctx as the base context of every command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "solarenroll",
		Short:        "Community solar enrollment client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}
			cfg, err := app.LoadConfig(path)
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.API.BaseURL = apiURL
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger, err = newLogger(cmd, cfg.Logging)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, logger)
			if err != nil {
				return err
			}
			logger.Debug("configured",
				zap.String("config", path),
				zap.String("api", cfg.API.BaseURL),
				zap.String("timeout", cfg.API.Timeout),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.solarenroll/config.yaml)")
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides config and "+app.EnvAPIURL+")")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		enrollCmd(),
		utilityCmd(),
		validateAddressCmd(),
		subscribersCmd(),
		healthCmd(),
		configCmd(),
	)
	return root
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".solarenroll", "config.yaml"), nil
}

// newLogger logs to stderr, except for commands that own the terminal: those
// only log when a log file is configured.
func newLogger(cmd *cobra.Command, cfg app.LoggingConfig) (*zap.Logger, error) {
	if cmd.Annotations[annotationTerminal] == "true" && answersPath == "" && cfg.File == "" {
		return zap.NewNop(), nil
	}
	return logging.New(logging.Options{
		Level:   cfg.Level,
		Format:  cfg.Format,
		File:    cfg.File,
		Verbose: verbose,
	})
}

// Package cli implements the batchkit command-line interface: inspection
// tooling around the dispatch library (boundary plans, store dumps).
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sliceworks/batchkit/internal/config"
	"github.com/sliceworks/batchkit/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// ctxKey is the private type for context values set by the root command.
type ctxKey string

// configKey carries the loaded *config.Config in the command context.
const configKey ctxKey = "config"

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the batchkit CLI.
// It wires up config loading, logging, and the plan and store subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "batchkit",
		Short:   "Batch/element dispatch toolkit",
		Long:    "batchkit: inspect boundary plans and write-once store dumps for batch dispatch pipelines",
		Version: ver,
		Example: `  # Print the chunk boundaries for 10 items in chunks of 2
  batchkit plan --length 10 --chunk-size 2

  # Same plan as JSON
  batchkit plan --length 10 --chunk-size 2 --output json

  # Query a write-once store dump
  batchkit store query dump.json mykey

  # Build a dump file from literal entries
  batchkit store dump out.json --entry k1=v1 --entry k2=v2`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			logCfg := logging.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			}
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logCfg.Level = "debug"
				logCfg.Format = logging.FormatConsole
			} else if !isTerminal(os.Stderr) {
				// Non-interactive runs get machine-readable logs.
				logCfg.Format = logging.FormatJSON
			}
			logger = logging.ComponentLogger(logging.New(logCfg), "cli")

			ctx := context.WithValue(cmd.Context(), configKey, cfg)
			cmd.SetContext(logging.WithContext(ctx, logger))

			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default ~/.batchkit/config.yaml)")
	cmd.AddCommand(newPlanCmd(), newStoreCmd())

	return cmd
}

// configFromCmd returns the config loaded by the root command, or defaults
// when a command runs without the root's PersistentPreRunE.
func configFromCmd(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey).(*config.Config); ok {
		return cfg
	}
	return config.New()
}

// Package cmd provides the ledgerctl commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/core/services"
	"github.com/SscSPs/pocket_ledger/internal/events"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/SscSPs/pocket_ledger/internal/platform/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	envFile string
	output  string
	debug   bool
	logger  *slog.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Inspect and edit the pocket ledger from the terminal",
		Long: `ledgerctl works directly against the configured store
(DATA_BACKEND, PGSQL_URL or SQLITE_DB_PATH) using the same rules as the API.

Example:
  ledgerctl record --type SET_BALANCE --amount 1000
  ledgerctl record --type ADD_SPENDING --title Groceries --amount 42.50
  ledgerctl balance -o json
  ledgerctl report --year 2024 --month 3 -o yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel := slog.LevelWarn
			if opts.debug {
				logLevel = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			}))
			slog.SetDefault(opts.logger)

			if !isOutputFormat(opts.output) {
				return fmt.Errorf("unknown output format %q (want table, json or yaml)", opts.output)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "env file to load before reading configuration (default is .env)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatTable, "output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newBalanceCmd(opts),
		newStatementCmd(opts),
		newRecordCmd(opts),
		newDiscardCmd(opts),
		newReportCmd(opts),
	)
	return rootCmd
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// withLedger opens the configured store for the duration of fn.
func (o *globalOptions) withLedger(ctx context.Context, fn func(cfg *config.Config, svc *portssvc.ServiceContainer) error) error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", o.envFile, err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	repos, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.DataBackend, err)
	}
	defer closeStore()

	return fn(cfg, services.NewServiceContainer(cfg, repos, events.NoopPublisher{}))
}

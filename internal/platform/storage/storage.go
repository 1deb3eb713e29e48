package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/pocket_ledger/pkg/database"
)

// Open connects to the configured backend, applies migrations and returns the
// repositories with a function that releases the connection.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DataBackend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.BackendSQLite:
		return openSQLite(ctx, cfg, logger)
	}
	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported data backend %q", cfg.DataBackend)
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	logger.Info("Running database migrations...", slog.String("backend", config.BackendPostgres))
	if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
}

func openSQLite(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	logger.Info("Running database migrations...", slog.String("backend", config.BackendSQLite))
	if err := sqlite.RunMigrations(db, logger); err != nil {
		db.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
		}
	}
	return sqlite.NewRepositoryProvider(db), cleanup, nil
}

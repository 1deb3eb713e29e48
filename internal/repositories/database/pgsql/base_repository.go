package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks that the pool can reach the database
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return storeError("database ping failed", err)
	}
	return nil
}

// storeError marks a driver failure so it surfaces as apperrors.ErrStoreUnavailable.
func storeError(msg string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

var categoryTables = map[domain.CategoryKind]string{
	domain.IncomeCategory:  "income_categories",
	domain.ExpenseCategory: "expense_categories",
}

// categoryTable resolves the table for kind. Table names never come from input.
func categoryTable(kind domain.CategoryKind) (string, error) {
	table, ok := categoryTables[kind]
	if !ok {
		return "", apperrors.NewValidationError("unknown category kind %q", kind)
	}
	return table, nil
}

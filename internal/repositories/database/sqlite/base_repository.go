package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// timeLayout is fixed width and always UTC, so text comparison orders rows by instant.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// Ping checks that the database is reachable
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		return storeError("database ping failed", err)
	}
	return nil
}

func storeError(msg string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored time %q: %w", s, err)
	}
	return t, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid stored amount %q: %w", s, err)
	}
	return d, nil
}

var categoryTables = map[domain.CategoryKind]string{
	domain.IncomeCategory:  "income_categories",
	domain.ExpenseCategory: "expense_categories",
}

func categoryTable(kind domain.CategoryKind) (string, error) {
	table, ok := categoryTables[kind]
	if !ok {
		return "", apperrors.NewValidationError("unknown category kind %q", kind)
	}
	return table, nil
}

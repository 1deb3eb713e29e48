package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a row of either the income_categories or the expense_categories table.
// Both tables share this shape.
type Category struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	Value     decimal.Decimal `db:"value"`
	CreatedAt time.Time       `db:"created_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	ID          int64           `db:"id"`          // Primary Key, assigned by the store
	Type        string          `db:"type"`        // One of the ledger kinds (Not Null)
	Title       string          `db:"title"`       // Not Null
	Description *string         `db:"description"` // Nullable
	Amount      decimal.Decimal `db:"amount"`      // Non-negative magnitude
	Date        time.Time       `db:"date"`        // Effective date used for replay ordering
	CreatedAt   time.Time       `db:"created_at"`
}

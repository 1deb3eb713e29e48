package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryKind selects one of the two parallel budget lists.
type CategoryKind string

const (
	IncomeCategory  CategoryKind = "income"
	ExpenseCategory CategoryKind = "expense"
)

// IsValid reports whether k is a known category list.
func (k CategoryKind) IsValid() bool {
	return k == IncomeCategory || k == ExpenseCategory
}

// Category is a named budget reference item. It never references ledger entries.
type Category struct {
	ID        int64           `json:"id"`
	Kind      CategoryKind    `json:"kind"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"createdAt"`
}

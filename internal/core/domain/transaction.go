package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind is the closed set of ledger entry types. The kind decides the
// sign of Amount when the ledger is replayed.
type TransactionKind string

const (
	SetBalance      TransactionKind = "SET_BALANCE"
	AddBalance      TransactionKind = "ADD_BALANCE"
	AddSpending     TransactionKind = "ADD_SPENDING"
	SaveToSavings   TransactionKind = "SAVE_TO_SAVINGS"
	TakeFromSavings TransactionKind = "TAKE_FROM_SAVINGS"
)

// TransactionKinds lists every valid kind in display order.
var TransactionKinds = []TransactionKind{SetBalance, AddBalance, AddSpending, SaveToSavings, TakeFromSavings}

// Default titles used when the caller does not provide one.
const (
	DefaultSetBalanceTitle      = "Set balance"
	DefaultSaveToSavingsTitle   = "Add to savings"
	DefaultTakeFromSavingsTitle = "Take from savings"
)

// IsValid reports whether k is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case SetBalance, AddBalance, AddSpending, SaveToSavings, TakeFromSavings:
		return true
	}
	return false
}

// AffectsSavings reports whether k moves money in or out of savings.
func (k TransactionKind) AffectsSavings() bool {
	return k == SaveToSavings || k == TakeFromSavings
}

// RequiresTitle reports whether a title must be supplied for k.
// SET_BALANCE has never enforced one.
func (k TransactionKind) RequiresTitle() bool {
	return k != SetBalance
}

// Transaction is a single immutable ledger entry.
type Transaction struct {
	ID          int64           `json:"id"`
	Kind        TransactionKind `json:"type"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"` // magnitude; sign comes from Kind
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Validate checks the invariants every stored transaction must satisfy.
func (t Transaction) Validate() error {
	if !t.Kind.IsValid() {
		return apperrors.NewValidationError("unknown transaction type %q", t.Kind)
	}
	if t.Kind.RequiresTitle() && strings.TrimSpace(t.Title) == "" {
		return apperrors.NewValidationError("title is required for %s", t.Kind)
	}
	if t.Amount.IsNegative() {
		return apperrors.NewValidationError("amount must not be negative")
	}
	if err := ValidateAmountRange(t.Amount); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return apperrors.NewValidationError("date is required")
	}
	return nil
}

// LedgerTotals holds the aggregates derived by replaying the ledger.
type LedgerTotals struct {
	Balance decimal.Decimal `json:"balance"`
	Savings decimal.Decimal `json:"savings"`
}

// StatementLine is a transaction together with the running totals after it was applied.
type StatementLine struct {
	Transaction  Transaction     `json:"transaction"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	SavingsAfter decimal.Decimal `json:"savingsAfter"`
}

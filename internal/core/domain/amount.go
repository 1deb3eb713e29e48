package domain

import (
	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money columns are NUMERIC(AmountPrecision, AmountScale).
const (
	AmountPrecision = 20
	AmountScale     = 4
)

var maxAmount = decimal.New(1, AmountPrecision-AmountScale)

// ValidateAmountRange rejects amounts that do not fit a money column: more
// than AmountScale decimal places or AmountPrecision-AmountScale integer digits.
// The exponent is checked first so no arithmetic runs on an oversized value.
func ValidateAmountRange(amount decimal.Decimal) error {
	exp := amount.Exponent()
	if exp > AmountPrecision-AmountScale || exp < -AmountPrecision {
		return apperrors.NewValidationError("amount is out of range")
	}
	if !amount.Truncate(AmountScale).Equal(amount) {
		return apperrors.NewValidationError("amount must have at most %d decimal places", AmountScale)
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return apperrors.NewValidationError("amount must be less than %s", maxAmount)
	}
	return nil
}

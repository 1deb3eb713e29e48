package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParseAmount parses a user supplied amount. It must be a non-negative number
// that fits a money column.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, apperrors.NewValidationError("amount is required")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError("amount %q is not a number", raw)
	}
	if amount.IsNegative() {
		return decimal.Zero, apperrors.NewValidationError("amount must not be negative")
	}
	if err := domain.ValidateAmountRange(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ValidateSavingsDeposit checks that amount can move from balance into savings.
func ValidateSavingsDeposit(amount, currentBalance decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError("amount must be greater than 0")
	}
	if err := domain.ValidateAmountRange(amount); err != nil {
		return err
	}
	if amount.GreaterThan(currentBalance) {
		return fmt.Errorf("%w: cannot save %s with a balance of %s", apperrors.ErrInsufficientFunds, amount, currentBalance)
	}
	return nil
}

// ValidateSavingsWithdrawal checks that amount can move from savings back into balance.
func ValidateSavingsWithdrawal(amount, currentSavings decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError("amount must be greater than 0")
	}
	if err := domain.ValidateAmountRange(amount); err != nil {
		return err
	}
	if amount.GreaterThan(currentSavings) {
		return fmt.Errorf("%w: cannot take %s from savings of %s", apperrors.ErrInsufficientFunds, amount, currentSavings)
	}
	return nil
}

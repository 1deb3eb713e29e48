package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsTransferRequest moves money between balance and savings.
type SavingsTransferRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"100"`
	Title       string           `json:"title,omitempty" binding:"max=200"` // Defaults per direction
	Description *string          `json:"description,omitempty" binding:"omitempty,max=1000"`
	Date        *time.Time       `json:"date,omitempty"`
}

// SavingsOverviewResponse is the savings page: totals plus savings-kind entries, newest first.
type SavingsOverviewResponse struct {
	Savings      decimal.Decimal       `json:"savings" swaggertype:"string"`
	Balance      decimal.Decimal       `json:"balance" swaggertype:"string"`
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

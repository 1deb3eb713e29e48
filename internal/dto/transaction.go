package dto

import (
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
type CreateTransactionRequest struct {
	Type        domain.TransactionKind `json:"type" binding:"required,txkind" example:"ADD_SPENDING"`
	Title       string                 `json:"title" binding:"max=200" example:"Groceries"`
	Description *string                `json:"description,omitempty" binding:"omitempty,max=1000"`
	Amount      *decimal.Decimal       `json:"amount" binding:"required" swaggertype:"string" example:"42.50"`
	Date        *time.Time             `json:"date,omitempty"` // Defaults to now
}

// ListTransactionsParams defines the query parameters for listing ledger entries.
type ListTransactionsParams struct {
	Query     string   `form:"q"`
	Scope     string   `form:"scope" binding:"omitempty,oneof=day month year"`
	Date      string   `form:"date"` // YYYY-MM-DD or RFC3339, used with Scope
	Kinds     []string `form:"kind" binding:"omitempty,dive,txkind"`
	Limit     int      `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string   `form:"nextToken"`
}

// DefaultListLimit is used when ListTransactionsParams.Limit is zero.
const DefaultListLimit = 50

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// BalanceResponse carries the ledger totals.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance" swaggertype:"string"`
	Savings decimal.Decimal `json:"savings" swaggertype:"string"`
}

// StatementLineResponse is one replayed entry with running totals.
type StatementLineResponse struct {
	Transaction  TransactionResponse `json:"transaction"`
	BalanceAfter decimal.Decimal     `json:"balanceAfter" swaggertype:"string"`
	SavingsAfter decimal.Decimal     `json:"savingsAfter" swaggertype:"string"`
}

// StatementResponse is the whole ledger in replay order.
type StatementResponse struct {
	Lines   []StatementLineResponse `json:"lines"`
	Balance decimal.Decimal         `json:"balance" swaggertype:"string"`
	Savings decimal.Decimal         `json:"savings" swaggertype:"string"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Type:        string(txn.Kind),
		Title:       txn.Title,
		Description: txn.Description,
		Amount:      txn.Amount,
		Date:        txn.Date,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToBalanceResponse converts ledger totals.
func ToBalanceResponse(t domain.LedgerTotals) BalanceResponse {
	return BalanceResponse{Balance: t.Balance, Savings: t.Savings}
}

// ToStatementResponse converts replayed lines. The last line carries the current totals.
func ToStatementResponse(lines []domain.StatementLine) StatementResponse {
	resp := StatementResponse{
		Lines:   make([]StatementLineResponse, len(lines)),
		Balance: decimal.Zero,
		Savings: decimal.Zero,
	}
	for i := range lines {
		resp.Lines[i] = StatementLineResponse{
			Transaction:  ToTransactionResponse(&lines[i].Transaction),
			BalanceAfter: lines[i].BalanceAfter,
			SavingsAfter: lines[i].SavingsAfter,
		}
	}
	if n := len(lines); n > 0 {
		resp.Balance = lines[n-1].BalanceAfter
		resp.Savings = lines[n-1].SavingsAfter
	}
	return resp
}

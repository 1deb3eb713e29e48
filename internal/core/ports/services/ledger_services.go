package services

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/dto"
)

// TransactionReaderSvc defines read operations over the ledger
type TransactionReaderSvc interface {
	// ListTransactions returns a filtered page of entries, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetTotals replays the whole ledger and returns balance and savings.
	GetTotals(ctx context.Context) (*domain.LedgerTotals, error)

	// GetStatement replays the whole ledger and returns the running totals per entry.
	GetStatement(ctx context.Context) ([]domain.StatementLine, error)
}

// TransactionWriterSvc defines write operations over the ledger
type TransactionWriterSvc interface {
	// RecordTransaction validates and appends a new entry.
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DiscardTransaction permanently deletes an entry.
	DiscardTransaction(ctx context.Context, id int64) error
}

// SavingsSvc defines the guarded transfers between balance and savings
type SavingsSvc interface {
	DepositToSavings(ctx context.Context, req dto.SavingsTransferRequest) (*domain.Transaction, error)
	WithdrawFromSavings(ctx context.Context, req dto.SavingsTransferRequest) (*domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	SavingsSvc
}

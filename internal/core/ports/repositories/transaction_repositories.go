package repositories

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// TransactionReader defines read operations for ledger entries
type TransactionReader interface {
	// ListTransactions returns every ledger entry ordered by date, ties by id in the same direction.
	ListTransactions(ctx context.Context, order SortOrder) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger entries
type TransactionWriter interface {
	// CreateTransaction persists a new entry and returns it with its assigned id.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// DeleteTransaction permanently removes an entry. Returns apperrors.ErrNotFound if absent.
	DeleteTransaction(ctx context.Context, id int64) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

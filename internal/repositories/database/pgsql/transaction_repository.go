package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/models"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

var listTransactionsQueries = map[portsrepo.SortOrder]string{
	portsrepo.Ascending: `
		SELECT id, type, title, description, amount::text, date, created_at
		FROM transactions
		ORDER BY date ASC, id ASC;
	`,
	portsrepo.Descending: `
		SELECT id, type, title, description, amount::text, date, created_at
		FROM transactions
		ORDER BY date DESC, id DESC;
	`,
}

// ListTransactions retrieves every ledger entry in the requested date order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, order portsrepo.SortOrder) ([]domain.Transaction, error) {
	query, ok := listTransactionsQueries[order]
	if !ok {
		return nil, apperrors.NewValidationError("unknown sort order %q", order)
	}

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storeError("failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var txn models.Transaction
		var amount string
		if err := row.Scan(
			&txn.ID,
			&txn.Type,
			&txn.Title,
			&txn.Description,
			&amount,
			&txn.Date,
			&txn.CreatedAt,
		); err != nil {
			return txn, err
		}
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return txn, fmt.Errorf("transaction %d has invalid amount %q: %w", txn.ID, amount, err)
		}
		txn.Amount = parsed
		return txn, nil
	})
	if err != nil {
		return nil, storeError("failed to scan transactions", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// CreateTransaction inserts a new ledger entry; the store assigns id and created_at.
// date is read back so the result carries the column's microsecond precision.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (type, title, description, amount, date)
		VALUES ($1, $2, $3, $4::numeric, $5)
		RETURNING id, date, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Type,
		m.Title,
		m.Description,
		m.Amount.String(),
		m.Date,
	).Scan(&m.ID, &m.Date, &m.CreatedAt)
	if err != nil {
		return nil, storeError("failed to insert transaction", err)
	}

	created := mapping.ToDomainTransaction(m)
	return &created, nil
}

// DeleteTransaction permanently removes a ledger entry.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, id)
	if err != nil {
		return storeError(fmt.Sprintf("failed to delete transaction %d", id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

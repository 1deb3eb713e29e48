package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/models"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
)

type SQLiteTransactionRepository struct {
	BaseRepository
}

func newSQLiteTransactionRepository(db *sql.DB) *SQLiteTransactionRepository {
	return &SQLiteTransactionRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

var listTransactionsQueries = map[portsrepo.SortOrder]string{
	portsrepo.Ascending:  `SELECT id, type, title, description, amount, date, created_at FROM transactions ORDER BY date ASC, id ASC`,
	portsrepo.Descending: `SELECT id, type, title, description, amount, date, created_at FROM transactions ORDER BY date DESC, id DESC`,
}

// ListTransactions retrieves every ledger entry in the requested date order.
func (r *SQLiteTransactionRepository) ListTransactions(ctx context.Context, order portsrepo.SortOrder) ([]domain.Transaction, error) {
	query, ok := listTransactionsQueries[order]
	if !ok {
		return nil, apperrors.NewValidationError("unknown sort order %q", order)
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError("failed to query transactions", err)
	}
	defer rows.Close()

	var modelTxns []models.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, storeError("failed to scan transaction", err)
		}
		modelTxns = append(modelTxns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("failed to iterate transactions", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func scanTransaction(rows *sql.Rows) (models.Transaction, error) {
	var txn models.Transaction
	var description sql.NullString
	var amount, date, createdAt string
	if err := rows.Scan(&txn.ID, &txn.Type, &txn.Title, &description, &amount, &date, &createdAt); err != nil {
		return txn, err
	}
	if description.Valid {
		txn.Description = &description.String
	}

	var err error
	if txn.Amount, err = parseDecimal(amount); err != nil {
		return txn, err
	}
	if txn.Date, err = parseTime(date); err != nil {
		return txn, err
	}
	if txn.CreatedAt, err = parseTime(createdAt); err != nil {
		return txn, err
	}
	return txn, nil
}

// CreateTransaction inserts a new ledger entry; the store assigns id and created_at.
func (r *SQLiteTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	m.CreatedAt = time.Now().UTC()

	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO transactions (type, title, description, amount, date, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.Type,
		m.Title,
		m.Description,
		m.Amount.String(),
		formatTime(m.Date),
		formatTime(m.CreatedAt),
	)
	if err != nil {
		return nil, storeError("failed to insert transaction", err)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return nil, storeError("failed to read transaction id", err)
	}

	// Round-trip the dates through the stored precision.
	if m.Date, err = parseTime(formatTime(m.Date)); err != nil {
		return nil, storeError("failed to normalise transaction date", err)
	}
	if m.CreatedAt, err = parseTime(formatTime(m.CreatedAt)); err != nil {
		return nil, storeError("failed to normalise transaction date", err)
	}

	created := mapping.ToDomainTransaction(m)
	return &created, nil
}

// DeleteTransaction permanently removes a ledger entry.
func (r *SQLiteTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return storeError(fmt.Sprintf("failed to delete transaction %d", id), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeError("failed to read affected rows", err)
	}
	if n == 0 {
		return fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/models"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for income and expense categories.
func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// ListCategories retrieves the categories of one kind, newest first.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	table, err := categoryTable(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, value::text, created_at
		FROM %s
		ORDER BY created_at DESC, id DESC;
	`, table)
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storeError("failed to query categories", err)
	}
	defer rows.Close()

	modelCats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		var c models.Category
		var value string
		if err := row.Scan(&c.ID, &c.Name, &value, &c.CreatedAt); err != nil {
			return c, err
		}
		parsed, err := decimal.NewFromString(value)
		if err != nil {
			return c, fmt.Errorf("category %d has invalid value %q: %w", c.ID, value, err)
		}
		c.Value = parsed
		return c, nil
	})
	if err != nil {
		return nil, storeError("failed to scan categories", err)
	}

	return mapping.ToDomainCategorySlice(modelCats, kind), nil
}

// CreateCategory inserts a category into the table of its kind.
func (r *PgxCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	table, err := categoryTable(category.Kind)
	if err != nil {
		return nil, err
	}
	m := mapping.ToModelCategory(category)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (name, value, created_at)
		VALUES ($1, $2::numeric, $3)
		RETURNING id, created_at;
	`, table)
	if err := r.Pool.QueryRow(ctx, query, m.Name, m.Value.String(), m.CreatedAt).Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, storeError("failed to insert category", err)
	}

	created := mapping.ToDomainCategory(m, category.Kind)
	return &created, nil
}

// UpdateCategory replaces name and value of an existing category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	table, err := categoryTable(category.Kind)
	if err != nil {
		return nil, err
	}
	m := mapping.ToModelCategory(category)

	query := fmt.Sprintf(`
		UPDATE %s SET name = $1, value = $2::numeric
		WHERE id = $3
		RETURNING created_at;
	`, table)
	err = r.Pool.QueryRow(ctx, query, m.Name, m.Value.String(), m.ID).Scan(&m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s category %d: %w", category.Kind, category.ID, apperrors.ErrNotFound)
		}
		return nil, storeError("failed to update category", err)
	}

	updated := mapping.ToDomainCategory(m, category.Kind)
	return &updated, nil
}

// DeleteCategory removes a category.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, kind domain.CategoryKind, id int64) error {
	table, err := categoryTable(kind)
	if err != nil {
		return err
	}

	tag, err := r.Pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1;`, table), id)
	if err != nil {
		return storeError("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s category %d: %w", kind, id, apperrors.ErrNotFound)
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/models"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
)

type SQLiteCategoryRepository struct {
	BaseRepository
}

func newSQLiteCategoryRepository(db *sql.DB) *SQLiteCategoryRepository {
	return &SQLiteCategoryRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CategoryRepositoryFacade = (*SQLiteCategoryRepository)(nil)

// ListCategories retrieves the categories of one kind, newest first.
func (r *SQLiteCategoryRepository) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	table, err := categoryTable(kind)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, fmt.Sprintf(`SELECT id, name, value, created_at FROM %s ORDER BY created_at DESC, id DESC`, table))
	if err != nil {
		return nil, storeError("failed to query categories", err)
	}
	defer rows.Close()

	var modelCats []models.Category
	for rows.Next() {
		var (
			c                models.Category
			value, createdAt string
		)
		if err := rows.Scan(&c.ID, &c.Name, &value, &createdAt); err != nil {
			return nil, storeError("failed to scan category", err)
		}
		if c.Value, err = parseDecimal(value); err != nil {
			return nil, storeError("failed to scan category", err)
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, storeError("failed to scan category", err)
		}
		modelCats = append(modelCats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("failed to iterate categories", err)
	}

	return mapping.ToDomainCategorySlice(modelCats, kind), nil
}

// CreateCategory inserts a category into the table of its kind.
func (r *SQLiteCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	table, err := categoryTable(category.Kind)
	if err != nil {
		return nil, err
	}
	m := mapping.ToModelCategory(category)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	res, err := r.DB.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (name, value, created_at) VALUES (?, ?, ?)`, table),
		m.Name, m.Value.String(), formatTime(m.CreatedAt),
	)
	if err != nil {
		return nil, storeError("failed to insert category", err)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return nil, storeError("failed to read category id", err)
	}
	if m.CreatedAt, err = parseTime(formatTime(m.CreatedAt)); err != nil {
		return nil, storeError("failed to normalise category date", err)
	}

	created := mapping.ToDomainCategory(m, category.Kind)
	return &created, nil
}

// UpdateCategory replaces name and value of an existing category.
func (r *SQLiteCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	table, err := categoryTable(category.Kind)
	if err != nil {
		return nil, err
	}
	m := mapping.ToModelCategory(category)

	var createdAt string
	err = r.DB.QueryRowContext(ctx,
		fmt.Sprintf(`UPDATE %s SET name = ?, value = ? WHERE id = ? RETURNING created_at`, table),
		m.Name, m.Value.String(), m.ID,
	).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s category %d: %w", category.Kind, category.ID, apperrors.ErrNotFound)
		}
		return nil, storeError("failed to update category", err)
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, storeError("failed to update category", err)
	}

	updated := mapping.ToDomainCategory(m, category.Kind)
	return &updated, nil
}

// DeleteCategory removes a category.
func (r *SQLiteCategoryRepository) DeleteCategory(ctx context.Context, kind domain.CategoryKind, id int64) error {
	table, err := categoryTable(kind)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if err != nil {
		return storeError("failed to delete category", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeError("failed to read affected rows", err)
	}
	if n == 0 {
		return fmt.Errorf("%s category %d: %w", kind, id, apperrors.ErrNotFound)
	}
	return nil
}

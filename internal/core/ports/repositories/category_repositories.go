package repositories

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// CategoryReader defines read operations for budget categories
type CategoryReader interface {
	// ListCategories returns the categories of one kind, newest first.
	ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
}

// CategoryWriter defines write operations for budget categories
type CategoryWriter interface {
	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)

	// UpdateCategory replaces name and value. Returns apperrors.ErrNotFound if absent.
	UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)

	// DeleteCategory returns apperrors.ErrNotFound if absent.
	DeleteCategory(ctx context.Context, kind domain.CategoryKind, id int64) error
}

// CategoryRepositoryFacade combines all category repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

package services

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/dto"
)

// CategoryReaderSvc defines read operations for budget categories
type CategoryReaderSvc interface {
	ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for budget categories
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, kind domain.CategoryKind, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, kind domain.CategoryKind, id int64, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, kind domain.CategoryKind, id int64) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}

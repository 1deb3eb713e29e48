package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// categoryService manages the income and expense budget lists.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func validateCategoryInput(kind domain.CategoryKind, name string, value *decimal.Decimal) (string, error) {
	if !kind.IsValid() {
		return "", apperrors.NewValidationError("unknown category kind %q", kind)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationError("name is required")
	}
	if value == nil {
		return "", apperrors.NewValidationError("value is required")
	}
	if err := domain.ValidateAmountRange(*value); err != nil {
		return "", err
	}
	return name, nil
}

func (s *categoryService) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("unknown category kind %q", kind)
	}
	categories, err := s.categoryRepo.ListCategories(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list %s categories: %w", kind, err)
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, kind domain.CategoryKind, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name, err := validateCategoryInput(kind, req.Name, req.Value)
	if err != nil {
		return nil, err
	}

	created, err := s.categoryRepo.CreateCategory(ctx, domain.Category{
		Kind:      kind,
		Name:      name,
		Value:     *req.Value,
		CreatedAt: s.Now().UTC(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to create %s category: %w", kind, err)
	}

	s.LogInfo(ctx, "Category created", slog.String("kind", string(kind)), slog.Int64("category_id", created.ID))
	return created, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, kind domain.CategoryKind, id int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	name, err := validateCategoryInput(kind, req.Name, req.Value)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid category id %d", id)
	}

	updated, err := s.categoryRepo.UpdateCategory(ctx, domain.Category{
		ID:    id,
		Kind:  kind,
		Name:  name,
		Value: *req.Value,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("kind", string(kind)), slog.Int64("category_id", id))
		return nil, fmt.Errorf("failed to update %s category %d: %w", kind, id, err)
	}
	return updated, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, kind domain.CategoryKind, id int64) error {
	if !kind.IsValid() {
		return apperrors.NewValidationError("unknown category kind %q", kind)
	}
	if id <= 0 {
		return apperrors.NewValidationError("invalid category id %d", id)
	}
	if err := s.categoryRepo.DeleteCategory(ctx, kind, id); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("kind", string(kind)), slog.Int64("category_id", id))
		return fmt.Errorf("failed to delete %s category %d: %w", kind, id, err)
	}
	s.LogInfo(ctx, "Category deleted", slog.String("kind", string(kind)), slog.Int64("category_id", id))
	return nil
}

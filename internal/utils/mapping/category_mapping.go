package mapping

import (
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/models"
)

// ToModelCategory converts a domain Category to a model Category. The kind
// selects the table and is not part of the row.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		ID:        d.ID,
		Name:      d.Name,
		Value:     d.Value,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainCategory converts a model Category read from the kind table to a domain Category
func ToDomainCategory(m models.Category, kind domain.CategoryKind) domain.Category {
	return domain.Category{
		ID:        m.ID,
		Kind:      kind,
		Name:      m.Name,
		Value:     m.Value,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainCategorySlice converts a slice of model Categories to a slice of domain Categories
func ToDomainCategorySlice(ms []models.Category, kind domain.CategoryKind) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m, kind)
	}
	return ds
}

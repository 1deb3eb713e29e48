package dto

import (
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to add a budget category.
type CreateCategoryRequest struct {
	Name  string           `json:"name" binding:"required,max=100" example:"Salary"`
	Value *decimal.Decimal `json:"value" binding:"required" swaggertype:"string" example:"3000"`
}

// UpdateCategoryRequest replaces the name and value of a category.
type UpdateCategoryRequest struct {
	Name  string           `json:"name" binding:"required,max=100"`
	Value *decimal.Decimal `json:"value" binding:"required" swaggertype:"string"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID        int64           `json:"id"`
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value" swaggertype:"string"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Kind:      string(c.Kind),
		Name:      c.Name,
		Value:     c.Value,
		CreatedAt: c.CreatedAt,
	}
}

// ToCategoryResponses converts a slice of domain.Category to []CategoryResponse.
func ToCategoryResponses(cs []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(cs))
	for i := range cs {
		responses[i] = ToCategoryResponse(&cs[i])
	}
	return responses
}

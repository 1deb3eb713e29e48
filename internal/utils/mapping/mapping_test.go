package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionMapping(t *testing.T) {
	desc := "weekly shop"
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m := models.Transaction{
		ID:          3,
		Type:        "ADD_SPENDING",
		Title:       "Groceries",
		Description: &desc,
		Amount:      decimal.RequireFromString("23.40"),
		Date:        now,
		CreatedAt:   now.Add(time.Minute),
	}

	d := ToDomainTransaction(m)
	assert.Equal(t, domain.AddSpending, d.Kind)
	assert.Equal(t, "Groceries", d.Title)
	assert.Equal(t, &desc, d.Description)
	assert.Equal(t, m, ToModelTransaction(d))

	assert.Len(t, ToDomainTransactionSlice([]models.Transaction{m, m}), 2)
	assert.Empty(t, ToDomainTransactionSlice(nil))
}

func TestCategoryMapping(t *testing.T) {
	m := models.Category{ID: 9, Name: "Salary", Value: decimal.NewFromInt(3000), CreatedAt: time.Now()}

	d := ToDomainCategory(m, domain.IncomeCategory)
	assert.Equal(t, domain.IncomeCategory, d.Kind)
	assert.Equal(t, m, ToModelCategory(d))

	ds := ToDomainCategorySlice([]models.Category{m}, domain.ExpenseCategory)
	assert.Equal(t, domain.ExpenseCategory, ds[0].Kind)
}

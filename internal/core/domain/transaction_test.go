package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionKind_IsValid(t *testing.T) {
	for _, k := range domain.TransactionKinds {
		assert.True(t, k.IsValid(), "kind %s should be valid", k)
	}
	assert.False(t, domain.TransactionKind("TRANSFER").IsValid())
	assert.False(t, domain.TransactionKind("").IsValid())
}

func TestTransactionKind_AffectsSavings(t *testing.T) {
	assert.True(t, domain.SaveToSavings.AffectsSavings())
	assert.True(t, domain.TakeFromSavings.AffectsSavings())
	assert.False(t, domain.SetBalance.AffectsSavings())
	assert.False(t, domain.AddBalance.AffectsSavings())
	assert.False(t, domain.AddSpending.AffectsSavings())
}

func TestTransaction_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid spending",
			tx: domain.Transaction{
				Kind:   domain.AddSpending,
				Title:  "Groceries",
				Amount: decimal.NewFromFloat(42.50),
				Date:   now,
			},
		},
		{
			name: "set balance without title",
			tx: domain.Transaction{
				Kind:   domain.SetBalance,
				Amount: decimal.NewFromInt(1000),
				Date:   now,
			},
		},
		{
			name: "zero amount is allowed",
			tx: domain.Transaction{
				Kind:   domain.AddBalance,
				Title:  "Refund",
				Amount: decimal.Zero,
				Date:   now,
			},
		},
		{
			name: "unknown kind",
			tx: domain.Transaction{
				Kind:   "TRANSFER",
				Title:  "x",
				Amount: decimal.NewFromInt(1),
				Date:   now,
			},
			wantErr: true,
			errMsg:  "unknown transaction type",
		},
		{
			name: "blank title for add balance",
			tx: domain.Transaction{
				Kind:   domain.AddBalance,
				Title:  "   ",
				Amount: decimal.NewFromInt(10),
				Date:   now,
			},
			wantErr: true,
			errMsg:  "title is required for ADD_BALANCE",
		},
		{
			name: "negative amount",
			tx: domain.Transaction{
				Kind:   domain.AddSpending,
				Title:  "Coffee",
				Amount: decimal.NewFromInt(-3),
				Date:   now,
			},
			wantErr: true,
			errMsg:  "amount must not be negative",
		},
		{
			name: "amount with a huge exponent",
			tx: domain.Transaction{
				Kind:   domain.AddBalance,
				Title:  "Bonus",
				Amount: decimal.New(1, 200000000),
				Date:   now,
			},
			wantErr: true,
			errMsg:  "amount is out of range",
		},
		{
			name: "amount too large",
			tx: domain.Transaction{
				Kind:   domain.AddBalance,
				Title:  "Bonus",
				Amount: decimal.New(1, 16),
				Date:   now,
			},
			wantErr: true,
			errMsg:  "amount must be less than",
		},
		{
			name: "amount with too many decimal places",
			tx: domain.Transaction{
				Kind:   domain.AddSpending,
				Title:  "Coffee",
				Amount: decimal.RequireFromString("3.00001"),
				Date:   now,
			},
			wantErr: true,
			errMsg:  "at most 4 decimal places",
		},
		{
			name: "missing date",
			tx: domain.Transaction{
				Kind:   domain.AddSpending,
				Title:  "Coffee",
				Amount: decimal.NewFromInt(3),
			},
			wantErr: true,
			errMsg:  "date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionFilter_Matches(t *testing.T) {
	desc := "Weekly SHOP at the market"
	tx := domain.Transaction{
		ID:          7,
		Kind:        domain.AddSpending,
		Title:       "Groceries",
		Description: &desc,
		Amount:      decimal.NewFromInt(20),
		Date:        time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name   string
		filter domain.TransactionFilter
		want   bool
	}{
		{name: "zero filter", filter: domain.TransactionFilter{}, want: true},
		{name: "title match ignores case", filter: domain.TransactionFilter{Query: "grocer"}, want: true},
		{name: "description match", filter: domain.TransactionFilter{Query: "shop"}, want: true},
		{name: "no text match", filter: domain.TransactionFilter{Query: "rent"}, want: false},
		{name: "same day", filter: domain.TransactionFilter{Scope: domain.ScopeDay, Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}, want: true},
		{name: "other day", filter: domain.TransactionFilter{Scope: domain.ScopeDay, Date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)}, want: false},
		{name: "same month", filter: domain.TransactionFilter{Scope: domain.ScopeMonth, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}, want: true},
		{name: "other month", filter: domain.TransactionFilter{Scope: domain.ScopeMonth, Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}, want: false},
		{name: "same year", filter: domain.TransactionFilter{Scope: domain.ScopeYear, Date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)}, want: true},
		{name: "scope without date", filter: domain.TransactionFilter{Scope: domain.ScopeYear}, want: true},
		{name: "kind included", filter: domain.TransactionFilter{Kinds: []domain.TransactionKind{domain.AddSpending}}, want: true},
		{name: "kind excluded", filter: domain.TransactionFilter{Kinds: []domain.TransactionKind{domain.SaveToSavings, domain.TakeFromSavings}}, want: false},
		{
			name: "day boundary follows location",
			filter: domain.TransactionFilter{
				Scope:    domain.ScopeDay,
				Date:     time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC),
				Location: time.FixedZone("UTC+8", 8*60*60),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tx))
		})
	}
}

func TestValidateAmountRange(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{name: "zero", amount: decimal.Zero},
		{name: "cents", amount: decimal.RequireFromString("19.99")},
		{name: "negative within range", amount: decimal.RequireFromString("-250.5")},
		{name: "largest", amount: decimal.RequireFromString("9999999999999999.9999")},
		{name: "redundant trailing zeros", amount: decimal.RequireFromString("2.000000")},
		{name: "just too large", amount: decimal.RequireFromString("10000000000000000"), wantErr: true},
		{name: "negative too large", amount: decimal.RequireFromString("-10000000000000000"), wantErr: true},
		{name: "fifth decimal place", amount: decimal.RequireFromString("0.00001"), wantErr: true},
		{name: "huge exponent", amount: decimal.New(1, 200000000), wantErr: true},
		{name: "tiny exponent", amount: decimal.New(1, -200000000), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateAmountRange(tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

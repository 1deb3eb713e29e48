package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/core/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func amount(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func entry(id int64, kind domain.TransactionKind, v string, date time.Time) domain.Transaction {
	return domain.Transaction{ID: id, Kind: kind, Title: string(kind), Amount: decimal.RequireFromString(v), Date: date}
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockRepo  *MockTransactionRepository
	publisher *recordingPublisher
	service   portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockTransactionRepository)
	suite.publisher = &recordingPublisher{}
	suite.service = services.NewLedgerService(suite.mockRepo,
		services.WithEventPublisher(suite.publisher),
		services.WithLedgerClock(func() time.Time { return fixedNow }),
	)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

// echoCreate makes the mock return its input with an id assigned.
func (suite *LedgerServiceTestSuite) echoCreate(id int64) *mock.Call {
	return suite.mockRepo.On("CreateTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).
		Return(func(_ context.Context, txn domain.Transaction) *domain.Transaction {
			txn.ID = id
			txn.CreatedAt = fixedNow
			return &txn
		}, nil)
}

// --- RecordTransaction ---

func (suite *LedgerServiceTestSuite) TestRecordTransaction_Success() {
	date := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	desc := "  farmers market  "
	req := dto.CreateTransactionRequest{
		Type:        domain.AddSpending,
		Title:       " Groceries ",
		Description: &desc,
		Amount:      amount("42.50"),
		Date:        &date,
	}

	suite.mockRepo.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Kind == domain.AddSpending &&
			t.Title == "Groceries" &&
			t.Description != nil && *t.Description == "farmers market" &&
			t.Amount.Equal(decimal.RequireFromString("42.5")) &&
			t.Date.Equal(date)
	})).Return(&domain.Transaction{ID: 7, Kind: domain.AddSpending, Title: "Groceries", Amount: decimal.RequireFromString("42.50"), Date: date}, nil).Once()

	txn, err := suite.service.RecordTransaction(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(7), txn.ID)
	suite.Equal([]string{events.TransactionRecorded}, suite.publisher.types())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_DefaultsDateToNow() {
	suite.echoCreate(1).Once()

	txn, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Type:   domain.AddBalance,
		Title:  "Refund",
		Amount: amount("10"),
	})

	suite.Require().NoError(err)
	suite.True(fixedNow.Equal(txn.Date))
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_SetBalanceWithoutTitle() {
	suite.echoCreate(3).Once()

	txn, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Type:   domain.SetBalance,
		Title:  "   ",
		Amount: amount("1000"),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultSetBalanceTitle, txn.Title)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_ValidationFailures() {
	tests := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{name: "missing amount", req: dto.CreateTransactionRequest{Type: domain.AddBalance, Title: "x"}},
		{name: "negative amount", req: dto.CreateTransactionRequest{Type: domain.AddSpending, Title: "x", Amount: amount("-1")}},
		{name: "missing title", req: dto.CreateTransactionRequest{Type: domain.AddSpending, Amount: amount("5")}},
		{name: "unknown type", req: dto.CreateTransactionRequest{Type: "TRANSFER", Title: "x", Amount: amount("5")}},
		{name: "oversized amount", req: dto.CreateTransactionRequest{Type: domain.AddBalance, Title: "x", Amount: amount("1e200000000")}},
		{name: "oversized savings amount", req: dto.CreateTransactionRequest{Type: domain.SaveToSavings, Title: "x", Amount: amount("1e200000000")}},
		{name: "too many decimal places", req: dto.CreateTransactionRequest{Type: domain.AddSpending, Title: "x", Amount: amount("0.00001")}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.RecordTransaction(suite.ctx, tt.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
	suite.Empty(suite.publisher.types())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_NormalisesType() {
	suite.echoCreate(9).Once()

	txn, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Type:   " add_spending ",
		Title:  "Lunch",
		Amount: amount("12"),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.AddSpending, txn.Kind)
	suite.Equal([]string{events.TransactionRecorded}, suite.publisher.types())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_SavingsKindIsBounded() {
	suite.mockRepo.On("ListTransactions", mock.Anything, portsrepo.Ascending).
		Return([]domain.Transaction{entry(1, domain.SetBalance, "300", fixedNow.AddDate(0, 0, -3))}, nil)

	_, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Type:   domain.SaveToSavings,
		Title:  "Rainy day",
		Amount: amount("500"),
	})

	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_StoreFailure() {
	storeErr := apperrors.NewAppError(http.StatusInternalServerError, "failed to insert transaction", errors.New("disk full"))
	suite.mockRepo.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, storeErr).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Type:   domain.AddSpending,
		Title:  "Coffee",
		Amount: amount("3"),
	})

	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.Empty(suite.publisher.types())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_PublishFailureIsNotFatal() {
	suite.publisher.err = errors.New("broker down")
	suite.echoCreate(4).Once()

	txn, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Type:   domain.AddBalance,
		Title:  "Salary",
		Amount: amount("2000"),
	})

	suite.Require().NoError(err)
	suite.Equal(int64(4), txn.ID)
}

// --- Savings ---

func (suite *LedgerServiceTestSuite) TestDepositToSavings() {
	suite.mockRepo.On("ListTransactions", mock.Anything, portsrepo.Ascending).
		Return([]domain.Transaction{entry(1, domain.SetBalance, "300", fixedNow.AddDate(0, 0, -1))}, nil)

	_, err := suite.service.DepositToSavings(suite.ctx, dto.SavingsTransferRequest{Amount: amount("500")})
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)

	_, err = suite.service.DepositToSavings(suite.ctx, dto.SavingsTransferRequest{Amount: amount("0")})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.echoCreate(2).Once()
	txn, err := suite.service.DepositToSavings(suite.ctx, dto.SavingsTransferRequest{Amount: amount("300")})
	suite.Require().NoError(err)
	suite.Equal(domain.SaveToSavings, txn.Kind)
	suite.Equal(domain.DefaultSaveToSavingsTitle, txn.Title)
}

func (suite *LedgerServiceTestSuite) TestWithdrawFromSavings() {
	suite.mockRepo.On("ListTransactions", mock.Anything, portsrepo.Ascending).
		Return([]domain.Transaction{entry(1, domain.SaveToSavings, "150", fixedNow.AddDate(0, 0, -1))}, nil)

	suite.echoCreate(2).Once()
	txn, err := suite.service.WithdrawFromSavings(suite.ctx, dto.SavingsTransferRequest{Amount: amount("100"), Title: "Vacation"})
	suite.Require().NoError(err)
	suite.Equal(domain.TakeFromSavings, txn.Kind)
	suite.Equal("Vacation", txn.Title)

	_, err = suite.service.WithdrawFromSavings(suite.ctx, dto.SavingsTransferRequest{Amount: amount("151")})
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

// --- DiscardTransaction ---

func (suite *LedgerServiceTestSuite) TestDiscardTransaction() {
	suite.mockRepo.On("DeleteTransaction", mock.Anything, int64(5)).Return(nil).Once()

	suite.Require().NoError(suite.service.DiscardTransaction(suite.ctx, 5))
	suite.Equal([]string{events.TransactionDiscarded}, suite.publisher.types())
}

func (suite *LedgerServiceTestSuite) TestDiscardTransaction_NotFound() {
	suite.mockRepo.On("DeleteTransaction", mock.Anything, int64(9)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DiscardTransaction(suite.ctx, 9)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.publisher.types())
}

func (suite *LedgerServiceTestSuite) TestDiscardTransaction_InvalidID() {
	suite.ErrorIs(suite.service.DiscardTransaction(suite.ctx, 0), apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

// --- Totals ---

func (suite *LedgerServiceTestSuite) TestGetTotals() {
	suite.mockRepo.On("ListTransactions", mock.Anything, portsrepo.Ascending).Return([]domain.Transaction{
		entry(1, domain.SetBalance, "100", fixedNow.AddDate(0, 0, -3)),
		entry(2, domain.AddBalance, "50", fixedNow.AddDate(0, 0, -2)),
		entry(3, domain.AddSpending, "30", fixedNow.AddDate(0, 0, -1)),
	}, nil).Once()

	totals, err := suite.service.GetTotals(suite.ctx)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(120).Equal(totals.Balance))
	suite.True(totals.Savings.IsZero())
}

func (suite *LedgerServiceTestSuite) TestGetStatement() {
	suite.mockRepo.On("ListTransactions", mock.Anything, portsrepo.Ascending).Return([]domain.Transaction{
		entry(1, domain.SetBalance, "100", fixedNow.AddDate(0, 0, -2)),
		entry(2, domain.SaveToSavings, "40", fixedNow.AddDate(0, 0, -1)),
	}, nil).Once()

	lines, err := suite.service.GetStatement(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	suite.True(decimal.NewFromInt(60).Equal(lines[1].BalanceAfter))
	suite.True(decimal.NewFromInt(40).Equal(lines[1].SavingsAfter))
}

func (suite *LedgerServiceTestSuite) TestGetTotals_StoreFailure() {
	suite.mockRepo.On("ListTransactions", mock.Anything, portsrepo.Ascending).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions", errors.New("conn reset"))).Once()

	_, err := suite.service.GetTotals(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
}

// --- ListTransactions ---

func (suite *LedgerServiceTestSuite) newestFirst() []domain.Transaction {
	return []domain.Transaction{
		entry(5, domain.AddSpending, "5", time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)),
		entry(4, domain.SaveToSavings, "4", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		entry(3, domain.AddSpending, "3", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		entry(2, domain.AddBalance, "2", time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)),
		entry(1, domain.SetBalance, "1", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)),
	}
}

func (suite *LedgerServiceTestSuite) TestListTransactions_Paginates() {
	suite.mockRepo.On("ListTransactions", mock.Anything, portsrepo.Descending).Return(suite.newestFirst(), nil)

	var seen []int64
	params := dto.ListTransactionsParams{Limit: 2}
	for page := 0; page < 5; page++ {
		resp, err := suite.service.ListTransactions(suite.ctx, params)
		suite.Require().NoError(err)
		for _, t := range resp.Transactions {
			seen = append(seen, t.ID)
		}
		if resp.NextToken == nil {
			break
		}
		params.NextToken = *resp.NextToken
	}

	suite.Equal([]int64{5, 4, 3, 2, 1}, seen)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_Filters() {
	suite.mockRepo.On("ListTransactions", mock.Anything, portsrepo.Descending).Return(suite.newestFirst(), nil)

	tests := []struct {
		name   string
		params dto.ListTransactionsParams
		want   []int64
	}{
		{name: "all", params: dto.ListTransactionsParams{}, want: []int64{5, 4, 3, 2, 1}},
		{name: "savings kinds", params: dto.ListTransactionsParams{Kinds: []string{"SAVE_TO_SAVINGS", "take_from_savings"}}, want: []int64{4}},
		{name: "day", params: dto.ListTransactionsParams{Scope: "day", Date: "2024-06-10"}, want: []int64{4, 3}},
		{name: "month defaults to now", params: dto.ListTransactionsParams{Scope: "month"}, want: []int64{5, 4, 3}},
		{name: "year", params: dto.ListTransactionsParams{Scope: "year", Date: "2023-01-01"}, want: []int64{1}},
		{name: "text", params: dto.ListTransactionsParams{Query: "spending"}, want: []int64{5, 3}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			resp, err := suite.service.ListTransactions(suite.ctx, tt.params)
			suite.Require().NoError(err)
			got := make([]int64, len(resp.Transactions))
			for i, t := range resp.Transactions {
				got[i] = t.ID
			}
			suite.Equal(tt.want, got)
			suite.Nil(resp.NextToken)
		})
	}
}

func (suite *LedgerServiceTestSuite) TestListTransactions_InvalidParams() {
	tests := []dto.ListTransactionsParams{
		{NextToken: "not-a-token"},
		{Scope: "week"},
		{Scope: "day", Date: "10/06/2024"},
		{Kinds: []string{"TRANSFER"}},
	}
	for _, params := range tests {
		_, err := suite.service.ListTransactions(suite.ctx, params)
		suite.ErrorIs(err, apperrors.ErrValidation, "params %+v", params)
	}
}

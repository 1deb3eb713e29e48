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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	txnRepo      *MockTransactionRepository
	categoryRepo *MockCategoryRepository
	service      portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.txnRepo = new(MockTransactionRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.service = services.NewReportingService(suite.txnRepo, suite.categoryRepo,
		services.WithReportClock(func() time.Time { return fixedNow }))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (suite *ReportingServiceTestSuite) ledger() []domain.Transaction {
	return []domain.Transaction{
		entry(1, domain.SetBalance, "1000", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
		entry(2, domain.SaveToSavings, "100", time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)),
		entry(3, domain.AddBalance, "500", time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)),
		entry(4, domain.AddSpending, "62", time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)),
		entry(5, domain.SaveToSavings, "150", time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)),
	}
}

func (suite *ReportingServiceTestSuite) TestPeriodSummary_Month() {
	suite.txnRepo.On("ListTransactions", mock.Anything, portsrepo.Ascending).Return(suite.ledger(), nil).Once()

	report, err := suite.service.PeriodSummary(suite.ctx, domain.ReportPeriod{Year: 2024, Month: 5})

	suite.Require().NoError(err)
	suite.Equal(3, report.TransactionCount)
	suite.True(decimal.NewFromInt(500).Equal(report.TotalIncome))
	suite.True(decimal.NewFromInt(62).Equal(report.TotalSpending))
	suite.True(decimal.NewFromInt(2).Equal(report.AverageDailySpending))
	suite.True(decimal.NewFromInt(150).Equal(report.NetSavings))
	suite.True(decimal.NewFromInt(100).Equal(report.PreviousNetSavings))
	suite.True(decimal.NewFromInt(50).Equal(report.SavingsGrowthPercent))
	suite.Equal(time.UTC, report.Period.Location)
}

func (suite *ReportingServiceTestSuite) TestPeriodSummary_MonthWithoutYear() {
	_, err := suite.service.PeriodSummary(suite.ctx, domain.ReportPeriod{Month: 5})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestPeriodSummary_UsesReportLocation() {
	kolkata := time.FixedZone("IST", 5*60*60+30*60)
	svc := services.NewReportingService(suite.txnRepo, suite.categoryRepo,
		services.WithReportLocation(kolkata),
		services.WithReportClock(func() time.Time { return fixedNow }))

	// 2024-05-31 20:00 UTC is already June 1st in IST.
	suite.txnRepo.On("ListTransactions", mock.Anything, portsrepo.Ascending).Return([]domain.Transaction{
		entry(1, domain.AddSpending, "30", time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC)),
	}, nil)

	may, err := svc.PeriodSummary(suite.ctx, domain.ReportPeriod{Year: 2024, Month: 5})
	suite.Require().NoError(err)
	suite.Equal(0, may.TransactionCount)

	june, err := svc.PeriodSummary(suite.ctx, domain.ReportPeriod{Year: 2024, Month: 6})
	suite.Require().NoError(err)
	suite.Equal(1, june.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestDashboard() {
	suite.txnRepo.On("ListTransactions", mock.Anything, portsrepo.Ascending).Return(suite.ledger(), nil).Once()
	suite.categoryRepo.On("ListCategories", mock.Anything, domain.IncomeCategory).Return([]domain.Category{
		{ID: 1, Kind: domain.IncomeCategory, Name: "Salary", Value: decimal.NewFromInt(3000)},
		{ID: 2, Kind: domain.IncomeCategory, Name: "Side gig", Value: decimal.RequireFromString("250.50")},
	}, nil).Once()
	suite.categoryRepo.On("ListCategories", mock.Anything, domain.ExpenseCategory).Return([]domain.Category{
		{ID: 1, Kind: domain.ExpenseCategory, Name: "Rent", Value: decimal.NewFromInt(1200)},
	}, nil).Once()

	dashboard, err := suite.service.Dashboard(suite.ctx)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1188).Equal(dashboard.Balance), "balance %s", dashboard.Balance)
	suite.True(decimal.NewFromInt(250).Equal(dashboard.Savings))
	suite.True(decimal.RequireFromString("3250.50").Equal(dashboard.IncomeBudget))
	suite.True(decimal.NewFromInt(1200).Equal(dashboard.ExpenseBudget))
	suite.True(decimal.RequireFromString("2050.50").Equal(dashboard.PlannedSurplus))
	suite.Equal(2, dashboard.IncomeCategories)
	suite.Equal(1, dashboard.ExpenseCategories)
}

func (suite *ReportingServiceTestSuite) TestDashboard_StoreFailure() {
	storeErr := apperrors.NewAppError(http.StatusInternalServerError, "failed to query categories", errors.New("timeout"))
	suite.txnRepo.On("ListTransactions", mock.Anything, portsrepo.Ascending).Return(suite.ledger(), nil).Maybe()
	suite.categoryRepo.On("ListCategories", mock.Anything, domain.IncomeCategory).Return(nil, storeErr).Once()
	suite.categoryRepo.On("ListCategories", mock.Anything, domain.ExpenseCategory).Return([]domain.Category{}, nil).Maybe()

	_, err := suite.service.Dashboard(suite.ctx)

	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
}

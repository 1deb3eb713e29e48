package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	txnRepo      portsrepo.TransactionReader
	categoryRepo portsrepo.CategoryReader
	location     *time.Location
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportLocation sets the calendar used to bucket transactions into months and years.
func WithReportLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		s.location = loc
	}
}

// WithReportClock overrides the clock that anchors all-time comparisons.
func WithReportClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.Clock = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(txnRepo portsrepo.TransactionReader, categoryRepo portsrepo.CategoryReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		location:     time.UTC,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// PeriodSummary aggregates the ledger for a month, a year or all time
func (s *reportingService) PeriodSummary(ctx context.Context, period domain.ReportPeriod) (*domain.PeriodReport, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	if period.Location == nil {
		period.Location = s.location
	}

	txns, err := s.txnRepo.ListTransactions(ctx, portsrepo.Ascending)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for report", slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to retrieve transactions for report: %w", err)
	}

	report := accounting.Summarize(txns, period, s.Now())

	s.LogInfo(ctx, "Period report generated successfully",
		slog.String("period", period.String()),
		slog.Int("transaction_count", report.TransactionCount))
	return &report, nil
}

// Dashboard combines ledger totals with the budget category sums. The three
// reads run concurrently and the first failure cancels the rest.
func (s *reportingService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var (
		txns    []domain.Transaction
		income  []domain.Category
		expense []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = s.txnRepo.ListTransactions(gctx, portsrepo.Ascending)
		return err
	})
	g.Go(func() error {
		var err error
		income, err = s.categoryRepo.ListCategories(gctx, domain.IncomeCategory)
		return err
	})
	g.Go(func() error {
		var err error
		expense, err = s.categoryRepo.ListCategories(gctx, domain.ExpenseCategory)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard")
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	totals := accounting.ComputeTotals(txns)
	dashboard := &domain.Dashboard{
		Balance:           totals.Balance,
		Savings:           totals.Savings,
		IncomeBudget:      sumCategories(income),
		ExpenseBudget:     sumCategories(expense),
		IncomeCategories:  len(income),
		ExpenseCategories: len(expense),
	}
	dashboard.PlannedSurplus = dashboard.IncomeBudget.Sub(dashboard.ExpenseBudget)
	return dashboard, nil
}

func sumCategories(cs []domain.Category) decimal.Decimal {
	total := decimal.Zero
	for _, c := range cs {
		total = total.Add(c.Value)
	}
	return total
}

package services

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// ReportingService defines operations for generating ledger reports
type ReportingService interface {
	// PeriodSummary aggregates the ledger for a month, a year or all time
	PeriodSummary(ctx context.Context, period domain.ReportPeriod) (*domain.PeriodReport, error)

	// Dashboard combines ledger totals with the budget category sums
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

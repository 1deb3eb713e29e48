package dto

import (
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// ReportParams selects the report period. No year means all time.
type ReportParams struct {
	Year  int `form:"year" binding:"omitempty,min=1"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// ToPeriod converts the params to a domain period.
func (p ReportParams) ToPeriod() domain.ReportPeriod {
	return domain.ReportPeriod{Year: p.Year, Month: p.Month}
}

// PeriodReportResponse represents the period summary report response
type PeriodReportResponse struct {
	Period         string `json:"period"`
	PreviousPeriod string `json:"previousPeriod"`
	Summary        struct {
		TotalIncome   decimal.Decimal `json:"totalIncome" swaggertype:"string"`
		TotalSpending decimal.Decimal `json:"totalSpending" swaggertype:"string"`
		NetIncome     decimal.Decimal `json:"netIncome" swaggertype:"string"`
	} `json:"summary"`
	Savings struct {
		Added         decimal.Decimal `json:"added" swaggertype:"string"`
		Taken         decimal.Decimal `json:"taken" swaggertype:"string"`
		Net           decimal.Decimal `json:"net" swaggertype:"string"`
		PreviousNet   decimal.Decimal `json:"previousNet" swaggertype:"string"`
		GrowthPercent decimal.Decimal `json:"growthPercent" swaggertype:"string"`
	} `json:"savings"`
	AverageDailySpending decimal.Decimal `json:"averageDailySpending" swaggertype:"string"`
	Counts               struct {
		Total           int             `json:"total"`
		ByType          map[string]int  `json:"byType"`
		IncomePercent   decimal.Decimal `json:"incomePercent" swaggertype:"string"`
		SpendingPercent decimal.Decimal `json:"spendingPercent" swaggertype:"string"`
	} `json:"counts"`
}

// DashboardResponse represents the landing page summary
type DashboardResponse struct {
	Balance           decimal.Decimal `json:"balance" swaggertype:"string"`
	Savings           decimal.Decimal `json:"savings" swaggertype:"string"`
	IncomeBudget      decimal.Decimal `json:"incomeBudget" swaggertype:"string"`
	ExpenseBudget     decimal.Decimal `json:"expenseBudget" swaggertype:"string"`
	PlannedSurplus    decimal.Decimal `json:"plannedSurplus" swaggertype:"string"`
	IncomeCategories  int             `json:"incomeCategories"`
	ExpenseCategories int             `json:"expenseCategories"`
}

// ToPeriodReportResponse converts a domain report. Derived ratios are rounded for display.
func ToPeriodReportResponse(r *domain.PeriodReport) PeriodReportResponse {
	var resp PeriodReportResponse
	resp.Period = r.Period.String()
	resp.PreviousPeriod = r.PreviousPeriod.String()

	resp.Summary.TotalIncome = r.TotalIncome
	resp.Summary.TotalSpending = r.TotalSpending
	resp.Summary.NetIncome = r.NetIncome

	resp.Savings.Added = r.SavingsAdded
	resp.Savings.Taken = r.SavingsTaken
	resp.Savings.Net = r.NetSavings
	resp.Savings.PreviousNet = r.PreviousNetSavings
	resp.Savings.GrowthPercent = utils.RoundAmount(r.SavingsGrowthPercent)

	resp.AverageDailySpending = utils.RoundAmount(r.AverageDailySpending)

	resp.Counts.Total = r.TransactionCount
	resp.Counts.ByType = make(map[string]int, len(r.CountsByKind))
	for k, n := range r.CountsByKind {
		resp.Counts.ByType[string(k)] = n
	}
	resp.Counts.IncomePercent = utils.RoundAmount(r.IncomeSharePercent)
	resp.Counts.SpendingPercent = utils.RoundAmount(r.SpendingSharePercent)
	return resp
}

// ToDashboardResponse converts a domain dashboard.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Balance:           d.Balance,
		Savings:           d.Savings,
		IncomeBudget:      d.IncomeBudget,
		ExpenseBudget:     d.ExpenseBudget,
		PlannedSurplus:    d.PlannedSurplus,
		IncomeCategories:  d.IncomeCategories,
		ExpenseCategories: d.ExpenseCategories,
	}
}

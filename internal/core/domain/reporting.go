package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ReportPeriod selects the transactions a report covers.
// Year == 0 means all time; Month == 0 means the whole year.
type ReportPeriod struct {
	Year     int            `json:"year,omitempty"`
	Month    int            `json:"month,omitempty"`
	Location *time.Location `json:"-"`
}

// Validate rejects months outside 1-12 and a month given without a year.
func (p ReportPeriod) Validate() error {
	if p.Year < 0 {
		return apperrors.NewValidationError("year must not be negative")
	}
	if p.Month < 0 || p.Month > 12 {
		return apperrors.NewValidationError("month must be between 1 and 12")
	}
	if p.Month != 0 && p.Year == 0 {
		return apperrors.NewValidationError("month filter requires a year")
	}
	return nil
}

// IsAllTime reports whether the period is unbounded.
func (p ReportPeriod) IsAllTime() bool { return p.Year == 0 }

// IsMonth reports whether the period is a single calendar month.
func (p ReportPeriod) IsMonth() bool { return p.Year != 0 && p.Month != 0 }

func (p ReportPeriod) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// Contains reports whether t falls inside the period, using the period's calendar.
func (p ReportPeriod) Contains(t time.Time) bool {
	if p.IsAllTime() {
		return true
	}
	local := t.In(p.location())
	if local.Year() != p.Year {
		return false
	}
	return p.Month == 0 || int(local.Month()) == p.Month
}

// Previous returns the immediately preceding period of equal length.
// An all-time period compares against the year before now.
func (p ReportPeriod) Previous(now time.Time) ReportPeriod {
	prev := ReportPeriod{Location: p.Location}
	switch {
	case p.IsMonth():
		if p.Month == 1 {
			prev.Year, prev.Month = p.Year-1, 12
		} else {
			prev.Year, prev.Month = p.Year, p.Month-1
		}
	case p.IsAllTime():
		prev.Year = now.In(p.location()).Year() - 1
	default:
		prev.Year = p.Year - 1
	}
	return prev
}

// Days is the divisor used for average daily figures: the month length, otherwise 365.
func (p ReportPeriod) Days() int {
	if p.IsMonth() {
		return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	}
	return 365
}

func (p ReportPeriod) String() string {
	switch {
	case p.IsMonth():
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	case p.IsAllTime():
		return "all time"
	default:
		return fmt.Sprintf("%04d", p.Year)
	}
}

// PeriodReport aggregates ledger activity inside one ReportPeriod.
type PeriodReport struct {
	Period               ReportPeriod            `json:"period"`
	PreviousPeriod       ReportPeriod            `json:"previousPeriod"`
	TotalIncome          decimal.Decimal         `json:"totalIncome"`
	TotalSpending        decimal.Decimal         `json:"totalSpending"`
	SavingsAdded         decimal.Decimal         `json:"savingsAdded"`
	SavingsTaken         decimal.Decimal         `json:"savingsTaken"`
	NetSavings           decimal.Decimal         `json:"netSavings"`
	PreviousNetSavings   decimal.Decimal         `json:"previousNetSavings"`
	SavingsGrowthPercent decimal.Decimal         `json:"savingsGrowthPercent"`
	AverageDailySpending decimal.Decimal         `json:"averageDailySpending"`
	NetIncome            decimal.Decimal         `json:"netIncome"` // income minus spending
	CountsByKind         map[TransactionKind]int `json:"countsByKind"`
	TransactionCount     int                     `json:"transactionCount"`
	IncomeSharePercent   decimal.Decimal         `json:"incomeSharePercent"`
	SpendingSharePercent decimal.Decimal         `json:"spendingSharePercent"`
}

// Dashboard is the landing-page summary: ledger totals plus budget category sums.
type Dashboard struct {
	Balance           decimal.Decimal `json:"balance"`
	Savings           decimal.Decimal `json:"savings"`
	IncomeBudget      decimal.Decimal `json:"incomeBudget"`
	ExpenseBudget     decimal.Decimal `json:"expenseBudget"`
	PlannedSurplus    decimal.Decimal `json:"plannedSurplus"`
	IncomeCategories  int             `json:"incomeCategories"`
	ExpenseCategories int             `json:"expenseCategories"`
}

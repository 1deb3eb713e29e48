package accounting

import (
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentChange compares current against previous.
// When previous is not positive the result is 100 if current is positive, else 0.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsPositive() {
		return current.Sub(previous).Div(previous).Mul(hundred)
	}
	if current.IsPositive() {
		return hundred
	}
	return decimal.Zero
}

// AverageDailySpending divides spending by the number of days in period.
func AverageDailySpending(spending decimal.Decimal, period domain.ReportPeriod) decimal.Decimal {
	return spending.Div(decimal.NewFromInt(int64(period.Days())))
}

// SumByKind adds up the amounts of every entry of kind k inside period.
func SumByKind(txns []domain.Transaction, period domain.ReportPeriod, k domain.TransactionKind) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Kind == k && period.Contains(txn.Date) {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// NetSavings is the savings delta inside period.
func NetSavings(txns []domain.Transaction, period domain.ReportPeriod) decimal.Decimal {
	return SumByKind(txns, period, domain.SaveToSavings).Sub(SumByKind(txns, period, domain.TakeFromSavings))
}

func share(count, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count)).Div(decimal.NewFromInt(int64(total))).Mul(hundred)
}

// Summarize builds the period report from the full ledger. now anchors the
// comparison period for all-time reports.
func Summarize(txns []domain.Transaction, period domain.ReportPeriod, now time.Time) domain.PeriodReport {
	previous := period.Previous(now)

	report := domain.PeriodReport{
		Period:         period,
		PreviousPeriod: previous,
		TotalIncome:    SumByKind(txns, period, domain.AddBalance),
		TotalSpending:  SumByKind(txns, period, domain.AddSpending),
		SavingsAdded:   SumByKind(txns, period, domain.SaveToSavings),
		SavingsTaken:   SumByKind(txns, period, domain.TakeFromSavings),
		CountsByKind:   make(map[domain.TransactionKind]int, len(domain.TransactionKinds)),
	}
	for _, k := range domain.TransactionKinds {
		report.CountsByKind[k] = 0
	}
	for _, txn := range txns {
		if period.Contains(txn.Date) {
			report.CountsByKind[txn.Kind]++
			report.TransactionCount++
		}
	}

	report.NetSavings = report.SavingsAdded.Sub(report.SavingsTaken)
	report.PreviousNetSavings = NetSavings(txns, previous)
	report.SavingsGrowthPercent = PercentChange(report.NetSavings, report.PreviousNetSavings)
	report.AverageDailySpending = AverageDailySpending(report.TotalSpending, period)
	report.NetIncome = report.TotalIncome.Sub(report.TotalSpending)
	report.IncomeSharePercent = share(report.CountsByKind[domain.AddBalance], report.TransactionCount)
	report.SpendingSharePercent = share(report.CountsByKind[domain.AddSpending], report.TransactionCount)

	return report
}

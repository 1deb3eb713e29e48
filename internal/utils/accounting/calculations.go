package accounting

import (
	"sort"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SortChronologically returns a copy of txns ordered by effective date, oldest first.
// Entries sharing a date keep id order so replay is deterministic.
func SortChronologically(txns []domain.Transaction) []domain.Transaction {
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// ApplyToBalance returns the balance after txn is applied to balance.
func ApplyToBalance(balance decimal.Decimal, txn domain.Transaction) decimal.Decimal {
	switch txn.Kind {
	case domain.SetBalance:
		return txn.Amount
	case domain.AddBalance, domain.TakeFromSavings:
		return balance.Add(txn.Amount)
	case domain.AddSpending, domain.SaveToSavings:
		return balance.Sub(txn.Amount)
	}
	return balance
}

// ApplyToSavings returns the savings total after txn is applied to savings.
func ApplyToSavings(savings decimal.Decimal, txn domain.Transaction) decimal.Decimal {
	switch txn.Kind {
	case domain.SaveToSavings:
		return savings.Add(txn.Amount)
	case domain.TakeFromSavings:
		return savings.Sub(txn.Amount)
	}
	return savings
}

// ComputeBalance replays txns in date order starting from zero.
//
// A SET_BALANCE entry discards everything before it, so the fold starts at
// the last one instead of the first entry.
func ComputeBalance(txns []domain.Transaction) decimal.Decimal {
	sorted := SortChronologically(txns)

	start := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Kind == domain.SetBalance {
			start = i
			break
		}
	}

	balance := decimal.Zero
	for _, txn := range sorted[start:] {
		balance = ApplyToBalance(balance, txn)
	}
	return balance
}

// ComputeSavings is the sum of deposits minus the sum of withdrawals. Order does not matter.
func ComputeSavings(txns []domain.Transaction) decimal.Decimal {
	savings := decimal.Zero
	for _, txn := range txns {
		savings = ApplyToSavings(savings, txn)
	}
	return savings
}

// ComputeTotals derives both ledger aggregates.
func ComputeTotals(txns []domain.Transaction) domain.LedgerTotals {
	return domain.LedgerTotals{
		Balance: ComputeBalance(txns),
		Savings: ComputeSavings(txns),
	}
}

// Replay folds the whole ledger and records the running totals after every entry.
func Replay(txns []domain.Transaction) []domain.StatementLine {
	sorted := SortChronologically(txns)
	lines := make([]domain.StatementLine, len(sorted))

	balance, savings := decimal.Zero, decimal.Zero
	for i, txn := range sorted {
		balance = ApplyToBalance(balance, txn)
		savings = ApplyToSavings(savings, txn)
		lines[i] = domain.StatementLine{
			Transaction:  txn,
			BalanceAfter: balance,
			SavingsAfter: savings,
		}
	}
	return lines
}

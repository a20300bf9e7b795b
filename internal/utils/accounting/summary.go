package accounting

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
)

// DefaultBreakdownLimit is the number of category rows kept when the caller
// does not ask for a specific limit.
const DefaultBreakdownLimit = 8

var oneHundred = decimal.NewFromInt(100)

// Summarize computes income, expense and balance totals over a snapshot of
// transactions. It is total over any input; an empty slice yields all zeros.
// Amounts with an unknown kind contribute to neither side.
func Summarize(txns []domain.Transaction) domain.Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range txns {
		switch txn.Kind {
		case domain.KindIncome:
			income = income.Add(txn.Amount)
		case domain.KindExpense:
			expense = expense.Add(txn.Amount)
		}
	}
	return domain.Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// CategoryBreakdown groups transactions by category, sums amounts per group
// and returns the top groups by summed amount, descending. The kind tag of a
// group is the kind of the first transaction seen for that category; a
// category is assumed single-kind in practice. Ties keep first-encountered
// order, so the result is deterministic for a given input order.
//
// limit <= 0 falls back to DefaultBreakdownLimit.
func CategoryBreakdown(txns []domain.Transaction, limit int) []domain.CategoryTotal {
	if limit <= 0 {
		limit = DefaultBreakdownLimit
	}

	totals := make(map[string]int) // category -> index into rows
	rows := make([]domain.CategoryTotal, 0)
	for _, txn := range txns {
		if idx, ok := totals[txn.Category]; ok {
			rows[idx].Amount = rows[idx].Amount.Add(txn.Amount)
			continue
		}
		totals[txn.Category] = len(rows)
		rows = append(rows, domain.CategoryTotal{
			Category: txn.Category,
			Amount:   txn.Amount,
			Kind:     txn.Kind,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount.GreaterThan(rows[j].Amount)
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// IncomeShare returns the income percentage of the combined flow,
// income / (income + expense) * 100. With no flow at all the split is
// reported as an even 50 rather than failing on division by zero.
func IncomeShare(income, expense decimal.Decimal) decimal.Decimal {
	total := income.Add(expense)
	if total.IsZero() {
		return decimal.NewFromInt(50)
	}
	return income.Div(total).Mul(oneHundred)
}

package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
	"github.com/spendtrack/expense_tracker_app/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(kind domain.TransactionKind, category string, amount int64) domain.Transaction {
	return domain.Transaction{
		Kind:     kind,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := accounting.Summarize(nil)
	assert.True(t, s.Income.IsZero(), "income should be zero")
	assert.True(t, s.Expense.IsZero(), "expense should be zero")
	assert.True(t, s.Balance.IsZero(), "balance should be zero")
}

func TestSummarize_MixedKinds(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.KindIncome, "Salary", 100),
		txn(domain.KindExpense, "Groceries", 40),
	}

	s := accounting.Summarize(txns)

	assert.True(t, s.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Expense.Equal(decimal.NewFromInt(40)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(60)))
}

func TestSummarize_UnknownKindExcluded(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.KindIncome, "Salary", 100),
		txn(domain.TransactionKind("transfer"), "Misc", 999),
	}

	s := accounting.Summarize(txns)

	assert.True(t, s.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Expense.IsZero())
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(100)))
}

func TestCategoryBreakdown_GroupsAndSorts(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.KindExpense, "Food", 30),
		txn(domain.KindExpense, "Food", 20),
		txn(domain.KindExpense, "Rent", 100),
	}

	rows := accounting.CategoryBreakdown(txns, 8)

	require.Len(t, rows, 2)
	assert.Equal(t, "Rent", rows[0].Category)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Food", rows[1].Category)
	assert.True(t, rows[1].Amount.Equal(decimal.NewFromInt(50)))
}

func TestCategoryBreakdown_TiesKeepFirstEncounteredOrder(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.KindExpense, "Dining", 25),
		txn(domain.KindExpense, "Shopping", 25),
		txn(domain.KindExpense, "Utilities", 25),
	}

	rows := accounting.CategoryBreakdown(txns, 8)

	require.Len(t, rows, 3)
	assert.Equal(t, "Dining", rows[0].Category)
	assert.Equal(t, "Shopping", rows[1].Category)
	assert.Equal(t, "Utilities", rows[2].Category)
}

func TestCategoryBreakdown_TruncatesToLimit(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.KindExpense, "A", 9),
		txn(domain.KindExpense, "B", 8),
		txn(domain.KindExpense, "C", 7),
		txn(domain.KindExpense, "D", 6),
	}

	rows := accounting.CategoryBreakdown(txns, 2)

	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Category)
	assert.Equal(t, "B", rows[1].Category)
}

func TestCategoryBreakdown_FirstSeenKindRetained(t *testing.T) {
	// Mixed-kind category: amounts keep accumulating, kind tag stays with
	// the first writer.
	txns := []domain.Transaction{
		txn(domain.KindIncome, "Side Gig", 50),
		txn(domain.KindExpense, "Side Gig", 10),
	}

	rows := accounting.CategoryBreakdown(txns, 8)

	require.Len(t, rows, 1)
	assert.Equal(t, domain.KindIncome, rows[0].Kind)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(60)))
}

func TestCategoryBreakdown_DefaultLimit(t *testing.T) {
	txns := make([]domain.Transaction, 0, 10)
	for _, c := range domain.ExpenseCategories {
		txns = append(txns, txn(domain.KindExpense, c, 10))
	}

	rows := accounting.CategoryBreakdown(txns, 0)

	assert.Len(t, rows, accounting.DefaultBreakdownLimit)
}

func TestIncomeShare(t *testing.T) {
	t.Run("zero flow reports even split", func(t *testing.T) {
		share := accounting.IncomeShare(decimal.Zero, decimal.Zero)
		assert.True(t, share.Equal(decimal.NewFromInt(50)))
	})

	t.Run("all income", func(t *testing.T) {
		share := accounting.IncomeShare(decimal.NewFromInt(80), decimal.Zero)
		assert.True(t, share.Equal(decimal.NewFromInt(100)))
	})

	t.Run("three quarters income", func(t *testing.T) {
		share := accounting.IncomeShare(decimal.NewFromInt(75), decimal.NewFromInt(25))
		assert.True(t, share.Equal(decimal.NewFromInt(75)))
	})
}

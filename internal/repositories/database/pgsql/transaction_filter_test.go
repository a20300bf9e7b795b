package pgsql

import (
	"testing"
	"time"

	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	assert.NoError(t, err)
	return &parsed
}

func TestBuildTransactionPredicate_OwnerOnly(t *testing.T) {
	where, args := buildTransactionPredicate("user-1", domain.TransactionFilter{})

	assert.Equal(t, "owner_id = $1", where)
	assert.Equal(t, []any{"user-1"}, args)
}

func TestBuildTransactionPredicate_AllConstraints(t *testing.T) {
	kind := domain.KindExpense
	category := "Groceries"
	from := datePtr(t, "2025-01-01")
	to := datePtr(t, "2025-01-31")

	where, args := buildTransactionPredicate("user-1", domain.TransactionFilter{
		Kind:     &kind,
		Category: &category,
		DateFrom: from,
		DateTo:   to,
	})

	assert.Equal(t, "owner_id = $1 AND kind = $2 AND category = $3 AND occurred_on >= $4 AND occurred_on <= $5", where)
	assert.Equal(t, []any{"user-1", "expense", "Groceries", *from, *to}, args)
}

func TestBuildTransactionPredicate_PartialConstraints(t *testing.T) {
	category := "Salary"
	to := datePtr(t, "2025-06-30")

	where, args := buildTransactionPredicate("user-2", domain.TransactionFilter{
		Category: &category,
		DateTo:   to,
	})

	assert.Equal(t, "owner_id = $1 AND category = $2 AND occurred_on <= $3", where)
	assert.Equal(t, []any{"user-2", "Salary", *to}, args)
}

func TestBuildTransactionPredicate_ReversedRangeStillBuilds(t *testing.T) {
	// from > to must produce a valid (just unsatisfiable) predicate.
	from := datePtr(t, "2025-02-01")
	to := datePtr(t, "2025-01-01")

	where, args := buildTransactionPredicate("user-3", domain.TransactionFilter{
		DateFrom: from,
		DateTo:   to,
	})

	assert.Equal(t, "owner_id = $1 AND occurred_on >= $2 AND occurred_on <= $3", where)
	assert.Len(t, args, 3)
}

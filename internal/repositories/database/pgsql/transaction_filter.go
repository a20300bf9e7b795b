package pgsql

import (
	"fmt"
	"strings"

	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
)

// buildTransactionPredicate translates an owner scope plus optional filter
// constraints into a WHERE clause and its positional arguments. Owner scoping
// is always the first conjunct; supplied constraints are ANDed on. A reversed
// date range (from > to) simply produces a clause no row satisfies — that is
// the contract, not an error.
func buildTransactionPredicate(ownerID string, f domain.TransactionFilter) (string, []any) {
	clauses := []string{"owner_id = $1"}
	args := []any{ownerID}

	if f.Kind != nil {
		args = append(args, string(*f.Kind))
		clauses = append(clauses, fmt.Sprintf("kind = $%d", len(args)))
	}
	if f.Category != nil {
		args = append(args, *f.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		clauses = append(clauses, fmt.Sprintf("occurred_on >= $%d", len(args)))
	}
	if f.DateTo != nil {
		args = append(args, *f.DateTo)
		clauses = append(clauses, fmt.Sprintf("occurred_on <= $%d", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

package domain

import "github.com/shopspring/decimal"

// Summary holds the headline figures derived from a transaction set.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"` // Income - Expense
}

// CategoryTotal is one row of the per-category rollup. Kind is the kind of
// the first transaction seen for the category; amounts from any later
// transactions of the same category accumulate regardless of their kind.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     TransactionKind `json:"kind"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a transaction as money coming in or going out.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// IsValid reports whether k is one of the two known kinds.
func (k TransactionKind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is the single domain entity of the application: one recorded
// income or expense belonging to exactly one owner.
//
// OwnerID is set once at creation from the authenticated principal and is
// never mutable through any operation. Amount is always strictly positive.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID), assigned on insert
	OwnerID       string          `json:"ownerID"`       // FK -> User.UserID, immutable
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"` // Strictly positive
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	OccurredOn    time.Time       `json:"occurredOn"` // Calendar date; time-of-day carries no meaning
	AuditFields
}

package repositories

import (
	"context"

	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data. Every
// operation is scoped to an owner; an ID that exists under a different owner
// behaves exactly like a missing ID.
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction by (ownerID, transactionID).
	FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves all of an owner's transactions matching the
	// filter, ordered by occurredOn descending with ties broken by insertion
	// order. A filter matching nothing yields an empty slice, not an error.
	FindTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction inserts a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction persists changed fields of an existing transaction,
	// scoped to (ownerID, transactionID). Returns apperrors.ErrNotFound when
	// no row matches.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction scoped to (ownerID,
	// transactionID). Returns apperrors.ErrNotFound when no row matches, so a
	// repeated delete of the same ID fails.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

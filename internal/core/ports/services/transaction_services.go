package services

import (
	"context"

	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
	"github.com/spendtrack/expense_tracker_app/internal/dto"
)

// TransactionReaderSvc defines read operations over a single owner's transactions.
type TransactionReaderSvc interface {
	// ListTransactions returns the owner's transactions matching the filter,
	// ordered by occurredOn descending, ties by insertion order. "No match"
	// is an empty list, never an error.
	ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// GetTransactionByID returns one transaction, or apperrors.ErrNotFound
	// when the ID does not exist under this owner.
	GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)
}

// TransactionWriterSvc defines mutating operations over a single owner's transactions.
type TransactionWriterSvc interface {
	// CreateTransaction validates the draft, forces the owner from the
	// authenticated principal and inserts. The stored record with assigned ID
	// and timestamps is returned.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction applies only the fields present in the request.
	// Owner and ID are never mutable through this path.
	UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes one transaction. A second delete of the same
	// ID fails with apperrors.ErrNotFound.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

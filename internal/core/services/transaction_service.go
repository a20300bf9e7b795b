package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendtrack/expense_tracker_app/internal/apperrors"
	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/spendtrack/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/spendtrack/expense_tracker_app/internal/core/ports/services"
	"github.com/spendtrack/expense_tracker_app/internal/dto"
)

// transactionService implements CRUD over a user's transactions. Every
// operation is owner-scoped: the owner comes from the authenticated
// principal, never from request payloads.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
	now     func() time.Time
}

// TransactionServiceOption is a functional option for the transaction service.
type TransactionServiceOption func(*transactionService)

// WithClock overrides the time source, used by tests for a fixed "today".
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo: txnRepo,
		now:     time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// wrapStoreFailure translates low-level storage failures into
// ErrStoreUnavailable while letting already-classified errors through
// untouched. Driver detail stays in the message for logs only.
func wrapStoreFailure(op string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrDuplicate) {
		return err
	}
	return fmt.Errorf("%s: %w: %v", op, apperrors.ErrStoreUnavailable, err)
}

func validateKind(kind domain.TransactionKind) error {
	if !kind.IsValid() {
		return apperrors.NewValidationError("type", "must be income or expense")
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return apperrors.NewValidationError("description", "must not be empty")
	}
	return nil
}

func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return apperrors.NewValidationError("category", "must not be empty")
	}
	return nil
}

// parseOccurredOn turns a wire date into a midnight-UTC calendar date.
func parseOccurredOn(value string) (time.Time, error) {
	occurredOn, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", "must be a calendar date in YYYY-MM-DD form")
	}
	return occurredOn, nil
}

func (s *transactionService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactions(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, wrapStoreFailure("list transactions", err)
	}
	return txns, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	// First failing field wins, checked in declaration order.
	if err := validateKind(req.Kind); err != nil {
		return nil, err
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}
	if err := validateCategory(req.Category); err != nil {
		return nil, err
	}

	occurredOn := s.today()
	if req.OccurredOn != "" {
		parsed, err := parseOccurredOn(req.OccurredOn)
		if err != nil {
			return nil, err
		}
		occurredOn = parsed
	}

	now := s.now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       ownerID, // forced from the principal, whatever the draft carried
		Kind:          req.Kind,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
		OccurredOn:    occurredOn,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, wrapStoreFailure("create transaction", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get transaction", slog.String("transaction_id", transactionID))
		}
		return nil, wrapStoreFailure("get transaction", err)
	}
	return txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return nil, wrapStoreFailure("update transaction", err)
	}

	// Only supplied fields change. TransactionID and OwnerID have no
	// representation in the request and stay exactly as loaded.
	if req.Kind != nil {
		if err := validateKind(*req.Kind); err != nil {
			return nil, err
		}
		txn.Kind = *req.Kind
	}
	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return nil, err
		}
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		if err := validateDescription(*req.Description); err != nil {
			return nil, err
		}
		txn.Description = *req.Description
	}
	if req.Category != nil {
		if err := validateCategory(*req.Category); err != nil {
			return nil, err
		}
		txn.Category = *req.Category
	}
	if req.OccurredOn != nil {
		occurredOn, err := parseOccurredOn(*req.OccurredOn)
		if err != nil {
			return nil, err
		}
		txn.OccurredOn = occurredOn
	}
	txn.LastUpdatedAt = s.now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		}
		return nil, wrapStoreFailure("update transaction", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, ownerID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return wrapStoreFailure("delete transaction", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

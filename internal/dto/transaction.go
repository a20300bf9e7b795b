package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
)

// DateLayout is the wire format for calendar dates. Time-of-day is never
// meaningful for a transaction.
const DateLayout = "2006-01-02"

// CreateTransactionRequest is the draft a client submits. The owner is never
// part of the payload; it is always taken from the authenticated principal.
type CreateTransactionRequest struct {
	Kind        domain.TransactionKind `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Category    string                 `json:"category" binding:"required"`
	OccurredOn  string                 `json:"date" binding:"omitempty,datetime=2006-01-02"` // defaults to today when omitted
}

// UpdateTransactionRequest carries a partial update. Pointer fields
// distinguish "omitted" from "set to zero value". Owner and ID have no
// representation here and therefore can never be changed through this path.
type UpdateTransactionRequest struct {
	Kind        *domain.TransactionKind `json:"type" binding:"omitempty,oneof=income expense"`
	Amount      *decimal.Decimal        `json:"amount"`
	Description *string                 `json:"description"`
	Category    *string                 `json:"category"`
	OccurredOn  *string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsParams are the query parameters accepted by the list and
// summary endpoints. Wire names follow the original API surface.
type ListTransactionsParams struct {
	Kind      string `form:"type" binding:"omitempty,oneof=income expense"`
	Category  string `form:"category"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToFilter converts validated query parameters into a domain filter.
// Parameters are assumed pre-validated by binding; unparsable dates are
// treated as absent.
func (p ListTransactionsParams) ToFilter() domain.TransactionFilter {
	var f domain.TransactionFilter
	if p.Kind != "" {
		kind := domain.TransactionKind(p.Kind)
		f.Kind = &kind
	}
	if p.Category != "" {
		category := p.Category
		f.Category = &category
	}
	if p.StartDate != "" {
		if from, err := time.Parse(DateLayout, p.StartDate); err == nil {
			f.DateFrom = &from
		}
	}
	if p.EndDate != "" {
		if to, err := time.Parse(DateLayout, p.EndDate); err == nil {
			f.DateTo = &to
		}
	}
	return f
}

// TransactionResponse is the canonical wire shape of a stored transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	OwnerID       string          `json:"ownerID"`
	Kind          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	OccurredOn    string          `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// CategoriesResponse lists the category vocabulary for one kind.
type CategoriesResponse struct {
	Kind       string   `json:"kind"`
	Categories []string `json:"categories"`
}

// ToTransactionResponse converts a domain.Transaction to its wire shape.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		OwnerID:       txn.OwnerID,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount,
		Description:   txn.Description,
		Category:      txn.Category,
		OccurredOn:    txn.OccurredOn.Format(DateLayout),
		CreatedAt:     txn.CreatedAt,
		UpdatedAt:     txn.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses}
}

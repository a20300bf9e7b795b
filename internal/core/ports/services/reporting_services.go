package services

import (
	"context"

	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
	"github.com/spendtrack/expense_tracker_app/internal/dto"
)

// ReportingSvcFacade derives presentation aggregates from an owner's
// transactions. The computation is a pull/recompute over one snapshot query;
// nothing incremental is kept between calls.
type ReportingSvcFacade interface {
	// SummaryReport returns income/expense/balance totals, the income share
	// percentage and the top-category breakdown for the transactions
	// matching the filter.
	SummaryReport(ctx context.Context, ownerID string, filter domain.TransactionFilter, breakdownLimit int) (*dto.SummaryReportResponse, error)
}

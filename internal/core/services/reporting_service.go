package services

import (
	"context"
	"log/slog"

	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/spendtrack/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/spendtrack/expense_tracker_app/internal/core/ports/services"
	"github.com/spendtrack/expense_tracker_app/internal/dto"
	"github.com/spendtrack/expense_tracker_app/internal/utils/accounting"
)

// reportingService derives dashboard figures from a transaction snapshot.
// It reuses the exact same predicate/query path as the list endpoint and then
// runs the pure aggregation helpers over the result, so a summary always
// matches what a list with the same filter would show.
type reportingService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) SummaryReport(ctx context.Context, ownerID string, filter domain.TransactionFilter, breakdownLimit int) (*dto.SummaryReportResponse, error) {
	txns, err := s.txnRepo.FindTransactions(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary report")
		return nil, wrapStoreFailure("summary report", err)
	}

	summary := accounting.Summarize(txns)
	breakdown := accounting.CategoryBreakdown(txns, breakdownLimit)

	s.LogInfo(ctx, "Summary report generated",
		slog.Int("transaction_count", len(txns)),
		slog.Int("category_count", len(breakdown)))

	return &dto.SummaryReportResponse{
		Income:      summary.Income,
		Expense:     summary.Expense,
		Balance:     summary.Balance,
		IncomeShare: accounting.IncomeShare(summary.Income, summary.Expense),
		Categories:  dto.ToCategoryTotalResponses(breakdown),
	}, nil
}

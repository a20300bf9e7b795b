package dto

import (
	"github.com/shopspring/decimal"
	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
)

// CategoryTotalResponse is one row of the top-category breakdown.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     string          `json:"type"`
}

// SummaryReportResponse carries the derived figures the dashboard renders:
// headline totals, the income share of total flow, and the category rollup.
type SummaryReportResponse struct {
	Income      decimal.Decimal         `json:"income"`
	Expense     decimal.Decimal         `json:"expense"`
	Balance     decimal.Decimal         `json:"balance"`
	IncomeShare decimal.Decimal         `json:"incomeShare"` // percentage, 50 when there is no flow
	Categories  []CategoryTotalResponse `json:"categories"`
}

// SummaryReportParams extends the list query parameters with a breakdown limit.
type SummaryReportParams struct {
	ListTransactionsParams
	Limit int `form:"limit,default=8" binding:"omitempty,min=1,max=50"`
}

// ToCategoryTotalResponses converts domain rollup rows to their wire shape.
func ToCategoryTotalResponses(rows []domain.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, len(rows))
	for i, row := range rows {
		responses[i] = CategoryTotalResponse{
			Category: row.Category,
			Amount:   row.Amount,
			Kind:     string(row.Kind),
		}
	}
	return responses
}

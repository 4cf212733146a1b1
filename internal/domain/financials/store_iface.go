package financials

import (
	"context"
	"time"

	"obra/internal/domain/payroll"
)

// StoreAPI fetches the project-scoped collections for a date range. Each
// collection comes back independently; the aggregator joins them in memory.
type StoreAPI interface {
	ListSales(ctx context.Context, projectID string, from, to time.Time) ([]Sale, error)
	ListExpenses(ctx context.Context, projectID string, from, to time.Time) ([]Expense, error)
	ListStockMovements(ctx context.Context, projectID string, from, to time.Time) ([]StockMovement, error)
	ListCertifications(ctx context.Context, projectID string, from, to time.Time) ([]payroll.Certification, error)
	ListFundRequests(ctx context.Context, projectID string, from, to time.Time) ([]payroll.FundRequest, error)
	ListAttendance(ctx context.Context, projectID string, from, to time.Time) ([]payroll.Attendance, error)
}

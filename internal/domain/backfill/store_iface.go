package backfill

import (
	"context"

	"github.com/shopspring/decimal"

	"obra/internal/domain/financials"
)

type StoreAPI interface {
	ListProjectIDs(ctx context.Context) ([]string, error)
	// ListSuspectExpenses returns the project's local-currency expenses whose
	// stored rate is at or below the plausibility threshold, i.e. never set
	// or set by mistake.
	ListSuspectExpenses(ctx context.Context, projectID string, threshold decimal.Decimal) ([]financials.Expense, error)
	// ApplyRateUpdates writes one batch atomically.
	ApplyRateUpdates(ctx context.Context, updates []RateUpdate) error
	CreateRun(ctx context.Context, runID string) error
	FinishRun(ctx context.Context, runID, status string, result Result) error
}

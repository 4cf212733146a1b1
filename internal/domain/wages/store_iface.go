package wages

import (
	"context"

	"github.com/shopspring/decimal"
)

type StoreAPI interface {
	// ListHistory returns the employee's wage changes ordered by effective
	// date, then by insertion time, oldest first.
	ListHistory(ctx context.Context, employeeID string) ([]HistoryEntry, error)
	// BaseDailyWage is the employee's current daily wage, used when no
	// history entry applies.
	BaseDailyWage(ctx context.Context, employeeID string) (decimal.Decimal, error)
}

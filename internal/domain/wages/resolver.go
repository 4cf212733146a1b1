package wages

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

var hoursPerDay = decimal.NewFromInt(8)

// Resolver answers "what did this employee earn per day on this date",
// consulting the effective-dated wage history so payroll stays historically
// accurate after later wage changes.
type Resolver struct {
	store StoreAPI
}

func NewResolver(store StoreAPI) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) Resolve(ctx context.Context, employeeID string, date time.Time) (Wage, error) {
	entries, err := r.store.ListHistory(ctx, employeeID)
	if err != nil {
		return Wage{}, err
	}

	daily, ok := PickEffective(entries, date)
	if !ok {
		// No history at or before the date: the current base wage applies.
		daily, err = r.store.BaseDailyWage(ctx, employeeID)
		if err != nil {
			return Wage{}, err
		}
	}

	return Wage{Daily: daily, Hourly: daily.Div(hoursPerDay)}, nil
}

// PickEffective selects the wage from the entry with the greatest effective
// date not after the query date. Entries must be ordered by effective date
// then insertion time; ties on the effective date resolve to the entry
// inserted last, which keeps the choice deterministic.
func PickEffective(entries []HistoryEntry, date time.Time) (decimal.Decimal, bool) {
	var (
		amount decimal.Decimal
		found  bool
	)
	for _, entry := range entries {
		if entry.EffectiveDate.After(date) {
			continue
		}
		amount = entry.Amount
		found = true
	}
	return amount, found
}

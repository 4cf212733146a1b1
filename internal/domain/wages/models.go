package wages

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntry is one effective-dated wage change for an employee. The log is
// append-only; the entry with the latest effective date not after the query
// date is authoritative.
type HistoryEntry struct {
	EmployeeID    string          `json:"employeeId"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Wage is the daily wage in effect on a date plus its derived hourly rate
// (daily / 8).
type Wage struct {
	Daily  decimal.Decimal `json:"daily"`
	Hourly decimal.Decimal `json:"hourly"`
}

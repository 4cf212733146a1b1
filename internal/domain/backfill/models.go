package backfill

import "github.com/shopspring/decimal"

// RateUpdate is one queued correction: the expense keeps its business meaning
// and only the stored conversion rate changes.
type RateUpdate struct {
	ExpenseID string
	OldRate   decimal.Decimal
	NewRate   decimal.Decimal
}

// Result reports how far a run got. After a mid-scan failure the counts cover
// the batches that committed.
type Result struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
}

const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

package payroll

import "context"

// StoreAPI fetches one week's collections. There are no joins in the backing
// store; each collection is fetched independently and combined in memory.
type StoreAPI interface {
	GetWeek(ctx context.Context, weekID string) (Week, error)
	ListAttendance(ctx context.Context, weekID string) ([]Attendance, error)
	ListAdvances(ctx context.Context, weekID string) ([]CashAdvance, error)
	ListCertifications(ctx context.Context, weekID string) ([]Certification, error)
	ListFundRequests(ctx context.Context, weekID string) ([]FundRequest, error)
}

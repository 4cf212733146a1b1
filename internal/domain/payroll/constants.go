package payroll

const (
	WeekStatusOpen   = "open"
	WeekStatusClosed = "closed"

	AttendancePresent = "present"
	AttendanceAbsent  = "absent"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusPaid     = "paid"
	StatusRejected = "rejected"
)

// Payable reports whether a certification or fund request counts toward
// payroll and project cost.
func Payable(status string) bool {
	return status == StatusApproved || status == StatusPaid
}

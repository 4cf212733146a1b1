package financials

const (
	SaleStatusDraft             = "draft"
	SaleStatusPendingCollection = "pending-collection"
	SaleStatusCollected         = "collected"
	SaleStatusCancelled         = "cancelled"

	MovementCheckOut = "check-out"
)

package financials

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is project income. Cancelled sales are excluded from income entirely;
// collected sales additionally count toward paid income.
type Sale struct {
	ProjectID   string          `json:"projectId"`
	Date        time.Time       `json:"date"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
}

// Expense is a project cost record. A supplier id marks it as materials;
// without one it is a services cost. A zero exchange rate means never set.
type Expense struct {
	ID           string          `json:"id"`
	ProjectID    string          `json:"projectId"`
	Date         time.Time       `json:"date"`
	SupplierID   string          `json:"supplierId"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Status       string          `json:"status"`
}

// StockMovement records warehouse activity; only check-outs contribute to
// project material cost.
type StockMovement struct {
	ProjectID string          `json:"projectId"`
	Type      string          `json:"type"`
	Date      time.Time       `json:"date"`
	TotalCost decimal.Decimal `json:"totalCost"`
}

type Income struct {
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

type DirectCosts struct {
	Materials decimal.Decimal `json:"materials"`
	Labor     decimal.Decimal `json:"labor"`
	Services  decimal.Decimal `json:"services"`
	Total     decimal.Decimal `json:"total"`
}

type IndirectCosts struct {
	Total decimal.Decimal `json:"total"`
}

type Costs struct {
	Direct   DirectCosts     `json:"direct"`
	Indirect IndirectCosts   `json:"indirect"`
	Total    decimal.Decimal `json:"total"`
}

type Margin struct {
	Net        decimal.Decimal `json:"net"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ProjectFinancials is the derived income/cost/margin/ROI statement for one
// project and one calendar year. Never persisted.
type ProjectFinancials struct {
	Income Income          `json:"income"`
	Costs  Costs           `json:"costs"`
	Margin Margin          `json:"margin"`
	ROI    decimal.Decimal `json:"roi"`
}

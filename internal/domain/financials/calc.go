package financials

import (
	"time"

	"github.com/shopspring/decimal"

	"obra/internal/domain/payroll"
)

var hundred = decimal.NewFromInt(100)

// ConvertFn converts an amount to the local currency using the record's own
// rate when plausible, falling back through the historical rate for its date
// to the global default.
type ConvertFn func(amount decimal.Decimal, currency string, ownRate decimal.Decimal, date time.Time) decimal.Decimal

// Inputs carries the independently fetched collections for one project-year.
type Inputs struct {
	Sales          []Sale
	Expenses       []Expense
	StockMovements []StockMovement
	Certifications []payroll.Certification
	FundRequests   []payroll.FundRequest
	Attendances    []payroll.Attendance
}

// Compute builds the income/cost/margin/ROI statement. Everything accumulates
// in fixed-precision decimals so reruns over unchanged records are
// byte-identical.
func Compute(in Inputs, wageFor payroll.WageFn, convert ConvertFn) (ProjectFinancials, error) {
	var out ProjectFinancials
	out.Income.Total = decimal.Zero
	out.Income.Paid = decimal.Zero

	for _, sale := range in.Sales {
		if sale.Status == SaleStatusCancelled {
			continue
		}
		out.Income.Total = out.Income.Total.Add(sale.TotalAmount)
		if sale.Status == SaleStatusCollected {
			out.Income.Paid = out.Income.Paid.Add(sale.TotalAmount)
		}
	}
	out.Income.Pending = out.Income.Total.Sub(out.Income.Paid)

	materials := decimal.Zero
	services := decimal.Zero
	labor := decimal.Zero

	for _, expense := range in.Expenses {
		converted := convert(expense.Amount, expense.Currency, expense.ExchangeRate, expense.Date)
		if expense.SupplierID != "" {
			materials = materials.Add(converted)
		} else {
			services = services.Add(converted)
		}
	}

	for _, movement := range in.StockMovements {
		if movement.Type != MovementCheckOut {
			continue
		}
		materials = materials.Add(movement.TotalCost)
	}

	for _, request := range in.FundRequests {
		if !payroll.Payable(request.Status) {
			continue
		}
		services = services.Add(convert(request.Amount, request.Currency, request.ExchangeRate, request.Date))
	}

	for _, certification := range in.Certifications {
		if !payroll.Payable(certification.Status) {
			continue
		}
		labor = labor.Add(convert(certification.Amount, certification.Currency, decimal.Zero, certification.Date))
	}

	// Internal labor: one full day's wage per present attendance, regardless
	// of hours worked.
	for _, attendance := range in.Attendances {
		if attendance.Status != payroll.AttendancePresent {
			continue
		}
		wage, err := wageFor(attendance.EmployeeID, attendance.Date)
		if err != nil {
			return ProjectFinancials{}, err
		}
		labor = labor.Add(wage.Daily)
	}

	out.Costs.Direct = DirectCosts{
		Materials: materials,
		Labor:     labor,
		Services:  services,
		Total:     materials.Add(services).Add(labor),
	}
	// Indirect cost allocation is not modeled.
	out.Costs.Indirect = IndirectCosts{Total: decimal.Zero}
	out.Costs.Total = out.Costs.Direct.Total.Add(out.Costs.Indirect.Total)

	out.Margin.Net = out.Income.Total.Sub(out.Costs.Total)
	out.Margin.Percentage = decimal.Zero
	if !out.Income.Total.IsZero() {
		out.Margin.Percentage = out.Margin.Net.Div(out.Income.Total).Mul(hundred)
	}
	out.ROI = decimal.Zero
	if !out.Costs.Total.IsZero() {
		out.ROI = out.Margin.Net.Div(out.Costs.Total).Mul(hundred)
	}

	return out, nil
}

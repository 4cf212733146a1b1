package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Week is the Monday-Sunday settlement period. ExchangeRate, when set, is the
// locked-in rate for converting that week's foreign-currency items.
type Week struct {
	ID           string          `json:"id"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Status       string          `json:"status"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// Attendance is one employee-day. Only present days earn a wage; late hours
// are deducted at the hourly rate in effect on that day.
type Attendance struct {
	EmployeeID string          `json:"employeeId"`
	ProjectID  string          `json:"projectId"`
	Date       time.Time       `json:"date"`
	Status     string          `json:"status"`
	LateHours  decimal.Decimal `json:"lateHours"`
	WeekID     string          `json:"payrollWeekId"`
}

// CashAdvance is money advanced to an employee; only the per-week installment
// counts against a single week's payroll.
type CashAdvance struct {
	EmployeeID   string          `json:"employeeId"`
	WeekID       string          `json:"payrollWeekId"`
	Amount       decimal.Decimal `json:"amount"`
	Installments int64           `json:"installments"`
}

// Certification is a contractor's approved billing claim for work performed.
type Certification struct {
	ContractorID string          `json:"contractorId"`
	ProjectID    string          `json:"projectId"`
	WeekID       string          `json:"payrollWeekId"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Status       string          `json:"status"`
}

// FundRequest is a discretionary disbursement tied to a project and/or week,
// outside the invoice/expense flow.
type FundRequest struct {
	ProjectID    string          `json:"projectId"`
	WeekID       string          `json:"payrollWeekId"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Status       string          `json:"status"`
}

// WeeklySummary is the derived net obligation for one week. It is computed on
// demand and never persisted.
type WeeklySummary struct {
	GrossWages         decimal.Decimal `json:"grossWages"`
	LateHoursDeduction decimal.Decimal `json:"lateHoursDeduction"`
	AdvancesTotal      decimal.Decimal `json:"advancesTotal"`
	NetPersonnel       decimal.Decimal `json:"netPersonnel"`
	ContractorsTotal   decimal.Decimal `json:"contractorsTotal"`
	FundRequestsTotal  decimal.Decimal `json:"fundRequestsTotal"`
	GrandTotal         decimal.Decimal `json:"grandTotal"`
}

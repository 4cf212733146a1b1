package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"obra/internal/domain/rates"
	"obra/internal/domain/wages"
)

var one = decimal.NewFromInt(1)

// WageFn returns the wage in effect for an employee on a date.
type WageFn func(employeeID string, date time.Time) (wages.Wage, error)

// Compute folds one week's attendance, advances, certifications and fund
// requests into a summary. A week with no records yields an all-zero summary.
// Negative net personnel is legitimate (advances can exceed wages) and is
// never clamped.
func Compute(week Week, attendances []Attendance, advances []CashAdvance, certifications []Certification, fundRequests []FundRequest, wageFor WageFn) (WeeklySummary, error) {
	summary := WeeklySummary{
		GrossWages:         decimal.Zero,
		LateHoursDeduction: decimal.Zero,
		AdvancesTotal:      decimal.Zero,
		ContractorsTotal:   decimal.Zero,
		FundRequestsTotal:  decimal.Zero,
	}

	for _, attendance := range attendances {
		if attendance.Status != AttendancePresent {
			continue
		}
		wage, err := wageFor(attendance.EmployeeID, attendance.Date)
		if err != nil {
			return WeeklySummary{}, err
		}
		summary.GrossWages = summary.GrossWages.Add(wage.Daily)
		if attendance.LateHours.IsPositive() {
			summary.LateHoursDeduction = summary.LateHoursDeduction.Add(attendance.LateHours.Mul(wage.Hourly))
		}
	}

	for _, advance := range advances {
		installments := advance.Installments
		if installments < 1 {
			installments = 1
		}
		summary.AdvancesTotal = summary.AdvancesTotal.Add(advance.Amount.Div(decimal.NewFromInt(installments)))
	}

	summary.NetPersonnel = summary.GrossWages.Sub(summary.AdvancesTotal).Sub(summary.LateHoursDeduction)

	// Contractor payouts use the week's locked-in rate only; missing rate
	// means the amount stands as recorded.
	for _, certification := range certifications {
		if !Payable(certification.Status) {
			continue
		}
		summary.ContractorsTotal = summary.ContractorsTotal.Add(convertWeekly(certification.Amount, certification.Currency, week.ExchangeRate, decimal.Zero))
	}

	for _, request := range fundRequests {
		if !Payable(request.Status) {
			continue
		}
		summary.FundRequestsTotal = summary.FundRequestsTotal.Add(convertWeekly(request.Amount, request.Currency, week.ExchangeRate, request.ExchangeRate))
	}

	summary.GrandTotal = summary.NetPersonnel.Add(summary.ContractorsTotal).Add(summary.FundRequestsTotal)
	return summary, nil
}

// convertWeekly converts a foreign-currency amount using the week's rate
// first, then the record's own rate, then 1. Local amounts pass through.
func convertWeekly(amount decimal.Decimal, currency string, weekRate, ownRate decimal.Decimal) decimal.Decimal {
	if currency != rates.CurrencyForeign {
		return amount
	}
	rate := one
	switch {
	case weekRate.IsPositive():
		rate = weekRate
	case ownRate.IsPositive():
		rate = ownRate
	}
	return amount.Mul(rate)
}

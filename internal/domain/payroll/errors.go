package payroll

import "errors"

var (
	ErrWeekInvalid  = errors.New("payroll week id is required")
	ErrWeekNotFound = errors.New("payroll week not found")
)

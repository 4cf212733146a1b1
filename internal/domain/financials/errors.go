package financials

import "errors"

var (
	ErrProjectInvalid = errors.New("project id is required")
	ErrYearInvalid    = errors.New("year is out of range")
)

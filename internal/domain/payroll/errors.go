package payroll

import "errors"

var (
	ErrInvalidPeriod = errors.New("period start must not be later than period end")
)

package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffline/backoffice-go/internal/pkg/validator"
)

// Record is one employee's computed pay for a calendar month. Nothing is
// persisted; the figures are derived from salaries, sales and approved unpaid
// leave at request time.
type Record struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BasePay      decimal.Decimal `json:"base_pay"`
	SalesTotal   decimal.Decimal `json:"sales_total"`
	Commission   decimal.Decimal `json:"commission"`
	UnpaidDays   int             `json:"unpaid_days"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
}

// GeneratePayrollRequest selects a calendar month. An empty EmployeeID means
// every employee.
type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CommissionSummary is one employee's commission position over a period.
type CommissionSummary struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	SalesTotal   decimal.Decimal `json:"sales_total"`
	Commission   decimal.Decimal `json:"commission"`
}

// LaborAnalytics relates revenue to worked hours over a period.
type LaborAnalytics struct {
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	SalesPerHour  decimal.Decimal `json:"sales_per_hour"`
	EmployeeCount int             `json:"employee_count"`
}

type PeriodRequest struct {
	Start string `json:"start"` // "YYYY-MM-DD"
	End   string `json:"end"`   // "YYYY-MM-DD"
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Start); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.End); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

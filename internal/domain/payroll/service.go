package payroll

import "context"

// Service derives pay figures on demand; there is no payroll table.
type Service interface {
	// GeneratePayroll computes one Record per employee for the month.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) ([]Record, error)

	// CalculateCommissions reports commissions over an arbitrary period.
	CalculateCommissions(ctx context.Context, req PeriodRequest) ([]CommissionSummary, error)

	// GetLaborAnalytics relates sales revenue to attendance hours.
	GetLaborAnalytics(ctx context.Context, req PeriodRequest) (LaborAnalytics, error)
}

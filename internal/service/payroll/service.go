package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffline/backoffice-go/internal/domain/attendance"
	"github.com/staffline/backoffice-go/internal/domain/employee"
	"github.com/staffline/backoffice-go/internal/domain/leave"
	"github.com/staffline/backoffice-go/internal/domain/payroll"
	"github.com/staffline/backoffice-go/internal/domain/sale"
)

// Deductions divide the monthly base over a fixed 30-day month regardless of
// calendar length.
var payableDaysPerMonth = decimal.NewFromInt(30)

type PayrollServiceImpl struct {
	employees       employee.EmployeeRepository
	sales           sale.SaleRepository
	leaveRequests   leave.LeaveRequestRepository
	sessions        attendance.SessionRepository
	commissionRate  decimal.Decimal
	unpaidLeaveType string
	loc             *time.Location
}

func NewService(
	employees employee.EmployeeRepository,
	sales sale.SaleRepository,
	leaveRequests leave.LeaveRequestRepository,
	sessions attendance.SessionRepository,
	commissionRate decimal.Decimal,
	unpaidLeaveType string,
	loc *time.Location,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		employees:       employees,
		sales:           sales,
		leaveRequests:   leaveRequests,
		sessions:        sessions,
		commissionRate:  commissionRate,
		unpaidLeaveType: unpaidLeaveType,
		loc:             loc,
	}
}

// GeneratePayroll implements payroll.Service. Nothing is persisted; each call
// derives the month's figures from current salaries, sales and approved
// unpaid leave.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, s.loc)
	end := start.AddDate(0, 1, 0)

	var employees []employee.Employee
	if req.EmployeeID != "" {
		e, err := s.employees.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get employee: %w", err)
		}
		employees = []employee.Employee{e}
	} else {
		var err error
		employees, err = s.employees.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}
	}

	records := make([]payroll.Record, 0, len(employees))
	for _, e := range employees {
		salesTotal, err := s.sales.GetSalesTotal(ctx, e.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to get sales total: %w", err)
		}

		unpaid, err := s.leaveRequests.ListApprovedInPeriod(ctx, e.ID, s.unpaidLeaveType, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to list unpaid leave: %w", err)
		}

		unpaidDays := 0
		for _, r := range unpaid {
			unpaidDays += r.Days()
		}

		commission := s.commissionRate.Mul(salesTotal)
		deductions := e.Salary.Div(payableDaysPerMonth).Mul(decimal.NewFromInt(int64(unpaidDays)))
		net := e.Salary.Add(commission).Sub(deductions)

		records = append(records, payroll.Record{
			EmployeeID:   e.ID,
			EmployeeName: e.Name,
			Month:        req.Month,
			Year:         req.Year,
			BasePay:      e.Salary,
			SalesTotal:   salesTotal,
			Commission:   commission,
			UnpaidDays:   unpaidDays,
			Deductions:   deductions,
			NetSalary:    net,
		})
	}

	return records, nil
}

// CalculateCommissions implements payroll.Service.
func (s *PayrollServiceImpl) CalculateCommissions(ctx context.Context, req payroll.PeriodRequest) ([]payroll.CommissionSummary, error) {
	start, end, err := s.parsePeriod(req)
	if err != nil {
		return nil, err
	}

	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	summaries := make([]payroll.CommissionSummary, 0, len(employees))
	for _, e := range employees {
		salesTotal, err := s.sales.GetSalesTotal(ctx, e.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to get sales total: %w", err)
		}

		summaries = append(summaries, payroll.CommissionSummary{
			EmployeeID:   e.ID,
			EmployeeName: e.Name,
			SalesTotal:   salesTotal,
			Commission:   s.commissionRate.Mul(salesTotal),
		})
	}

	return summaries, nil
}

// GetLaborAnalytics implements payroll.Service. Revenue is related to closed
// attendance hours over the same period.
func (s *PayrollServiceImpl) GetLaborAnalytics(ctx context.Context, req payroll.PeriodRequest) (payroll.LaborAnalytics, error) {
	start, end, err := s.parsePeriod(req)
	if err != nil {
		return payroll.LaborAnalytics{}, err
	}

	totalSales, err := s.sales.GetTotalSales(ctx, start, end)
	if err != nil {
		return payroll.LaborAnalytics{}, fmt.Errorf("failed to get total sales: %w", err)
	}

	totalMs, err := s.sessions.SumClosedDurationMs(ctx, start, end)
	if err != nil {
		return payroll.LaborAnalytics{}, fmt.Errorf("failed to sum attendance durations: %w", err)
	}

	employees, err := s.employees.List(ctx)
	if err != nil {
		return payroll.LaborAnalytics{}, fmt.Errorf("failed to list employees: %w", err)
	}

	totalHours := decimal.NewFromInt(totalMs).Div(decimal.NewFromInt(3_600_000))

	salesPerHour := decimal.Zero
	if totalHours.IsPositive() {
		salesPerHour = totalSales.Div(totalHours)
	}

	return payroll.LaborAnalytics{
		Start:         start,
		End:           end,
		TotalSales:    totalSales,
		TotalHours:    totalHours,
		SalesPerHour:  salesPerHour,
		EmployeeCount: len(employees),
	}, nil
}

// parsePeriod resolves an inclusive date range into the half-open instant
// range [start, end+1day).
func (s *PayrollServiceImpl) parsePeriod(req payroll.PeriodRequest) (time.Time, time.Time, error) {
	if err := req.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := time.ParseInLocation("2006-01-02", req.Start, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, payroll.ErrInvalidPeriod
	}
	end, err := time.ParseInLocation("2006-01-02", req.End, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, payroll.ErrInvalidPeriod
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, payroll.ErrInvalidPeriod
	}

	return start, end.AddDate(0, 0, 1), nil
}

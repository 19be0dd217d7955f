package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffline/backoffice-go/internal/domain/attendance"
	"github.com/staffline/backoffice-go/internal/domain/employee"
	"github.com/staffline/backoffice-go/internal/domain/leave"
	"github.com/staffline/backoffice-go/internal/domain/payroll"
	"github.com/staffline/backoffice-go/internal/domain/sale"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			copied := e
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return append([]employee.Employee(nil), f.employees...), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == e.ID {
			f.employees[i] = e
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) SetRefreshToken(ctx context.Context, id string, token *string) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees[i].RefreshToken = token
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type fakeSaleRepo struct {
	sales []sale.Sale
}

func (f *fakeSaleRepo) Create(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	f.sales = append(f.sales, s)
	return s, nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id string) (sale.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return sale.Sale{}, sale.ErrSaleNotFound
}

func (f *fakeSaleRepo) ListAll(ctx context.Context) ([]sale.Sale, error) {
	return append([]sale.Sale(nil), f.sales...), nil
}

func (f *fakeSaleRepo) ListByEmployee(ctx context.Context, employeeID string) ([]sale.Sale, error) {
	var out []sale.Sale
	for _, s := range f.sales {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) GetSalesTotal(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range f.sales {
		if s.EmployeeID == employeeID && !s.Timestamp.Before(start) && s.Timestamp.Before(end) {
			total = total.Add(s.TotalAmount)
		}
	}
	return total, nil
}

func (f *fakeSaleRepo) GetTotalSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range f.sales {
		if !s.Timestamp.Before(start) && s.Timestamp.Before(end) {
			total = total.Add(s.TotalAmount)
		}
	}
	return total, nil
}

type fakeLeaveRequestRepo struct {
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.requests = append(f.requests, r)
	return r, nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrRequestNotFound
}

func (f *fakeLeaveRequestRepo) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrRequestNotFound
}

func (f *fakeLeaveRequestRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRequestRepo) ListApproved(ctx context.Context, employeeID, typeName string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRequestRepo) ListApprovedInPeriod(ctx context.Context, employeeID, typeName string, start, end time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.Status != leave.StatusApproved || r.EmployeeID != employeeID || r.Type != typeName {
			continue
		}
		// The period is half-open: [start, end).
		if r.StartDate.Before(start) || !r.EndDate.Before(end) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return nil, nil
}

type fakeSessionRepo struct {
	sessions []attendance.Session
}

func (f *fakeSessionRepo) Create(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	f.sessions = append(f.sessions, s)
	return s, nil
}

func (f *fakeSessionRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time) (attendance.Session, error) {
	return attendance.Session{}, attendance.ErrSessionNotFound
}

func (f *fakeSessionRepo) GetOpenSessionForUpdate(ctx context.Context, employeeID string) (*attendance.Session, error) {
	return nil, nil
}

func (f *fakeSessionRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Session, error) {
	return nil, nil
}

func (f *fakeSessionRepo) ListOpenSessions(ctx context.Context) ([]attendance.Session, error) {
	return nil, nil
}

func (f *fakeSessionRepo) SumClosedDurationMs(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	for _, s := range f.sessions {
		if s.ClockOut != nil && !s.ClockIn.Before(start) && s.ClockIn.Before(end) {
			total += s.ClockOut.Sub(s.ClockIn).Milliseconds()
		}
	}
	return total, nil
}

func newTestService() (*PayrollServiceImpl, *fakeEmployeeRepo, *fakeSaleRepo, *fakeLeaveRequestRepo, *fakeSessionRepo) {
	employees := &fakeEmployeeRepo{}
	sales := &fakeSaleRepo{}
	leaveRequests := &fakeLeaveRequestRepo{}
	sessions := &fakeSessionRepo{}

	svc := NewService(
		employees,
		sales,
		leaveRequests,
		sessions,
		decimal.NewFromFloat(0.05),
		"Unpaid",
		time.UTC,
	)
	return svc, employees, sales, leaveRequests, sessions
}

func TestGeneratePayroll(t *testing.T) {
	svc, employees, sales, leaveRequests, _ := newTestService()

	employees.employees = append(employees.employees, employee.Employee{
		ID:     "emp-1",
		Name:   "Dana Ortiz",
		Salary: decimal.NewFromInt(3000),
	})

	sales.sales = append(sales.sales, sale.Sale{
		ID:          "sale-1",
		EmployeeID:  "emp-1",
		TotalAmount: decimal.NewFromInt(600),
		Timestamp:   time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC),
	}, sale.Sale{
		ID:          "sale-2",
		EmployeeID:  "emp-1",
		TotalAmount: decimal.NewFromInt(400),
		Timestamp:   time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC),
	}, sale.Sale{
		// Outside the month; must not count.
		ID:          "sale-3",
		EmployeeID:  "emp-1",
		TotalAmount: decimal.NewFromInt(9999),
		Timestamp:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	leaveRequests.requests = append(leaveRequests.requests, leave.LeaveRequest{
		ID:         "request-1",
		EmployeeID: "emp-1",
		Type:       "Unpaid",
		Status:     leave.StatusApproved,
		StartDate:  time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
	})

	records, err := svc.GeneratePayroll(context.Background(), payroll.GeneratePayrollRequest{Month: 3, Year: 2024})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "emp-1", rec.EmployeeID)
	assert.Equal(t, 3, rec.UnpaidDays)
	assert.True(t, rec.SalesTotal.Equal(decimal.NewFromInt(1000)), "sales total %s", rec.SalesTotal)
	assert.True(t, rec.Commission.Equal(decimal.NewFromInt(50)), "commission %s", rec.Commission)
	// 3000/30 * 3 = 300 deducted, net 3000 + 50 - 300 = 2750.
	assert.True(t, rec.Deductions.Equal(decimal.NewFromInt(300)), "deductions %s", rec.Deductions)
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(2750)), "net %s", rec.NetSalary)
}

func TestGeneratePayroll_NoSalesNoLeave(t *testing.T) {
	svc, employees, _, _, _ := newTestService()

	employees.employees = append(employees.employees, employee.Employee{
		ID:     "emp-1",
		Name:   "Dana Ortiz",
		Salary: decimal.NewFromInt(2500),
	})

	records, err := svc.GeneratePayroll(context.Background(), payroll.GeneratePayrollRequest{Month: 2, Year: 2024})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 0, rec.UnpaidDays)
	assert.True(t, rec.Commission.IsZero())
	assert.True(t, rec.Deductions.IsZero())
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(2500)))
}

func TestGeneratePayroll_SingleEmployee(t *testing.T) {
	svc, employees, _, _, _ := newTestService()

	employees.employees = append(employees.employees,
		employee.Employee{ID: "emp-1", Name: "Dana Ortiz", Salary: decimal.NewFromInt(3000)},
		employee.Employee{ID: "emp-2", Name: "Sam Reyes", Salary: decimal.NewFromInt(2800)},
	)

	records, err := svc.GeneratePayroll(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID: "emp-2",
		Month:      3,
		Year:       2024,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "emp-2", records[0].EmployeeID)
	assert.True(t, records[0].NetSalary.Equal(decimal.NewFromInt(2800)))
}

func TestGeneratePayroll_UnknownEmployee(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.GeneratePayroll(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID: "ghost",
		Month:      3,
		Year:       2024,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGeneratePayroll_ExcludesLeaveEndingNextMonth(t *testing.T) {
	svc, employees, _, leaveRequests, _ := newTestService()

	employees.employees = append(employees.employees, employee.Employee{
		ID:     "emp-1",
		Name:   "Dana Ortiz",
		Salary: decimal.NewFromInt(3000),
	})

	// Ends on April 1st, the first instant past March's period; it belongs to
	// April's run, not March's.
	leaveRequests.requests = append(leaveRequests.requests, leave.LeaveRequest{
		ID:         "request-1",
		EmployeeID: "emp-1",
		Type:       "Unpaid",
		Status:     leave.StatusApproved,
		StartDate:  time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	records, err := svc.GeneratePayroll(context.Background(), payroll.GeneratePayrollRequest{Month: 3, Year: 2024})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 0, rec.UnpaidDays)
	assert.True(t, rec.Deductions.IsZero())
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(3000)))
}

func TestGeneratePayroll_InvalidMonth(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.GeneratePayroll(context.Background(), payroll.GeneratePayrollRequest{Month: 13, Year: 2024})
	assert.Error(t, err)
}

func TestCalculateCommissions(t *testing.T) {
	svc, employees, sales, _, _ := newTestService()

	employees.employees = append(employees.employees,
		employee.Employee{ID: "emp-1", Name: "Dana Ortiz", Salary: decimal.NewFromInt(3000)},
		employee.Employee{ID: "emp-2", Name: "Sam Reyes", Salary: decimal.NewFromInt(2800)},
	)

	sales.sales = append(sales.sales, sale.Sale{
		ID:          "sale-1",
		EmployeeID:  "emp-1",
		TotalAmount: decimal.NewFromInt(2000),
		Timestamp:   time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	})

	summaries, err := svc.CalculateCommissions(context.Background(), payroll.PeriodRequest{
		Start: "2024-03-01",
		End:   "2024-03-31",
	})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.True(t, summaries[0].Commission.Equal(decimal.NewFromInt(100)), "commission %s", summaries[0].Commission)
	assert.True(t, summaries[1].Commission.IsZero())
}

func TestCalculateCommissions_ReversedPeriod(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.CalculateCommissions(context.Background(), payroll.PeriodRequest{
		Start: "2024-03-31",
		End:   "2024-03-01",
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestGetLaborAnalytics(t *testing.T) {
	svc, employees, sales, _, sessions := newTestService()

	employees.employees = append(employees.employees,
		employee.Employee{ID: "emp-1", Name: "Dana Ortiz"},
		employee.Employee{ID: "emp-2", Name: "Sam Reyes"},
	)

	sales.sales = append(sales.sales, sale.Sale{
		ID:          "sale-1",
		EmployeeID:  "emp-1",
		TotalAmount: decimal.NewFromInt(500),
		Timestamp:   time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	})

	// 100 closed hours across the period.
	for day := 1; day <= 10; day++ {
		in := time.Date(2024, 3, day, 8, 0, 0, 0, time.UTC)
		out := in.Add(10 * time.Hour)
		sessions.sessions = append(sessions.sessions, attendance.Session{
			ID:         "session",
			EmployeeID: "emp-1",
			ClockIn:    in,
			ClockOut:   &out,
		})
	}

	analytics, err := svc.GetLaborAnalytics(context.Background(), payroll.PeriodRequest{
		Start: "2024-03-01",
		End:   "2024-03-31",
	})
	require.NoError(t, err)

	assert.True(t, analytics.TotalSales.Equal(decimal.NewFromInt(500)))
	assert.True(t, analytics.TotalHours.Equal(decimal.NewFromInt(100)), "hours %s", analytics.TotalHours)
	assert.True(t, analytics.SalesPerHour.Equal(decimal.NewFromInt(5)), "sales per hour %s", analytics.SalesPerHour)
	assert.Equal(t, 2, analytics.EmployeeCount)
}

func TestGetLaborAnalytics_NoHours(t *testing.T) {
	svc, _, sales, _, _ := newTestService()

	sales.sales = append(sales.sales, sale.Sale{
		ID:          "sale-1",
		EmployeeID:  "emp-1",
		TotalAmount: decimal.NewFromInt(500),
		Timestamp:   time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	})

	analytics, err := svc.GetLaborAnalytics(context.Background(), payroll.PeriodRequest{
		Start: "2024-03-01",
		End:   "2024-03-31",
	})
	require.NoError(t, err)

	assert.True(t, analytics.TotalHours.IsZero())
	assert.True(t, analytics.SalesPerHour.IsZero())
}

package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/staffline/backoffice-go/internal/domain/leave"
	"github.com/staffline/backoffice-go/internal/pkg/database"
	"github.com/staffline/backoffice-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db       *database.DB
	types    leave.LeaveTypeRepository
	requests leave.LeaveRequestRepository
	loc      *time.Location
}

func NewService(
	db *database.DB,
	types leave.LeaveTypeRepository,
	requests leave.LeaveRequestRepository,
	loc *time.Location,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		db:       db,
		types:    types,
		requests: requests,
		loc:      loc,
	}
}

// RequestLeave implements leave.Service. The quota check and the insert run in
// one transaction holding the leave-type row lock, so two concurrent requests
// cannot both pass the check.
func (l *LeaveServiceImpl) RequestLeave(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, err := time.ParseInLocation("2006-01-02", req.StartDate, l.loc)
	if err != nil {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, l.loc)
	if err != nil {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	start = leave.NormalizeDate(start, l.loc)
	end = leave.NormalizeDate(end, l.loc)
	if start.After(end) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	duration := leave.InclusiveDays(start, end)

	var created leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, l.db, func(ctx context.Context) error {
		lt, err := l.types.GetActiveByNameForUpdate(ctx, req.Type)
		if err != nil {
			return fmt.Errorf("failed to get leave type: %w", err)
		}
		if lt == nil {
			return leave.ErrInvalidLeaveType
		}

		approved, err := l.requests.ListApproved(ctx, req.EmployeeID, lt.Name)
		if err != nil {
			return fmt.Errorf("failed to list approved requests: %w", err)
		}

		taken := 0
		for _, r := range approved {
			taken += r.Days()
		}

		remaining := lt.DaysAllowed - taken
		if duration > remaining {
			if remaining < 0 {
				remaining = 0
			}
			return &leave.InsufficientBalanceError{Remaining: remaining, Requested: duration}
		}

		created, err = l.requests.Create(ctx, leave.LeaveRequest{
			EmployeeID: req.EmployeeID,
			StartDate:  start,
			EndDate:    end,
			Type:       lt.Name,
			Reason:     req.Reason,
			Status:     leave.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.NewLeaveRequestResponse(created), nil
}

// UpdateStatus implements leave.Service. Only pending requests move, and only
// once.
func (l *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var updated leave.LeaveRequest
	err := postgresql.WithTransaction(ctx, l.db, func(ctx context.Context) error {
		current, err := l.requests.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if current.Status != leave.StatusPending {
			return leave.ErrAlreadyProcessed
		}

		updated, err = l.requests.UpdateStatus(ctx, req.ID, leave.RequestStatus(req.Status))
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.NewLeaveRequestResponse(updated), nil
}

// GetLeaveSummary implements leave.Service. It reports one balance row per
// active leave type, derived from approved requests.
func (l *LeaveServiceImpl) GetLeaveSummary(ctx context.Context, employeeID string) ([]leave.Balance, error) {
	types, err := l.types.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	approved, err := l.requests.ListApproved(ctx, employeeID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list approved requests: %w", err)
	}

	takenByType := make(map[string]int)
	for _, r := range approved {
		takenByType[r.Type] += r.Days()
	}

	balances := make([]leave.Balance, 0, len(types))
	for _, t := range types {
		taken := takenByType[t.Name]
		remaining := t.DaysAllowed - taken
		if remaining < 0 {
			remaining = 0
		}
		balances = append(balances, leave.Balance{
			Name:          t.Name,
			DaysAllowed:   t.DaysAllowed,
			DaysTaken:     taken,
			DaysRemaining: remaining,
		})
	}

	return balances, nil
}

// ListMyRequests implements leave.Service.
func (l *LeaveServiceImpl) ListMyRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.requests.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}
	return responses, nil
}

// ListPending implements leave.Service.
func (l *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.requests.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}
	return responses, nil
}

// CreateLeaveType implements leave.Service.
func (l *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	existing, err := l.types.GetByName(ctx, req.Name)
	if err != nil {
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to check leave type name: %w", err)
	}
	if existing != nil {
		return leave.LeaveTypeResponse{}, leave.ErrLeaveTypeNameTaken
	}

	created, err := l.types.Create(ctx, leave.LeaveType{
		Name:        req.Name,
		DaysAllowed: req.DaysAllowed,
		Active:      true,
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return leave.NewLeaveTypeResponse(created), nil
}

// UpdateLeaveType implements leave.Service.
func (l *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	current, err := l.types.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	if req.Name != nil && *req.Name != current.Name {
		existing, err := l.types.GetByName(ctx, *req.Name)
		if err != nil {
			return leave.LeaveTypeResponse{}, fmt.Errorf("failed to check leave type name: %w", err)
		}
		if existing != nil {
			return leave.LeaveTypeResponse{}, leave.ErrLeaveTypeNameTaken
		}
		current.Name = *req.Name
	}
	if req.DaysAllowed != nil {
		current.DaysAllowed = *req.DaysAllowed
	}
	if req.Active != nil {
		current.Active = *req.Active
	}

	updated, err := l.types.Update(ctx, current)
	if err != nil {
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to update leave type: %w", err)
	}

	return leave.NewLeaveTypeResponse(updated), nil
}

// DeleteLeaveType implements leave.Service.
func (l *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, id string) error {
	return l.types.Delete(ctx, id)
}

// ListLeaveTypes implements leave.Service.
func (l *LeaveServiceImpl) ListLeaveTypes(ctx context.Context, activeOnly bool) ([]leave.LeaveTypeResponse, error) {
	types, err := l.types.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, leave.NewLeaveTypeResponse(t))
	}
	return responses, nil
}

// GetLeaveUtilization implements leave.Service. Approved days of the type are
// aggregated per employee.
func (l *LeaveServiceImpl) GetLeaveUtilization(ctx context.Context, typeName string) ([]leave.UtilizationEntry, error) {
	lt, err := l.types.GetByName(ctx, typeName)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave type: %w", err)
	}
	if lt == nil {
		return nil, leave.ErrLeaveTypeNotFound
	}

	approved, err := l.requests.ListApproved(ctx, "", lt.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved requests: %w", err)
	}

	totals := make(map[string]int)
	names := make(map[string]string)
	var order []string
	for _, r := range approved {
		if _, seen := totals[r.EmployeeID]; !seen {
			order = append(order, r.EmployeeID)
		}
		totals[r.EmployeeID] += r.Days()
		if r.EmployeeName != nil {
			names[r.EmployeeID] = *r.EmployeeName
		}
	}

	entries := make([]leave.UtilizationEntry, 0, len(order))
	for _, id := range order {
		name := names[id]
		if name == "" {
			name = id
		}
		entries = append(entries, leave.UtilizationEntry{
			EmployeeName: name,
			DaysTaken:    totals[id],
		})
	}

	return entries, nil
}

package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, t LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	GetByName(ctx context.Context, name string) (*LeaveType, error)

	// GetActiveByNameForUpdate locks the type row for the enclosing
	// transaction. Quota checks hold this lock across the sum-and-insert
	// sequence so two concurrent requests cannot both pass the check.
	GetActiveByNameForUpdate(ctx context.Context, name string) (*LeaveType, error)

	List(ctx context.Context, activeOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, t LeaveType) (LeaveType, error)
	Delete(ctx context.Context, id string) error
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, r LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus) (LeaveRequest, error)

	// ListByEmployee returns all of an employee's requests, most recent start
	// date first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListApproved returns approved requests, optionally narrowed by employee
	// and/or type name (empty string matches all).
	ListApproved(ctx context.Context, employeeID, typeName string) ([]LeaveRequest, error)

	// ListApprovedInPeriod returns approved requests of the given type whose
	// whole interval falls within [start, end].
	ListApprovedInPeriod(ctx context.Context, employeeID, typeName string, start, end time.Time) ([]LeaveRequest, error)

	// ListPending returns all pending requests with employee names joined.
	ListPending(ctx context.Context) ([]LeaveRequest, error)
}

// Service is the leave ledger.
type Service interface {
	RequestLeave(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveRequestResponse, error)
	GetLeaveSummary(ctx context.Context, employeeID string) ([]Balance, error)
	ListMyRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)

	// Leave-type catalog administration.
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, id string) error
	ListLeaveTypes(ctx context.Context, activeOnly bool) ([]LeaveTypeResponse, error)
	GetLeaveUtilization(ctx context.Context, typeName string) ([]UtilizationEntry, error)
}

package leave

import (
	"time"

	"github.com/staffline/backoffice-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string  `json:"-"`
	StartDate  string  `json:"start_date"` // "YYYY-MM-DD"
	EndDate    string  `json:"end_date"`   // "YYYY-MM-DD"
	Type       string  `json:"type"`
	Reason     *string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"` // "approved" | "rejected"
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employee_id"`
	EmployeeName *string       `json:"employee_name,omitempty"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Type         string        `json:"type"`
	Reason       *string       `json:"reason,omitempty"`
	Status       RequestStatus `json:"status"`
	Days         int           `json:"days"`
	CreatedAt    time.Time     `json:"created_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		Type:         r.Type,
		Reason:       r.Reason,
		Status:       r.Status,
		Days:         r.Days(),
		CreatedAt:    r.CreatedAt,
	}
}

type LeaveTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DaysAllowed int    `json:"days_allowed"`
	Active      bool   `json:"active"`
}

func NewLeaveTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		DaysAllowed: t.DaysAllowed,
		Active:      t.Active,
	}
}

type CreateLeaveTypeRequest struct {
	Name        string `json:"name"`
	DaysAllowed int    `json:"days_allowed"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.DaysAllowed < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_allowed",
			Message: "days_allowed must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveTypeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	DaysAllowed *int    `json:"days_allowed"`
	Active      *bool   `json:"active"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.DaysAllowed != nil && *r.DaysAllowed < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_allowed",
			Message: "days_allowed must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UtilizationEntry is one row of the per-type utilization report: approved
// leave days aggregated per employee.
type UtilizationEntry struct {
	EmployeeName string `json:"employee_name"`
	DaysTaken    int    `json:"days_taken"`
}

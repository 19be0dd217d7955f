package leave

import (
	"time"
)

// LeaveType is a policy catalog entry. DaysAllowed is a whole-day quota per
// accounting cycle.
type LeaveType struct {
	ID          string
	Name        string
	DaysAllowed int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// LeaveRequest is one time-off request. Dates are date-only (midnight in the
// company timezone) and the range is inclusive on both ends. Status is the only
// field mutated after creation, and only once: pending -> approved|rejected.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Type       string // LeaveType name
	Reason     *string
	Status     RequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// Days returns the inclusive day count of the request.
func (r LeaveRequest) Days() int {
	return InclusiveDays(r.StartDate, r.EndDate)
}

// Balance is the derived per-employee, per-type quota position.
type Balance struct {
	Name          string `json:"name"`
	DaysAllowed   int    `json:"days_allowed"`
	DaysTaken     int    `json:"days_taken"`
	DaysRemaining int    `json:"days_remaining"`
}

// NormalizeDate strips the time-of-day portion, keeping the calendar date in
// the given location.
func NormalizeDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// InclusiveDays counts the calendar days spanned by [start, end], counting both
// endpoints. Both arguments must be normalized to midnight; the math is a plain
// millisecond difference so daylight-saving shifts of less than half a day
// cannot move the result.
func InclusiveDays(start, end time.Time) int {
	const dayMs = 24 * 60 * 60 * 1000
	diff := end.UnixMilli() - start.UnixMilli()
	if diff < 0 {
		diff = -diff
	}
	days := diff / dayMs
	if diff%dayMs != 0 {
		days++ // ceil, covers DST-shortened days
	}
	return int(days) + 1
}

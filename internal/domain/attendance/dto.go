package attendance

import (
	"time"

	"github.com/staffline/backoffice-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string   `json:"-"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	IPAddress  *string  `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	ClockIn    time.Time  `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
	IPAddress  *string    `json:"ip_address,omitempty"`
}

func NewSessionResponse(s Session) SessionResponse {
	return SessionResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		ClockIn:    s.ClockIn,
		ClockOut:   s.ClockOut,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		IPAddress:  s.IPAddress,
	}
}

// DailyRecord is the derived per-calendar-day attendance aggregate. It is
// recomputed from sessions on every read and never persisted.
type DailyRecord struct {
	Date            string            `json:"date"` // "YYYY-MM-DD" in the company timezone
	FirstClockIn    time.Time         `json:"first_clock_in"`
	LastClockOut    *time.Time        `json:"last_clock_out"`
	TotalDurationMs int64             `json:"total_duration_ms"`
	IsActive        bool              `json:"is_active"`
	IsOffDay        bool              `json:"is_off_day"`
	IsLate          bool              `json:"is_late"`
	OvertimeMs      int64             `json:"overtime_ms"`
	Sessions        []SessionResponse `json:"sessions"`
}

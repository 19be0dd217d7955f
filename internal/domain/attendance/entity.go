package attendance

import (
	"time"
)

// Session is one physical presence interval. ClockIn is immutable after
// creation; ClockOut is the only field ever mutated, exactly once, either by an
// explicit clock-out or by the stale-session closing rule.
type Session struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	Latitude   *float64
	Longitude  *float64
	IPAddress  *string
	CreatedAt  time.Time
}

// Open reports whether the session has no clock-out yet.
func (s Session) Open() bool {
	return s.ClockOut == nil
}

// Duration returns the closed-interval duration, or zero while the session is
// still open.
func (s Session) Duration() time.Duration {
	if s.ClockOut == nil {
		return 0
	}
	return s.ClockOut.Sub(s.ClockIn)
}

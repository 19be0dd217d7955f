package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access for raw clock-in/clock-out sessions.
type SessionRepository interface {
	// Create inserts a new session. ClockOut is always NULL at creation.
	Create(ctx context.Context, session Session) (Session, error)

	// SetClockOut closes a session. It is the only mutation a session ever
	// receives and fails with ErrSessionNotFound if the session does not exist
	// or is already closed.
	SetClockOut(ctx context.Context, id string, clockOut time.Time) (Session, error)

	// GetOpenSessionForUpdate returns the employee's open session, or nil when
	// there is none. An existing row is locked for the duration of the
	// enclosing transaction, which serializes a clock-in against the sweeper.
	// Callers that must also exclude a concurrent first clock-in lock the
	// employee row beforehand, since a zero-row select locks nothing.
	GetOpenSessionForUpdate(ctx context.Context, employeeID string) (*Session, error)

	// ListByEmployee returns all sessions for an employee ordered by clock_in
	// ascending.
	ListByEmployee(ctx context.Context, employeeID string) ([]Session, error)

	// ListOpenSessions returns every open session across all employees.
	ListOpenSessions(ctx context.Context) ([]Session, error)

	// SumClosedDurationMs returns the total duration in milliseconds of closed
	// sessions whose clock-in falls in [start, end).
	SumClosedDurationMs(ctx context.Context, start, end time.Time) (int64, error)
}

// Service is the attendance engine.
type Service interface {
	ClockIn(ctx context.Context, req ClockInRequest) (SessionResponse, error)
	ClockOut(ctx context.Context, employeeID string) (SessionResponse, error)
	GetAttendanceLogs(ctx context.Context, employeeID string) ([]DailyRecord, error)

	// SweepStaleSessions auto-closes abandoned open sessions using the same
	// closing rule as the clock-in stale path. Returns the number of sessions
	// closed.
	SweepStaleSessions(ctx context.Context) (int, error)
}

package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn = errors.New("already clocked in today")
	ErrNoActiveSession  = errors.New("no active clock-in session found")
	ErrSessionNotFound  = errors.New("attendance session not found")
)

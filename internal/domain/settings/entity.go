package settings

import (
	"time"
)

// CompanySettings is the single company-wide configuration row. The attendance
// engine reads it as its schedule: working weekdays, scheduled start/end
// time-of-day, and whether overtime accrual is enabled.
type CompanySettings struct {
	ID             string
	CompanyName    string
	WorkDays       []string // weekday names, e.g. "Monday"
	WorkStartTime  string   // "HH:MM"
	WorkEndTime    string   // "HH:MM"
	EnableOvertime bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DefaultCompanySettings returns the configuration created on first read.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		CompanyName:    "My Company",
		WorkDays:       []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		WorkStartTime:  "09:00",
		WorkEndTime:    "17:00",
		EnableOvertime: false,
	}
}

// IsWorkDay reports whether the given weekday is part of the configured
// working-days set.
func (s CompanySettings) IsWorkDay(day time.Weekday) bool {
	for _, d := range s.WorkDays {
		if d == day.String() {
			return true
		}
	}
	return false
}

// StartClock returns the scheduled start time-of-day as hour and minute.
func (s CompanySettings) StartClock() (hour, minute int) {
	return parseClock(s.WorkStartTime, 9, 0)
}

// EndClock returns the scheduled end time-of-day as hour and minute.
func (s CompanySettings) EndClock() (hour, minute int) {
	return parseClock(s.WorkEndTime, 17, 0)
}

// ExpectedDailyDuration is the scheduled working duration of one day.
func (s CompanySettings) ExpectedDailyDuration() time.Duration {
	sh, sm := s.StartClock()
	eh, em := s.EndClock()
	d := time.Duration(eh-sh)*time.Hour + time.Duration(em-sm)*time.Minute
	if d < 0 {
		return 0
	}
	return d
}

func parseClock(s string, fallbackHour, fallbackMinute int) (hour, minute int) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return fallbackHour, fallbackMinute
	}
	return t.Hour(), t.Minute()
}

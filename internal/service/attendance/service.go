package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/staffline/backoffice-go/internal/domain/attendance"
	"github.com/staffline/backoffice-go/internal/domain/employee"
	"github.com/staffline/backoffice-go/internal/domain/settings"
	"github.com/staffline/backoffice-go/internal/pkg/database"
	"github.com/staffline/backoffice-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db        *database.DB
	sessions  attendance.SessionRepository
	employees employee.EmployeeRepository
	settings  settings.Provider
	loc       *time.Location

	// now is swappable so closing rules can be exercised at fixed instants.
	now func() time.Time
}

func NewService(
	db *database.DB,
	sessions attendance.SessionRepository,
	employees employee.EmployeeRepository,
	settingsProvider settings.Provider,
	loc *time.Location,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		db:        db,
		sessions:  sessions,
		employees: employees,
		settings:  settingsProvider,
		loc:       loc,
		now:       time.Now,
	}
}

// ClockIn implements attendance.Service. A stale open session from a previous
// day is auto-closed before the new one is opened; an open session from today
// rejects the clock-in.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	cfg, err := s.settings.GetCompanySettings(ctx)
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to get company settings: %w", err)
	}

	now := s.now().In(s.loc)

	var created attendance.Session
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		// The open-session select locks nothing when the employee has no open
		// row, so concurrent first clock-ins serialize on the employee row
		// instead.
		if _, err := s.employees.GetByIDForUpdate(ctx, req.EmployeeID); err != nil {
			return fmt.Errorf("failed to lock employee: %w", err)
		}

		open, err := s.sessions.GetOpenSessionForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get open session: %w", err)
		}

		if open != nil {
			if sameDay(open.ClockIn.In(s.loc), now) {
				return attendance.ErrAlreadyClockedIn
			}
			closeAt := s.staleCloseTime(open.ClockIn, cfg)
			if _, err := s.sessions.SetClockOut(ctx, open.ID, closeAt); err != nil {
				return fmt.Errorf("failed to close stale session: %w", err)
			}
		}

		created, err = s.sessions.Create(ctx, attendance.Session{
			EmployeeID: req.EmployeeID,
			ClockIn:    now,
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			IPAddress:  req.IPAddress,
		})
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	return attendance.NewSessionResponse(created), nil
}

// ClockOut implements attendance.Service.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string) (attendance.SessionResponse, error) {
	now := s.now().In(s.loc)

	var closed attendance.Session
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		open, err := s.sessions.GetOpenSessionForUpdate(ctx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to get open session: %w", err)
		}
		if open == nil {
			return attendance.ErrNoActiveSession
		}

		closed, err = s.sessions.SetClockOut(ctx, open.ID, now)
		if err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	return attendance.NewSessionResponse(closed), nil
}

// GetAttendanceLogs implements attendance.Service. Sessions are folded into
// one record per calendar day, most recent day first.
func (s *AttendanceServiceImpl) GetAttendanceLogs(ctx context.Context, employeeID string) ([]attendance.DailyRecord, error) {
	cfg, err := s.settings.GetCompanySettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get company settings: %w", err)
	}

	sessions, err := s.sessions.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	records := make(map[string]*attendance.DailyRecord)
	for _, sess := range sessions {
		clockIn := sess.ClockIn.In(s.loc)
		key := clockIn.Format("2006-01-02")

		rec, ok := records[key]
		if !ok {
			rec = &attendance.DailyRecord{
				Date:         key,
				FirstClockIn: clockIn,
			}
			records[key] = rec
		}

		if clockIn.Before(rec.FirstClockIn) {
			rec.FirstClockIn = clockIn
		}

		if sess.ClockOut != nil {
			clockOut := sess.ClockOut.In(s.loc)
			rec.TotalDurationMs += clockOut.Sub(clockIn).Milliseconds()
			if !rec.IsActive && (rec.LastClockOut == nil || clockOut.After(*rec.LastClockOut)) {
				out := clockOut
				rec.LastClockOut = &out
			}
		} else {
			// An open session leaves the day without a final clock-out.
			rec.IsActive = true
			rec.LastClockOut = nil
		}

		rec.Sessions = append(rec.Sessions, attendance.NewSessionResponse(sess))
	}

	expected := cfg.ExpectedDailyDuration().Milliseconds()
	startH, startM := cfg.StartClock()

	out := make([]attendance.DailyRecord, 0, len(records))
	for _, rec := range records {
		day := rec.FirstClockIn
		rec.IsOffDay = !cfg.IsWorkDay(day.Weekday())

		// Late only applies on working days; overtime is the excess over the
		// scheduled daily duration on every day, off-days included.
		if !rec.IsOffDay {
			scheduledStart := time.Date(day.Year(), day.Month(), day.Day(), startH, startM, 0, 0, s.loc)
			rec.IsLate = rec.FirstClockIn.After(scheduledStart)
		}
		if rec.TotalDurationMs > expected {
			rec.OvertimeMs = rec.TotalDurationMs - expected
		}

		out = append(out, *rec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})

	return out, nil
}

// SweepStaleSessions implements attendance.Service. It closes every open
// session whose scheduled end has passed and reports how many were closed.
func (s *AttendanceServiceImpl) SweepStaleSessions(ctx context.Context) (int, error) {
	cfg, err := s.settings.GetCompanySettings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get company settings: %w", err)
	}

	open, err := s.sessions.ListOpenSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list open sessions: %w", err)
	}

	now := s.now().In(s.loc)
	endH, endM := cfg.EndClock()

	var closed int
	var errs []error
	for _, sess := range open {
		clockIn := sess.ClockIn.In(s.loc)

		var closeAt time.Time
		switch {
		case !sameDay(clockIn, now):
			closeAt = s.staleCloseTime(sess.ClockIn, cfg)
		case !cfg.EnableOvertime:
			// Same-day sessions are closed at the scheduled end once it has
			// passed, unless overtime is allowed to run.
			end := time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(), endH, endM, 0, 0, s.loc)
			if !now.After(end) {
				continue
			}
			closeAt = end
			if closeAt.Before(sess.ClockIn) {
				closeAt = sess.ClockIn.Add(time.Second)
			}
		default:
			continue
		}

		if _, err := s.sessions.SetClockOut(ctx, sess.ID, closeAt); err != nil {
			errs = append(errs, fmt.Errorf("failed to close session %s: %w", sess.ID, err))
			continue
		}
		closed++
	}

	return closed, errors.Join(errs...)
}

// staleCloseTime resolves the clock-out applied to a session left open past
// its day: end of day when overtime is enabled, the scheduled end otherwise.
// A close time that lands before the clock-in is bumped just past it.
func (s *AttendanceServiceImpl) staleCloseTime(clockIn time.Time, cfg settings.CompanySettings) time.Time {
	day := clockIn.In(s.loc)

	var closeAt time.Time
	if cfg.EnableOvertime {
		closeAt = time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999_000_000, s.loc)
	} else {
		endH, endM := cfg.EndClock()
		closeAt = time.Date(day.Year(), day.Month(), day.Day(), endH, endM, 0, 0, s.loc)
	}

	if closeAt.Before(clockIn) {
		closeAt = clockIn.Add(time.Second)
	}
	return closeAt
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

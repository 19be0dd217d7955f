package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffline/backoffice-go/internal/domain/attendance"
	"github.com/staffline/backoffice-go/internal/domain/employee"
	"github.com/staffline/backoffice-go/internal/domain/settings"
)

type fakeSessionRepo struct {
	sessions []*attendance.Session
	nextID   int
}

func (f *fakeSessionRepo) Create(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	f.nextID++
	s.ID = fmt.Sprintf("session-%d", f.nextID)
	s.CreatedAt = s.ClockIn
	copied := s
	f.sessions = append(f.sessions, &copied)
	return s, nil
}

func (f *fakeSessionRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time) (attendance.Session, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			out := clockOut
			s.ClockOut = &out
			return *s, nil
		}
	}
	return attendance.Session{}, attendance.ErrSessionNotFound
}

func (f *fakeSessionRepo) GetOpenSessionForUpdate(ctx context.Context, employeeID string) (*attendance.Session, error) {
	var latest *attendance.Session
	for _, s := range f.sessions {
		if s.EmployeeID == employeeID && s.ClockOut == nil {
			if latest == nil || s.ClockIn.After(latest.ClockIn) {
				latest = s
			}
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeSessionRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Session, error) {
	var out []attendance.Session
	for _, s := range f.sessions {
		if s.EmployeeID == employeeID {
			out = append(out, *s)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].ClockIn.Before(out[i].ClockIn) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListOpenSessions(ctx context.Context) ([]attendance.Session, error) {
	var out []attendance.Session
	for _, s := range f.sessions {
		if s.ClockOut == nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) SumClosedDurationMs(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	for _, s := range f.sessions {
		if s.ClockOut != nil && !s.ClockIn.Before(start) && s.ClockIn.Before(end) {
			total += s.ClockOut.Sub(s.ClockIn).Milliseconds()
		}
	}
	return total, nil
}

// fakeEmployeeRepo knows a fixed set of employee IDs and counts row locks
// taken against them.
type fakeEmployeeRepo struct {
	ids       []string
	lockCalls int
}

func (f *fakeEmployeeRepo) get(id string) (employee.Employee, error) {
	for _, known := range f.ids {
		if known == id {
			return employee.Employee{ID: id}, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.ids = append(f.ids, e.ID)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.get(id)
}

func (f *fakeEmployeeRepo) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	f.lockCalls++
	return f.get(id)
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.ids))
	for _, id := range f.ids {
		out = append(out, employee.Employee{ID: id})
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return f.get(e.ID)
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := f.get(id)
	return err
}

func (f *fakeEmployeeRepo) SetRefreshToken(ctx context.Context, id string, token *string) error {
	_, err := f.get(id)
	return err
}

type fakeSettingsProvider struct {
	cfg settings.CompanySettings
}

func (f *fakeSettingsProvider) GetCompanySettings(ctx context.Context) (settings.CompanySettings, error) {
	return f.cfg, nil
}

func defaultSchedule() settings.CompanySettings {
	return settings.CompanySettings{
		CompanyName:    "Test Co",
		WorkDays:       []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		WorkStartTime:  "09:00",
		WorkEndTime:    "17:00",
		EnableOvertime: false,
	}
}

// newTestService returns the service, its repository fake, and a setter for
// the current instant.
func newTestService(cfg settings.CompanySettings) (*AttendanceServiceImpl, *fakeSessionRepo, func(time.Time)) {
	repo := &fakeSessionRepo{}
	employees := &fakeEmployeeRepo{ids: []string{"emp-1", "emp-2"}}
	svc := NewService(nil, repo, employees, &fakeSettingsProvider{cfg: cfg}, time.UTC)

	current := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC) // Monday
	svc.now = func() time.Time { return current }
	setNow := func(t time.Time) { current = t }

	return svc, repo, setNow
}

func TestClockIn_OpensSession(t *testing.T) {
	svc, repo, setNow := newTestService(defaultSchedule())
	setNow(time.Date(2024, 1, 8, 8, 55, 0, 0, time.UTC))

	resp, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Nil(t, resp.ClockOut)
	require.Len(t, repo.sessions, 1)
	assert.Nil(t, repo.sessions[0].ClockOut)
}

func TestClockIn_RejectsSecondSameDay(t *testing.T) {
	svc, _, setNow := newTestService(defaultSchedule())
	setNow(time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	setNow(time.Date(2024, 1, 8, 13, 0, 0, 0, time.UTC))
	_, err = svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_LocksEmployeeRow(t *testing.T) {
	// A first clock-in finds no open session to lock, so the transaction must
	// serialize on the employee row instead.
	svc, _, setNow := newTestService(defaultSchedule())
	setNow(time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	employees := svc.employees.(*fakeEmployeeRepo)
	assert.Equal(t, 1, employees.lockCalls)
}

func TestClockIn_UnknownEmployee(t *testing.T) {
	svc, repo, _ := newTestService(defaultSchedule())

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "ghost"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, repo.sessions)
}

func TestClockIn_ClosesStaleSessionAtScheduledEnd(t *testing.T) {
	svc, repo, setNow := newTestService(defaultSchedule())

	setNow(time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC))
	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	// Next day: the forgotten session is closed at 17:00 of its own day.
	setNow(time.Date(2024, 1, 9, 8, 30, 0, 0, time.UTC))
	_, err = svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	require.Len(t, repo.sessions, 2)
	stale := repo.sessions[0]
	require.NotNil(t, stale.ClockOut)
	assert.Equal(t, time.Date(2024, 1, 8, 17, 0, 0, 0, time.UTC), *stale.ClockOut)
}

func TestClockIn_ClosesStaleSessionAtEndOfDayWithOvertime(t *testing.T) {
	cfg := defaultSchedule()
	cfg.EnableOvertime = true
	svc, repo, setNow := newTestService(cfg)

	setNow(time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC))
	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	setNow(time.Date(2024, 1, 9, 8, 30, 0, 0, time.UTC))
	_, err = svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	stale := repo.sessions[0]
	require.NotNil(t, stale.ClockOut)
	assert.Equal(t, time.Date(2024, 1, 8, 23, 59, 59, 999_000_000, time.UTC), *stale.ClockOut)
}

func TestClockIn_BumpsCloseTimePastLateClockIn(t *testing.T) {
	// Clock-in after the scheduled end: the close time would precede the
	// clock-in, so it lands one second after it instead.
	svc, repo, setNow := newTestService(defaultSchedule())

	setNow(time.Date(2024, 1, 8, 18, 0, 0, 0, time.UTC))
	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	setNow(time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC))
	_, err = svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	stale := repo.sessions[0]
	require.NotNil(t, stale.ClockOut)
	assert.Equal(t, time.Date(2024, 1, 8, 18, 0, 1, 0, time.UTC), *stale.ClockOut)
}

func TestClockOut(t *testing.T) {
	svc, _, setNow := newTestService(defaultSchedule())

	setNow(time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC))
	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	setNow(time.Date(2024, 1, 8, 17, 30, 0, 0, time.UTC))
	resp, err := svc.ClockOut(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, resp.ClockOut)
	assert.Equal(t, time.Date(2024, 1, 8, 17, 30, 0, 0, time.UTC), *resp.ClockOut)

	_, err = svc.ClockOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)
}

func TestGetAttendanceLogs_FoldsSessionsPerDay(t *testing.T) {
	svc, repo, _ := newTestService(defaultSchedule())

	morning := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	noon := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	afternoon := time.Date(2024, 1, 8, 13, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 8, 18, 30, 0, 0, time.UTC)

	repo.Create(context.Background(), attendance.Session{EmployeeID: "emp-1", ClockIn: morning, ClockOut: &noon})
	repo.Create(context.Background(), attendance.Session{EmployeeID: "emp-1", ClockIn: afternoon, ClockOut: &evening})

	records, err := svc.GetAttendanceLogs(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "2024-01-08", rec.Date)
	assert.Equal(t, morning, rec.FirstClockIn)
	require.NotNil(t, rec.LastClockOut)
	assert.Equal(t, evening, *rec.LastClockOut)
	assert.Equal(t, (8*time.Hour + 30*time.Minute).Milliseconds(), rec.TotalDurationMs)
	assert.Equal(t, (30 * time.Minute).Milliseconds(), rec.OvertimeMs)
	assert.False(t, rec.IsLate)
	assert.False(t, rec.IsOffDay)
	assert.False(t, rec.IsActive)
	assert.Len(t, rec.Sessions, 2)
}

func TestGetAttendanceLogs_LateIsStrict(t *testing.T) {
	svc, repo, _ := newTestService(defaultSchedule())

	in := time.Date(2024, 1, 8, 9, 0, 1, 0, time.UTC)
	out := time.Date(2024, 1, 8, 17, 0, 0, 0, time.UTC)
	repo.Create(context.Background(), attendance.Session{EmployeeID: "emp-1", ClockIn: in, ClockOut: &out})

	records, err := svc.GetAttendanceLogs(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].IsLate)
}

func TestGetAttendanceLogs_OffDay(t *testing.T) {
	svc, repo, _ := newTestService(defaultSchedule())

	// Sunday, 4 hours worked against an 8-hour schedule: still no overtime.
	in := time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 7, 14, 0, 0, 0, time.UTC)
	repo.Create(context.Background(), attendance.Session{EmployeeID: "emp-1", ClockIn: in, ClockOut: &out})

	records, err := svc.GetAttendanceLogs(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.True(t, rec.IsOffDay)
	assert.False(t, rec.IsLate)
	assert.Zero(t, rec.OvertimeMs)
}

func TestGetAttendanceLogs_OffDayOvertimeIsExcessOnly(t *testing.T) {
	svc, repo, _ := newTestService(defaultSchedule())

	// Sunday, 10 hours worked: overtime is the 2 hours past the scheduled
	// daily duration, the same rule as on working days.
	in := time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 7, 18, 0, 0, 0, time.UTC)
	repo.Create(context.Background(), attendance.Session{EmployeeID: "emp-1", ClockIn: in, ClockOut: &out})

	records, err := svc.GetAttendanceLogs(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.True(t, rec.IsOffDay)
	assert.Equal(t, (2 * time.Hour).Milliseconds(), rec.OvertimeMs)
}

func TestGetAttendanceLogs_ActiveSessionAndOrdering(t *testing.T) {
	svc, repo, _ := newTestService(defaultSchedule())

	mondayIn := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	mondayOut := time.Date(2024, 1, 8, 17, 0, 0, 0, time.UTC)
	repo.Create(context.Background(), attendance.Session{EmployeeID: "emp-1", ClockIn: mondayIn, ClockOut: &mondayOut})
	repo.Create(context.Background(), attendance.Session{EmployeeID: "emp-1", ClockIn: time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC)})

	records, err := svc.GetAttendanceLogs(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recent day first; the open day has no final clock-out.
	assert.Equal(t, "2024-01-09", records[0].Date)
	assert.True(t, records[0].IsActive)
	assert.Nil(t, records[0].LastClockOut)
	assert.Equal(t, "2024-01-08", records[1].Date)
}

func TestSweepStaleSessions(t *testing.T) {
	svc, repo, setNow := newTestService(defaultSchedule())

	// Stale session from Friday, and one from today still inside work hours.
	repo.Create(context.Background(), attendance.Session{EmployeeID: "emp-1", ClockIn: time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)})
	repo.Create(context.Background(), attendance.Session{EmployeeID: "emp-2", ClockIn: time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)})

	setNow(time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC))
	closed, err := svc.SweepStaleSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, closed)
	require.NotNil(t, repo.sessions[0].ClockOut)
	assert.Equal(t, time.Date(2024, 1, 5, 17, 0, 0, 0, time.UTC), *repo.sessions[0].ClockOut)
	assert.Nil(t, repo.sessions[1].ClockOut)

	// Past the scheduled end, today's session is closed at 17:00 exactly.
	setNow(time.Date(2024, 1, 8, 17, 5, 0, 0, time.UTC))
	closed, err = svc.SweepStaleSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, closed)
	require.NotNil(t, repo.sessions[1].ClockOut)
	assert.Equal(t, time.Date(2024, 1, 8, 17, 0, 0, 0, time.UTC), *repo.sessions[1].ClockOut)

	// Nothing left to close.
	closed, err = svc.SweepStaleSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestSweepStaleSessions_LeavesSameDayOpenWithOvertime(t *testing.T) {
	cfg := defaultSchedule()
	cfg.EnableOvertime = true
	svc, repo, setNow := newTestService(cfg)

	repo.Create(context.Background(), attendance.Session{EmployeeID: "emp-1", ClockIn: time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)})

	setNow(time.Date(2024, 1, 8, 20, 0, 0, 0, time.UTC))
	closed, err := svc.SweepStaleSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
	assert.Nil(t, repo.sessions[0].ClockOut)
}

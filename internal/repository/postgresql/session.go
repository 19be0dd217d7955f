package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffline/backoffice-go/internal/domain/attendance"
	"github.com/staffline/backoffice-go/internal/pkg/database"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

const sessionColumns = `id, employee_id, clock_in, clock_out, latitude, longitude, ip_address, created_at`

func scanSession(row pgx.Row) (attendance.Session, error) {
	var s attendance.Session
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.ClockIn, &s.ClockOut,
		&s.Latitude, &s.Longitude, &s.IPAddress, &s.CreatedAt,
	)
	return s, err
}

// Create implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) Create(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO attendance_sessions (
			id, employee_id, clock_in, clock_out, latitude, longitude, ip_address, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW()
		) RETURNING created_at
	`

	s.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		s.ID, s.EmployeeID, s.ClockIn, s.ClockOut,
		s.Latitude, s.Longitude, s.IPAddress,
	).Scan(&s.CreatedAt)
	if err != nil {
		return attendance.Session{}, err
	}

	return s, nil
}

// SetClockOut implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) SetClockOut(ctx context.Context, id string, clockOut time.Time) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE attendance_sessions
		SET clock_out = $2
		WHERE id = $1
		RETURNING ` + sessionColumns

	s, err := scanSession(q.QueryRow(ctx, query, id, clockOut))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrSessionNotFound
		}
		return attendance.Session{}, err
	}
	return s, nil
}

// GetOpenSessionForUpdate implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) GetOpenSessionForUpdate(ctx context.Context, employeeID string) (*attendance.Session, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
		FOR UPDATE
	`

	s, err := scanSession(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// ListByEmployee implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		ORDER BY clock_in ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListOpenSessions implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) ListOpenSessions(ctx context.Context) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE clock_out IS NULL
		ORDER BY clock_in ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SumClosedDurationMs implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) SumClosedDurationMs(ctx context.Context, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT COALESCE(SUM(EXTRACT(EPOCH FROM (clock_out - clock_in)) * 1000), 0)::bigint
		FROM attendance_sessions
		WHERE clock_out IS NOT NULL
		  AND clock_in >= $1 AND clock_in < $2
	`

	var total int64
	if err := q.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

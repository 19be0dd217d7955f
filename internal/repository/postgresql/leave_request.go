package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffline/backoffice-go/internal/domain/leave"
	"github.com/staffline/backoffice-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `id, employee_id, start_date, end_date, type, reason, status, created_at, updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate,
		&lr.Type, &lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_requests (
			id, employee_id, start_date, end_date, type, reason, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	lr.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		lr.ID, lr.EmployeeID, lr.StartDate, lr.EndDate,
		lr.Type, lr.Reason, lr.Status,
	).Scan(&lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return lr, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_requests
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + leaveRequestColumns

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id, status, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// ListApproved implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApproved(ctx context.Context, employeeID, typeName string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.type,
		       lr.reason, lr.status, lr.created_at, lr.updated_at, e.name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.status = 'approved'
		  AND ($1 = '' OR lr.employee_id = $1)
		  AND ($2 = '' OR lr.type = $2)
		ORDER BY lr.start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, typeName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Type,
			&lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt, &lr.EmployeeName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

// ListApprovedInPeriod implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedInPeriod(ctx context.Context, employeeID, typeName string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE status = 'approved'
		  AND employee_id = $1
		  AND ($2 = '' OR type = $2)
		  AND start_date >= $3 AND end_date < $4
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, typeName, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// ListPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.type,
		       lr.reason, lr.status, lr.created_at, lr.updated_at, e.name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.status = 'pending'
		ORDER BY lr.created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Type,
			&lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt, &lr.EmployeeName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

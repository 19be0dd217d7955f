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

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

const leaveTypeColumns = `id, name, days_allowed, active, created_at, updated_at`

func scanLeaveType(row pgx.Row) (leave.LeaveType, error) {
	var t leave.LeaveType
	err := row.Scan(&t.ID, &t.Name, &t.DaysAllowed, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, t leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_types (id, name, days_allowed, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	t.ID = uuid.NewString()
	err := q.QueryRow(ctx, query, t.ID, t.Name, t.DaysAllowed, t.Active).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return leave.LeaveType{}, err
	}

	return t, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveTypeColumns + `
		FROM leave_types
		WHERE id = $1
	`

	t, err := scanLeaveType(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}
	return t, nil
}

// GetByName implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByName(ctx context.Context, name string) (*leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveTypeColumns + `
		FROM leave_types
		WHERE name = $1
	`

	t, err := scanLeaveType(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// GetActiveByNameForUpdate implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetActiveByNameForUpdate(ctx context.Context, name string) (*leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveTypeColumns + `
		FROM leave_types
		WHERE name = $1 AND active = true
		FOR UPDATE
	`

	t, err := scanLeaveType(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// List implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveTypeColumns + `
		FROM leave_types
	`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		t, err := scanLeaveType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return types, nil
}

// Update implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, t leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_types
		SET name = $2, days_allowed = $3, active = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + leaveTypeColumns

	updated, err := scanLeaveType(q.QueryRow(ctx, query, t.ID, t.Name, t.DaysAllowed, t.Active, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}
	return updated, nil
}

// Delete implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM leave_types
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}

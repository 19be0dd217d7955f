package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffline/backoffice-go/internal/domain/role"
	"github.com/staffline/backoffice-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

const roleColumns = `id, name, permissions, created_at, updated_at`

func scanRole(row pgx.Row) (role.Role, error) {
	var r role.Role
	err := row.Scan(&r.ID, &r.Name, &r.Permissions, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, ro role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO roles (id, name, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	ro.ID = uuid.NewString()
	err := q.QueryRow(ctx, query, ro.ID, ro.Name, ro.Permissions).
		Scan(&ro.CreatedAt, &ro.UpdatedAt)
	if err != nil {
		return role.Role{}, err
	}

	return ro, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + roleColumns + `
		FROM roles
		WHERE id = $1
	`

	ro, err := scanRole(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, err
	}
	return ro, nil
}

// GetByName implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByName(ctx context.Context, name string) (*role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + roleColumns + `
		FROM roles
		WHERE name = $1
	`

	ro, err := scanRole(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ro, nil
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + roleColumns + `
		FROM roles
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		ro, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, ro)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, ro role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE roles
		SET name = $2, permissions = $3, updated_at = $4
		WHERE id = $1
		RETURNING ` + roleColumns

	updated, err := scanRole(q.QueryRow(ctx, query, ro.ID, ro.Name, ro.Permissions, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, err
	}
	return updated, nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM roles
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return role.ErrRoleNotFound
	}
	return nil
}

// CountEmployeesWithRole implements role.RoleRepository.
func (r *roleRepositoryImpl) CountEmployeesWithRole(ctx context.Context, id string) (int, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT COUNT(*)
		FROM employees
		WHERE role_id = $1
	`

	var count int
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

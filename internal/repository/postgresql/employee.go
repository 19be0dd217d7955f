package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffline/backoffice-go/internal/domain/employee"
	"github.com/staffline/backoffice-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.email, e.name, e.password_hash, e.role_id, e.salary,
	e.refresh_token, e.created_at, e.updated_at, r.name, r.permissions`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Email, &e.Name, &e.PasswordHash, &e.RoleID, &e.Salary,
		&e.RefreshToken, &e.CreatedAt, &e.UpdatedAt, &e.RoleName, &e.Permissions,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employees (
			id, email, name, password_hash, role_id, salary, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	e.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		e.ID, e.Email, e.Name, e.PasswordHash, e.RoleID, e.Salary,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN roles r ON r.id = e.role_id
		WHERE e.id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// GetByIDForUpdate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN roles r ON r.id = e.role_id
		WHERE e.id = $1
		FOR UPDATE OF e
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN roles r ON r.id = e.role_id
		WHERE e.email = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN roles r ON r.id = e.role_id
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET email = $2, name = $3, password_hash = $4, role_id = $5, salary = $6, updated_at = $7
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		e.ID, e.Email, e.Name, e.PasswordHash, e.RoleID, e.Salary, time.Now(),
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return r.GetByID(ctx, updatedID)
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM employees
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetRefreshToken implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetRefreshToken(ctx context.Context, id string, token *string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET refresh_token = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, token, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

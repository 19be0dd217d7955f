package employee

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffline/backoffice-go/internal/domain/employee"
	"github.com/staffline/backoffice-go/internal/domain/role"
)

type EmployeeServiceImpl struct {
	employees employee.EmployeeRepository
	roles     role.RoleRepository
}

func NewService(employees employee.EmployeeRepository, roles role.RoleRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employees: employees,
		roles:     roles,
	}
}

// CreateEmployee implements employee.Service.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employees.GetByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmailTaken
	}

	if _, err := s.roles.GetByID(ctx, req.RoleID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.employees.Create(ctx, employee.Employee{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
		Salary:       req.Salary,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.NewEmployeeResponse(created), nil
}

// GetEmployee implements employee.Service.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// ListEmployees implements employee.Service.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

// UpdateEmployee implements employee.Service.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employees.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil && *req.Email != current.Email {
		existing, err := s.employees.GetByEmail(ctx, *req.Email)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return employee.EmployeeResponse{}, employee.ErrEmailTaken
		}
		current.Email = *req.Email
	}
	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		current.PasswordHash = string(hash)
	}
	if req.RoleID != nil {
		if _, err := s.roles.GetByID(ctx, *req.RoleID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		current.RoleID = *req.RoleID
	}
	if req.Salary != nil {
		current.Salary = *req.Salary
	}

	updated, err := s.employees.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.NewEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.Service.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employees.Delete(ctx, id)
}

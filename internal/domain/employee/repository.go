package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByIDForUpdate locks the employee row for the duration of the
	// enclosing transaction. Writers that must serialize per employee, such as
	// clock-in, take this lock first.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)

	// GetByEmail returns nil when no employee has the email.
	GetByEmail(ctx context.Context, email string) (*Employee, error)

	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id string) error

	// SetRefreshToken stores the current refresh token hash, or clears it when
	// token is nil.
	SetRefreshToken(ctx context.Context, id string, token *string) error
}

type Service interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
}

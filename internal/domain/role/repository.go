package role

import "context"

type RoleRepository interface {
	Create(ctx context.Context, r Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)

	// GetByName returns nil when no role has the name.
	GetByName(ctx context.Context, name string) (*Role, error)

	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, r Role) (Role, error)
	Delete(ctx context.Context, id string) error
	CountEmployeesWithRole(ctx context.Context, id string) (int, error)
}

type Service interface {
	CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetRole(ctx context.Context, id string) (RoleResponse, error)
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error
}

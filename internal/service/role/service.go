package role

import (
	"context"
	"fmt"

	"github.com/staffline/backoffice-go/internal/domain/role"
)

type RoleServiceImpl struct {
	roles role.RoleRepository
}

func NewService(roles role.RoleRepository) *RoleServiceImpl {
	return &RoleServiceImpl{roles: roles}
}

// CreateRole implements role.Service.
func (s *RoleServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	existing, err := s.roles.GetByName(ctx, req.Name)
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("failed to check role name: %w", err)
	}
	if existing != nil {
		return role.RoleResponse{}, role.ErrRoleNameTaken
	}

	created, err := s.roles.Create(ctx, role.Role{
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("failed to create role: %w", err)
	}

	return role.NewRoleResponse(created), nil
}

// GetRole implements role.Service.
func (s *RoleServiceImpl) GetRole(ctx context.Context, id string) (role.RoleResponse, error) {
	r, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.NewRoleResponse(r), nil
}

// ListRoles implements role.Service.
func (s *RoleServiceImpl) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, role.NewRoleResponse(r))
	}
	return responses, nil
}

// UpdateRole implements role.Service.
func (s *RoleServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	current, err := s.roles.GetByID(ctx, req.ID)
	if err != nil {
		return role.RoleResponse{}, err
	}

	if req.Name != nil && *req.Name != current.Name {
		existing, err := s.roles.GetByName(ctx, *req.Name)
		if err != nil {
			return role.RoleResponse{}, fmt.Errorf("failed to check role name: %w", err)
		}
		if existing != nil {
			return role.RoleResponse{}, role.ErrRoleNameTaken
		}
		current.Name = *req.Name
	}
	if req.Permissions != nil {
		current.Permissions = *req.Permissions
	}

	updated, err := s.roles.Update(ctx, current)
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("failed to update role: %w", err)
	}

	return role.NewRoleResponse(updated), nil
}

// DeleteRole implements role.Service. A role still assigned to employees is
// not deletable.
func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	count, err := s.roles.CountEmployeesWithRole(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count role assignments: %w", err)
	}
	if count > 0 {
		return role.ErrRoleInUse
	}

	return s.roles.Delete(ctx, id)
}

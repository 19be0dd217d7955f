package role

import "errors"

var (
	ErrRoleNotFound  = errors.New("role not found")
	ErrRoleNameTaken = errors.New("role name already in use")
	ErrRoleInUse     = errors.New("role is assigned to one or more employees")
)

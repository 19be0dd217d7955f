package role

import (
	"time"

	"github.com/staffline/backoffice-go/internal/pkg/validator"
)

type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	for _, p := range r.Permissions {
		if !validator.IsInSlice(p, KnownPermissions) {
			errs = append(errs, validator.ValidationError{
				Field:   "permissions",
				Message: "unknown permission: " + p,
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoleRequest struct {
	ID          string    `json:"-"`
	Name        *string   `json:"name"`
	Permissions *[]string `json:"permissions"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Permissions != nil {
		for _, p := range *r.Permissions {
			if !validator.IsInSlice(p, KnownPermissions) {
				errs = append(errs, validator.ValidationError{
					Field:   "permissions",
					Message: "unknown permission: " + p,
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRoleResponse(r Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
	}
}

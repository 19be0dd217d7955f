package role

import "time"

// Role groups employees under a named set of permissions. The "all" permission
// grants every surface.
type Role struct {
	ID          string
	Name        string
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// KnownPermissions enumerates the permission keys route guards understand.
var KnownPermissions = []string{
	"all", "employees", "attendance", "products", "sales", "analytics", "pos",
}

func (r Role) HasPermission(perm string) bool {
	for _, p := range r.Permissions {
		if p == "all" || p == perm {
			return true
		}
	}
	return false
}

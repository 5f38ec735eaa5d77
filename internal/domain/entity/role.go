package entity

import "time"

// Role representa un rol con su lista de permisos asignables a usuarios.
type Role struct {
	ID          string
	CompanyID   string
	Name        string
	Permissions []string // ej. "menus:write", "prices:write", "users:admin"
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPermission indica si el rol incluye el permiso dado.
func (r *Role) HasPermission(perm string) bool {
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

package auth

import (
	"strings"

	"github.com/dmoralesmx/cotizador/internal/models"
)

// Role-based gating for the presentation layer. Nothing here is enforced
// server-side; it only decides which surfaces a session may reach.

// Action describes the kind of operation a user wants to perform.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

// Permission represents an allowed action on a resource type.
// Format: "resource:action" (e.g., "cotizacion:create").
type Permission string

func NewPermission(resource string, action Action) Permission {
	return Permission(resource + ":" + string(action))
}

const PermissionSuperAdmin Permission = "*:*"

// Matches checks if this permission covers a requested permission.
// Supports wildcards: "*:*" matches all, "cotizacion:*" matches all
// quotation actions.
func (p Permission) Matches(requested Permission) bool {
	if p == PermissionSuperAdmin {
		return true
	}
	if p == requested {
		return true
	}
	pr, pa := split(p)
	rr, ra := split(requested)
	if pr == "" || rr == "" {
		return false
	}
	if (pr == "*" || pr == rr) && (pa == "*" || pa == ra) {
		return true
	}
	return false
}

func split(p Permission) (resource, action string) {
	parts := strings.SplitN(string(p), ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

var rolePermissions = map[models.Role][]Permission{
	models.RoleSuperAdmin: {PermissionSuperAdmin},
	models.RoleAdmin: {
		"cotizacion:*", "cliente:*", "catalogo:*", "negocio:*", "export:*",
	},
	models.RoleSeller: {
		"cotizacion:*", "cliente:*", "export:*",
		"catalogo:view", "catalogo:list",
	},
	models.RoleInstaller: {
		"cotizacion:view", "cotizacion:list",
		"cliente:view", "cliente:list",
	},
}

// Can reports whether the user's role grants action on resource. A nil user
// is never authorized.
func Can(u *models.User, action Action, resource string) bool {
	if u == nil {
		return false
	}
	requested := NewPermission(resource, action)
	for _, p := range rolePermissions[u.Role] {
		if p.Matches(requested) {
			return true
		}
	}
	return false
}

package models

// User & auth related models. Users are a fixed in-memory list; roles gate
// which surfaces a session may reach, nothing is enforced server-side.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSeller     Role = "seller"
	RoleInstaller  Role = "installer"
	RoleSuperAdmin Role = "super-admin"
)

type User struct {
	ID           string
	Nombre       string
	Email        string
	PasswordHash string // bcrypt
	Role         Role
	Active       bool
}

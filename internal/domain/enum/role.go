package enum

// Role is the permission level of a waiter account.
// Roles are stored as strings so JWT claims stay readable.
type Role string

const (
	RoleWaiter  Role = "WAITER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleWaiter || r == RoleManager || r == RoleAdmin
}

// CanManage reports whether the role may perform manager-gated operations
// (cancel order, close shift, menu/inventory administration).
func (r Role) CanManage() bool {
	return r == RoleManager || r == RoleAdmin
}

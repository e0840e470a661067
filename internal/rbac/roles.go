package rbac

// Role names. Keep these stable; they are part of auth contracts.
const (
	RoleAdmin      = "admin"
	RolePastor     = "pastor"
	RoleStaff      = "staff"
	RoleSuperAdmin = "super_admin"
)

func IsSuperAdmin(role string) bool { return role == RoleSuperAdmin }

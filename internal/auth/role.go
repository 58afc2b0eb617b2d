// Package auth contains the session and role-access core of the portal.
// Sessions live in a key/value storage behind the Storage interface, and
// every access decision (role checks, guard redirects) is derived from the
// stored session through the pure functions in this package.
package auth

// Role identifies a user's permission class.  The set of roles is closed:
// adding a role means extending the switches in Rank, DisplayName and
// DashboardPath so the compiler flags every place that needs updating.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleSalesman   Role = "salesman"
	RolePurchase   Role = "purchase"
	RoleUser       Role = "user"
)

// DefaultDashboardPath is where unmapped roles land after login.
const DefaultDashboardPath = "/dashboard/user"

// ParseRole maps a wire value onto a known Role.  Unknown values return
// false so callers can fail closed instead of carrying a bogus role around.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleSalesman, RolePurchase, RoleUser:
		return Role(s), true
	}
	return "", false
}

// Rank returns the hierarchy rank used for minimum-role comparisons.
// Salesman and purchase share a rank on purpose: neither dominates the
// other, they are different specialists at the same level.  Unknown roles
// rank 0 and therefore never satisfy a minimum-role check.
func (r Role) Rank() int {
	switch r {
	case RoleSuperAdmin:
		return 6
	case RoleAdmin:
		return 5
	case RoleManager:
		return 4
	case RoleSalesman:
		return 3
	case RolePurchase:
		return 3
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// DisplayName returns a human label for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdmin:
		return "Admin"
	case RoleManager:
		return "Manager"
	case RoleSalesman:
		return "Salesman"
	case RolePurchase:
		return "Purchase Manager"
	case RoleUser:
		return "User"
	default:
		return "Unknown Role"
	}
}

// DashboardPath returns the canonical landing path for the role.  Unmapped
// roles fall back to the generic user dashboard.
func (r Role) DashboardPath() string {
	switch r {
	case RoleSuperAdmin:
		return "/dashboard/super-admin"
	case RoleAdmin:
		return "/dashboard/admin"
	case RoleManager:
		return "/dashboard/manager"
	case RoleSalesman:
		return "/dashboard/salesman"
	case RolePurchase:
		return "/dashboard/purchase"
	case RoleUser:
		return "/dashboard/user"
	default:
		return DefaultDashboardPath
	}
}

// HasRole reports whether current is exactly required.  No hierarchy, no
// super-admin override; this is the strict membership test the role guard
// builds on before applying its exemptions.
func HasRole(current, required Role) bool {
	return current != "" && current == required
}

// HasMinimumRole reports whether current meets or exceeds minimum in the
// hierarchy.  An empty role on either side never satisfies the check.
func HasMinimumRole(current, minimum Role) bool {
	if current == "" || minimum == "" {
		return false
	}
	return current.Rank() >= minimum.Rank()
}

// CanAccessResource reports whether current may access a resource restricted
// to allowed.  Super admin bypasses every explicit list, including lists
// that do not name it; downstream screens rely on that asymmetry, so do not
// normalize it into a plain membership test.
func CanAccessResource(current Role, allowed []Role) bool {
	if current == "" {
		return false
	}
	if current == RoleSuperAdmin {
		return true
	}
	for _, a := range allowed {
		if current == a {
			return true
		}
	}
	return false
}

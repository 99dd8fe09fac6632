package constants

// Application roles, carried in the JWT "role" claim.
const (
	RoleOwner      = "owner"
	RoleAdmin      = "admin"
	RoleFinance    = "finance"
	RoleInstructor = "instructor"
)

// Groups used by the role middleware.
var (
	AdminAndAbove   = []string{RoleOwner, RoleAdmin}
	FinanceAndAbove = []string{RoleOwner, RoleAdmin, RoleFinance}
	AllKnownRoles   = []string{RoleOwner, RoleAdmin, RoleFinance, RoleInstructor}
)

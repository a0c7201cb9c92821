package domain

import "slices"

// Role represents a caller role in the system
type Role string

const (
	// RoleSuperAdmin bypasses per-tenant membership checks entirely
	RoleSuperAdmin Role = "super_admin"

	// RoleCompanyAdmin manages a single tenant: settings, aliases, backups
	RoleCompanyAdmin Role = "COMPANY_ADMIN"

	// RoleCompanyUser has basic access to a tenant's data
	RoleCompanyUser Role = "COMPANY_USER"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleSuperAdmin, RoleCompanyAdmin, RoleCompanyUser}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}

package auth

import (
	"errors"

	"lye_backend/internal/models"
)

// Allow is the role policy decision: true iff the verified identity's role
// is in the required set. It never re-verifies the identity.
func Allow(role models.UserRole, required ...models.UserRole) bool {
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the role is admin.
func IsAdmin(role models.UserRole) bool {
	return role == models.UserRoleAdmin
}

// IsRoot reports whether the role is the distinguished root tier.
func IsRoot(role models.UserRole) bool {
	return role == models.UserRoleRoot
}

// IsAdminOrHigher reports whether the role is admin or root.
func IsAdminOrHigher(role models.UserRole) bool {
	return RoleLevel(role) >= models.RoleLevels[models.UserRoleAdmin]
}

// RoleLevel returns the hierarchy level of a role, 0 for unknown roles.
func RoleLevel(role models.UserRole) int {
	return models.RoleLevels[role]
}

// ValidateRole checks a requested role against the declared set. This is a
// distinct check from Allow and runs before any role is persisted.
func ValidateRole(role string) error {
	switch models.UserRole(role) {
	case models.UserRoleResearcher, models.UserRoleAdmin, models.UserRoleRoot:
		return nil
	default:
		return errors.New("invalid role")
	}
}

package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
	UserIDKey ContextKey = "user_id"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrNoUserIDInClaims  = errors.New("no user_id found in claims")
	ErrInvalidUserIDType = errors.New("user_id must be a string")
)

func GetUserIDFromContext(c context.Context) (string, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	userID, exists := claims[string(UserIDKey)]
	if !exists {
		return "", ErrNoUserIDInClaims
	}

	userIDStr, ok := userID.(string)
	if !ok {
		return "", ErrInvalidUserIDType
	}

	return userIDStr, nil
}

// GetRolesFromContext returns the caller's roles from the JWT claims. A
// missing or malformed roles claim yields an empty slice, not an error; the
// caller simply has no roles.
func GetRolesFromContext(c context.Context) []string {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return nil
	}

	rolesClaim, exists := claims["roles"]
	if !exists {
		return nil
	}

	rolesSlice, ok := rolesClaim.([]any)
	if !ok {
		// Claims set by our own middleware keep the original []string.
		if roles, ok := rolesClaim.([]string); ok {
			return roles
		}
		return nil
	}

	roles := make([]string, 0, len(rolesSlice))
	for _, r := range rolesSlice {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}

package models

import "github.com/golang-jwt/jwt/v5"

// AdminRole is the role claim granted to callers who proved knowledge of the
// admin access key.
const AdminRole = "admin"

// AdminClaims is the JWT payload for admin session tokens.
type AdminClaims struct {
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims carry the admin role.
func (c *AdminClaims) IsAdmin() bool {
	return c != nil && c.Role == AdminRole
}

package models

import "github.com/golang-jwt/jwt/v5"

// Roles accepted by the admin API.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// AdminClaims are the JWT claims carried by registry maintenance requests.
type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// CanWriteRegistry reports whether the token may modify lien and incident data.
func (c *AdminClaims) CanWriteRegistry() bool {
	return c.Role == RoleAdmin || c.Role == RoleOperator
}

// Package middleware provides HTTP middleware for the risk API.
package middleware

import (
	"log"
	"strings"

	"depositguard/internal/utils"
	"depositguard/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates admin bearer tokens and stores the claims on the
// request context.
type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// Handler checks for:
// - Presence of Authorization header with Bearer token
// - Valid HS256 signature, issuer and expiry
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return response.Unauthorized(c, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Unauthorized(c, "invalid authorization format")
	}

	claims, err := utils.ParseAdminToken(strings.TrimPrefix(authHeader, "Bearer "), m.secret)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return response.Unauthorized(c, "invalid token")
	}

	c.Locals(utils.ClaimsKey, claims)
	return c.Next()
}

// RegistryWriter allows only roles that may modify lien and incident data.
func RegistryWriter(c *fiber.Ctx) error {
	claims, err := utils.GetAdminClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	if !claims.CanWriteRegistry() {
		log.Printf("Access denied: subject %s has role %q", claims.Subject, claims.Role)
		return response.Forbidden(c)
	}
	return c.Next()
}

package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"depositguard/internal/models"
	"depositguard/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	auth := NewAuthMiddleware(secret)
	app.Get("/admin", auth.Handler, RegistryWriter, func(c *fiber.Ctx) error {
		claims, err := utils.GetAdminClaims(c)
		if err != nil {
			return err
		}
		return c.SendString(claims.Subject)
	})
	return app
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.GenerateAdminToken("ops", role, secret, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"bad token", "Bearer nope", fiber.StatusUnauthorized},
		{"viewer role", "Bearer " + token(t, "viewer"), fiber.StatusForbidden},
		{"operator", "Bearer " + token(t, models.RoleOperator), fiber.StatusOK},
		{"admin", "Bearer " + token(t, models.RoleAdmin), fiber.StatusOK},
	}

	app := newApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRegistryWriterWithoutClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/", RegistryWriter, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

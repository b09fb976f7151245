package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"depositguard/internal/config"
	"depositguard/internal/models"
	"depositguard/internal/services/district"
	"depositguard/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedAssessor struct{}

func (fixedAssessor) Assess(context.Context, string, int64) (*models.RiskAssessment, error) {
	return &models.RiskAssessment{TotalScore: 12}, nil
}

type memoryRegistry struct {
	liens []*models.LienRecord
}

func (r *memoryRegistry) FindLien(context.Context, string, string) (*models.LienRecord, error) {
	return nil, nil
}

func (r *memoryRegistry) UpsertLien(_ context.Context, rec *models.LienRecord) error {
	r.liens = append(r.liens, rec)
	return nil
}

func (r *memoryRegistry) CountIncidents(context.Context, string, string, string) (int64, error) {
	return 0, nil
}

func (r *memoryRegistry) CreateIncident(context.Context, *models.IncidentRecord) error {
	return nil
}

func newApp(registry *memoryRegistry) *fiber.App {
	deps := Dependencies{
		Engine:    fixedAssessor{},
		Resolver:  district.NewResolver(config.Districts()),
		JWTSecret: "secret",
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "depositguard_assessments_total 1\n")
		}),
	}
	if registry != nil {
		deps.Registry = registry
	}
	app := fiber.New()
	SetupRoutes(app, deps)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestPublicRoutes(t *testing.T) {
	app := newApp(nil)

	assert.Equal(t, fiber.StatusOK, do(t, app, "GET", "/health", "", "").StatusCode)
	assert.Equal(t, fiber.StatusOK, do(t, app, "GET", "/api/districts", "", "").StatusCode)
	assert.Equal(t, fiber.StatusOK, do(t, app, "POST", "/api/risk/assess", `{"address":"서울 중구","deposit":100}`, "").StatusCode)

	resp := do(t, app, "GET", "/metrics", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "depositguard_assessments_total")
}

func TestAdminRoutesDisabledWithoutRegistry(t *testing.T) {
	app := newApp(nil)
	assert.Equal(t, fiber.StatusNotFound, do(t, app, "PUT", "/api/admin/liens", `{}`, "").StatusCode)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	registry := &memoryRegistry{}
	app := newApp(registry)
	body := `{"address":"서울 강남구 역삼동 1","senior_lien_ratio_pct":70}`

	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "PUT", "/api/admin/liens", body, "").StatusCode)

	viewer, err := utils.GenerateAdminToken("v", "viewer", "secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, do(t, app, "PUT", "/api/admin/liens", body, viewer).StatusCode)

	admin, err := utils.GenerateAdminToken("a", models.RoleAdmin, "secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, do(t, app, "PUT", "/api/admin/liens", body, admin).StatusCode)
	require.Len(t, registry.liens, 1)
	assert.Equal(t, "강남구", registry.liens[0].District)

	assert.Equal(t, fiber.StatusCreated, do(t, app, "POST", "/api/admin/incidents", `{"address":"서울 강남구 역삼동"}`, admin).StatusCode)
}

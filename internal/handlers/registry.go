package handlers

import (
	"context"
	"log"
	"time"

	apperrors "depositguard/internal/errors"
	"depositguard/internal/models"
	"depositguard/internal/repositories"
	"depositguard/internal/services/district"
	"depositguard/internal/utils/cache"
	"depositguard/internal/utils/response"
	"depositguard/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

// Invalidator drops cached ancillary entries.
type Invalidator interface {
	Delete(ctx context.Context, keys ...string) error
}

// RegistryHandler maintains lien and incident records.
type RegistryHandler struct {
	repo      repositories.LienRepository
	resolver  *district.Resolver
	cache     Invalidator
	validator *validation.Validator
	now       func() time.Time
}

// NewRegistryHandler builds the handler. cache may be nil.
func NewRegistryHandler(repo repositories.LienRepository, resolver *district.Resolver, cache Invalidator) *RegistryHandler {
	return &RegistryHandler{
		repo:      repo,
		resolver:  resolver,
		cache:     cache,
		validator: validation.New(),
		now:       time.Now,
	}
}

type LienRequest struct {
	Address            string `json:"address" validate:"required,max=200"`
	ArrearsAmount      int64  `json:"arrears_amount" validate:"gte=0"`
	SeniorLienRatioPct int    `json:"senior_lien_ratio_pct" validate:"gte=0,lte=100"`
	ArrearsCategory    string `json:"arrears_category" validate:"max=50"`
}

type IncidentRequest struct {
	Address     string     `json:"address" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=500"`
	ReportedAt  *time.Time `json:"reported_at"`
}

func (h *RegistryHandler) UpsertLien(c *fiber.Ctx) error {
	var req LienRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Domain(c, fiber.StatusBadRequest, apperrors.ErrInvalidRequest)
	}
	if errs := h.validator.Struct(req); errs != nil {
		return response.Invalid(c, apperrors.ErrInvalidRequest, errs)
	}

	addr := district.NormalizeAddress(req.Address)
	rec := &models.LienRecord{
		District:           h.resolver.Resolve(addr),
		Address:            addr,
		ArrearsAmount:      req.ArrearsAmount,
		SeniorLienRatioPct: req.SeniorLienRatioPct,
	}
	if req.ArrearsAmount > 0 {
		rec.ArrearsCategory = req.ArrearsCategory
	}

	if err := h.repo.UpsertLien(c.UserContext(), rec); err != nil {
		log.Printf("lien upsert failed district=%s: %v", rec.District, err)
		return response.Domain(c, fiber.StatusInternalServerError, apperrors.ErrRegistryWrite)
	}
	h.invalidate(c.UserContext(), cache.AddressKey(cache.EntityLien, addr))

	return response.Success(c, fiber.StatusOK, rec)
}

func (h *RegistryHandler) CreateIncident(c *fiber.Ctx) error {
	var req IncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Domain(c, fiber.StatusBadRequest, apperrors.ErrInvalidRequest)
	}
	if errs := h.validator.Struct(req); errs != nil {
		return response.Invalid(c, apperrors.ErrInvalidRequest, errs)
	}

	addr := district.NormalizeAddress(req.Address)
	rec := &models.IncidentRecord{
		District:     h.resolver.Resolve(addr),
		Neighborhood: district.Neighborhood(addr),
		Address:      addr,
		Description:  req.Description,
		ReportedAt:   h.now(),
	}
	if req.ReportedAt != nil {
		rec.ReportedAt = *req.ReportedAt
	}

	if err := h.repo.CreateIncident(c.UserContext(), rec); err != nil {
		log.Printf("incident create failed district=%s: %v", rec.District, err)
		return response.Domain(c, fiber.StatusInternalServerError, apperrors.ErrRegistryWrite)
	}
	h.invalidate(c.UserContext(), cache.IncidentKey(rec.District, rec.Neighborhood, addr))

	return response.Success(c, fiber.StatusCreated, rec)
}

func (h *RegistryHandler) invalidate(ctx context.Context, key string) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(ctx, key); err != nil {
		log.Printf("cache invalidation failed key=%s: %v", key, err)
	}
}

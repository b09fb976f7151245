package handlers

import (
	"context"
	"errors"
	"log"

	apperrors "depositguard/internal/errors"
	"depositguard/internal/models"
	"depositguard/internal/services/district"
	"depositguard/internal/services/risk"
	"depositguard/internal/utils/response"
	"depositguard/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Assessor scores a lease deposit at an address.
type Assessor interface {
	Assess(ctx context.Context, address string, deposit int64) (*models.RiskAssessment, error)
}

type RiskHandler struct {
	assessor  Assessor
	resolver  *district.Resolver
	validator *validation.Validator
}

func NewRiskHandler(assessor Assessor, resolver *district.Resolver) *RiskHandler {
	return &RiskHandler{
		assessor:  assessor,
		resolver:  resolver,
		validator: validation.New(),
	}
}

// AssessRequest carries the deposit in 10,000-won units.
type AssessRequest struct {
	Address string `json:"address" validate:"max=200"`
	Deposit int64  `json:"deposit" validate:"gt=0,lte=10000000000"`
}

type AssessResponse struct {
	RequestID  string                 `json:"request_id"`
	Assessment *models.RiskAssessment `json:"assessment"`
}

func (h *RiskHandler) Assess(c *fiber.Ctx) error {
	var req AssessRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Domain(c, fiber.StatusBadRequest, apperrors.ErrInvalidRequest)
	}

	if errs := h.validator.Struct(req); errs != nil {
		code := apperrors.ErrInvalidRequest
		if validation.HasField(errs, "deposit") {
			code = apperrors.ErrInvalidDeposit
		}
		return response.Invalid(c, code, errs)
	}

	requestID := uuid.NewString()
	assessment, err := h.assessor.Assess(c.UserContext(), req.Address, req.Deposit)
	if err != nil {
		if errors.Is(err, risk.ErrInvalidDeposit) {
			return response.Domain(c, fiber.StatusBadRequest, apperrors.ErrInvalidDeposit)
		}
		log.Printf("assessment %s failed: %v", requestID, err)
		return response.Domain(c, fiber.StatusInternalServerError, apperrors.ErrAssessmentFailed)
	}

	return response.Success(c, fiber.StatusOK, AssessResponse{
		RequestID:  requestID,
		Assessment: assessment,
	})
}

func (h *RiskHandler) Districts(c *fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, fiber.Map{
		"districts": h.resolver.Districts(),
	})
}

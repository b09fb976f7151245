package response

import (
	apperrors "depositguard/internal/errors"
	"depositguard/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Domain writes err with its stable code.
func Domain(c *fiber.Ctx, status int, err *apperrors.DomainError) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Message,
		"code":  err.Code,
	})
}

// Invalid writes a 400 carrying per-field validation failures.
func Invalid(c *fiber.Ctx, err *apperrors.DomainError, fields []validation.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  err.Message,
		"code":   err.Code,
		"fields": fields,
	})
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Domain(c, fiber.StatusUnauthorized, apperrors.ErrUnauthorized.WithMessage(message))
}

func TooManyRequests(c *fiber.Ctx) error {
	return Domain(c, fiber.StatusTooManyRequests, apperrors.ErrRateLimited)
}

func Forbidden(c *fiber.Ctx) error {
	return Domain(c, fiber.StatusForbidden, apperrors.ErrForbidden)
}

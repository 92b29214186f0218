package handler

import (
	"errors"
	"strconv"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"

	"github.com/gofiber/fiber/v2"
)

// principalFrom reads the request principal set by the auth middleware.
func principalFrom(c *fiber.Ctx) model.Principal {
	if p, ok := c.Locals("principal").(model.Principal); ok {
		return p
	}
	return model.Principal{}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// statusFromErr maps the shared error taxonomy onto HTTP status codes.
// Existence is always checked before authorization in the services, so 404
// and 403 stay distinguishable here.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperr.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, apperr.ErrUnsupportedFormat),
		errors.Is(err, apperr.ErrInvalidPrice),
		errors.Is(err, apperr.ErrInvalidQuantity),
		errors.Is(err, apperr.ErrInvalidDate),
		errors.Is(err, apperr.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusFromErr(err)).JSON(fiber.Map{"error": err.Error()})
}

package handlers

import (
	"errors"

	applog "jobdesk/internal/log"
	"jobdesk/internal/services"

	"github.com/gofiber/fiber/v2"
)

// fail translates a service error into a status + JSON body. This is the
// only place statuses are assigned; everything below handlers returns
// plain domain errors.
func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrBadCreds),
		errors.Is(err, services.ErrTokenExpired),
		errors.Is(err, services.ErrTokenInvalid):
		applog.Security(c, action, map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		applog.Security(c, action, map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrOrgExists),
		errors.Is(err, services.ErrNoOrganization),
		errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, services.ErrEmptyPassword):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

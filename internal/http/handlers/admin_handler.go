package handlers

import (
	"database/sql"
	"errors"

	"jobdesk/internal/domain"
	applog "jobdesk/internal/log"
	"jobdesk/internal/repos"
	"jobdesk/internal/services"
	"jobdesk/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Users *repos.UserRepo
}

// GET /admin/users lists users (excluding admins).
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Users.ListNonAdmin()
	if err != nil {
		return fail(c, "admin.users.list.fail", err)
	}
	out := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return c.JSON(out)
}

// POST /admin/users/:id/verify flips the verification flag. The toggle is
// deliberately bidirectional: a second call undoes the first.
func (h *AdminHandler) ToggleVerified(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	v, err := h.Users.ToggleVerified(id)
	if errors.Is(err, sql.ErrNoRows) {
		return fail(c, "admin.users.verify.fail", services.ErrNotFound)
	}
	if err != nil {
		return fail(c, "admin.users.verify.fail", err)
	}
	applog.Audit(c, "admin.users.verify", map[string]any{"user_id": id, "verified": v})
	return c.JSON(fiber.Map{"id": id, "verified": v})
}

// DELETE /admin/users/:id removes a user and all dependent records.
// Admin accounts are off limits, the caller's own included; the user
// list hides them for the same reason.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	target, err := h.Users.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return fail(c, "admin.users.delete.fail", services.ErrNotFound)
	}
	if err != nil {
		return fail(c, "admin.users.delete.fail", err)
	}
	if target.Role == domain.RoleAdmin {
		applog.Security(c, "admin.users.delete.denied", map[string]any{"user_id": id})
		return fail(c, "admin.users.delete.fail", services.ErrForbidden)
	}
	if err := h.Users.DeleteCascade(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, "admin.users.delete.fail", services.ErrNotFound)
		}
		return fail(c, "admin.users.delete.fail", err)
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

package handlers

import (
	"strings"
	"time"

	"jobdesk/internal/domain"
	applog "jobdesk/internal/log"
	"jobdesk/internal/services"
	"jobdesk/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileReq struct {
	Name       string `json:"name"`
	Education  string `json:"education"`
	ResumeLink string `json:"resumeLink"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name is required")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest(c, "invalid email")
	}
	if !validate.Password(req.Password) {
		return badRequest(c, "password must be 8-72 characters")
	}
	// Clients spell roles freely ("jobSeeker", "employer"); normalize
	// before checking against the enum.
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = domain.RoleJobseeker
	}
	if !domain.ValidRole(role) {
		return badRequest(c, "invalid role")
	}

	u, err := h.Auth.Register(name, email, req.Password, role)
	if err != nil {
		return fail(c, "auth.register.fail", err)
	}
	applog.Audit(c, "auth.register", map[string]any{"email": email, "role": role})
	return c.Status(fiber.StatusCreated).JSON(u.Public())
}

// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	email, ok := validate.Email(req.Email)
	if !ok || !validate.Password(req.Password) {
		// Same response as a credential mismatch; format failures must not
		// be distinguishable either.
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": services.ErrBadCreds.Error()})
	}

	u, token, err := h.Auth.Login(email, req.Password)
	if err != nil {
		return fail(c, "auth.login.fail", err)
	}

	// Alternate web flow: same token, HttpOnly cookie transport.
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false, // set true behind HTTPS
	})
	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.JSON(fiber.Map{"token": token, "user": u.Public()})
}

// POST /auth/logout clears the cookie transport. Header-borne tokens just
// expire; there is no server-side revocation.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"ok": true})
}

// GET /auth/user
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c).Public())
}

// PUT /auth/user
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	u := currentUser(c)
	var req profileReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name is required")
	}
	updated, err := h.Auth.UpdateProfile(u.ID, name, req.Education, req.ResumeLink)
	if err != nil {
		return fail(c, "auth.profile.update.fail", err)
	}
	applog.Audit(c, "auth.profile.update", nil)
	return c.JSON(updated.Public())
}

// DELETE /auth/user
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	u := currentUser(c)
	if err := h.Auth.DeleteAccount(u.ID); err != nil {
		return fail(c, "auth.account.delete.fail", err)
	}
	applog.Audit(c, "auth.account.delete", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{"ok": true})
}

package handlers

import (
	"errors"
	"strings"

	"jobdesk/internal/domain"
	applog "jobdesk/internal/log"
	"jobdesk/internal/services"

	"github.com/gofiber/fiber/v2"
)

// bearerToken pulls the credential from the Authorization header, falling
// back to the HttpOnly cookie the web flow sets.
func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return c.Cookies("token")
}

// RequireAuth verifies the bearer token and attaches the current user to
// the request context. The user is re-fetched from the store so role
// changes and deletions after issuance take effect immediately.
func RequireAuth(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := bearerToken(c)
		if tok == "" {
			applog.Security(c, "auth.missing", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}
		claims, err := auth.Tokens.Verify(tok)
		if err != nil {
			return fail(c, "auth.token.invalid", err)
		}
		u, err := auth.UserByID(claims.UID)
		if errors.Is(err, services.ErrNotFound) {
			// Subject deleted after issuance; the token no longer authenticates.
			applog.Security(c, "auth.user.gone", map[string]any{"uid": claims.UID})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": services.ErrTokenInvalid.Error()})
		}
		if err != nil {
			return fail(c, "auth.user.fetch.fail", err)
		}
		c.Locals("user", u)
		c.Locals("uid", u.ID)
		return c.Next()
	}
}

// RequireRoles gates a route on the caller's current role. Must run after
// RequireAuth. Insufficient role is 403, never 401.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := currentUser(c)
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}
		for _, r := range roles {
			if u.Role == r {
				return c.Next()
			}
		}
		applog.Security(c, "access.denied.role", map[string]any{"role": u.Role})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": services.ErrForbidden.Error()})
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

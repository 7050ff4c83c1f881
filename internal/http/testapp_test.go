package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"jobdesk/internal/config"
	"jobdesk/internal/domain"
	"jobdesk/internal/http/handlers"
	"jobdesk/internal/repos"
)

const adminEmail = "admin@jobdesk.test"
const adminPassword = "ChangeMe!123"

// appWithTokens bundles a wired app with tokens tests commonly need.
type appWithTokens struct {
	App      *fiber.App
	Employer string
}

// newTestApp wires the full route table against an in-memory database.
// Rate limiters are left out; throttling has its own tests elsewhere.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{DBDSN: ":memory:", JWTSecret: "test-secret", TokenTTLHours: 72}
	deps := handlers.NewDeps(db, cfg)
	authH := deps.AuthHandler

	app := fiber.New()
	app.Use(requestid.New())

	requireAuth := handlers.RequireAuth(deps.Auth)
	employerOnly := handlers.RequireRoles(domain.RoleEmployer)
	jobseekerOnly := handlers.RequireRoles(domain.RoleJobseeker)
	adminOnly := handlers.RequireRoles(domain.RoleAdmin)
	empOrAdmin := handlers.RequireRoles(domain.RoleEmployer, domain.RoleAdmin)

	app.Post("/auth/register", authH.Register)
	app.Post("/auth/login", authH.Login)
	app.Post("/auth/logout", authH.Logout)
	app.Get("/auth/user", requireAuth, authH.Me)
	app.Put("/auth/user", requireAuth, authH.UpdateProfile)
	app.Delete("/auth/user", requireAuth, authH.DeleteAccount)

	app.Post("/org/create", requireAuth, employerOnly, deps.OrgHandler.Create)
	app.Get("/org", deps.OrgHandler.List)
	app.Get("/org/:id", deps.OrgHandler.Get)
	app.Put("/org/:id", requireAuth, empOrAdmin, deps.OrgHandler.Update)
	app.Delete("/org/:id", requireAuth, empOrAdmin, deps.OrgHandler.Delete)

	app.Post("/jobs", requireAuth, employerOnly, deps.JobHandler.Create)
	app.Get("/jobs", deps.JobHandler.List)
	app.Get("/jobs/:id", deps.JobHandler.Get)
	app.Put("/jobs/:id", requireAuth, empOrAdmin, deps.JobHandler.Update)
	app.Delete("/jobs/:id", requireAuth, empOrAdmin, deps.JobHandler.Delete)

	app.Post("/jobs/:id/apply", requireAuth, jobseekerOnly, deps.ApplicationHandler.Apply)
	app.Get("/applications", requireAuth, jobseekerOnly, deps.ApplicationHandler.ListMine)
	app.Get("/jobs/:id/applications", requireAuth, empOrAdmin, deps.ApplicationHandler.ListForJob)
	app.Put("/applications/:id/status", requireAuth, empOrAdmin, deps.ApplicationHandler.SetStatus)

	app.Get("/categories", deps.CategoryHandler.List)
	app.Get("/categories/:id", deps.CategoryHandler.Get)
	app.Post("/categories", requireAuth, adminOnly, deps.CategoryHandler.Create)
	app.Put("/categories/:id", requireAuth, adminOnly, deps.CategoryHandler.Update)
	app.Delete("/categories/:id", requireAuth, adminOnly, deps.CategoryHandler.Delete)

	admin := app.Group("/admin", requireAuth, adminOnly)
	admin.Get("/users", deps.AdminHandler.ListUsers)
	admin.Post("/users/:id/verify", deps.AdminHandler.ToggleVerified)
	admin.Delete("/users/:id", deps.AdminHandler.DeleteUser)

	return app
}

// doJSON issues a request with an optional bearer token and decodes the
// JSON response into out (pass nil to skip decoding).
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any, out any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return resp
}

// doJSONWithCookie issues a bare request carrying the token cookie only.
func doJSONWithCookie(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func register(t *testing.T, app *fiber.App, name, email, role string) map[string]any {
	t.Helper()
	var u map[string]any
	resp := doJSON(t, app, "POST", "/auth/register", "", map[string]any{
		"name": name, "email": email, "password": "secret123", "role": role,
	}, &u)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d", email, resp.StatusCode)
	}
	return u
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	var body struct {
		Token string `json:"token"`
	}
	resp := doJSON(t, app, "POST", "/auth/login", "", map[string]any{
		"email": email, "password": password,
	}, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, resp.StatusCode)
	}
	if body.Token == "" {
		t.Fatalf("login %s: empty token", email)
	}
	return body.Token
}

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"jobdesk/internal/config"
	"jobdesk/internal/domain"
	"jobdesk/internal/http/handlers"
	"jobdesk/internal/repos"
)

func TestRegisterLoginFlow(t *testing.T) {
	app := newTestApp(t)

	u := register(t, app, "A", "a@x.com", "JOBSEEKER")
	if _, ok := u["password"]; ok {
		t.Fatal("response must not carry a password field")
	}
	if _, ok := u["Hash"]; ok {
		t.Fatal("response must not carry the digest")
	}
	if u["verified"] != false {
		t.Fatalf("new account should be unverified: %v", u)
	}

	// duplicate email → 400
	resp := doJSON(t, app, "POST", "/auth/register", "", map[string]any{
		"name": "B", "email": "a@x.com", "password": "secret456", "role": "EMPLOYER",
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register: want 400, got %d", resp.StatusCode)
	}

	// wrong password → 401
	resp = doJSON(t, app, "POST", "/auth/login", "", map[string]any{
		"email": "a@x.com", "password": "wrongpass1",
	}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: want 401, got %d", resp.StatusCode)
	}

	tok := login(t, app, "a@x.com", "secret123")

	var me map[string]any
	resp = doJSON(t, app, "GET", "/auth/user", tok, nil, &me)
	if resp.StatusCode != http.StatusOK || me["email"] != "a@x.com" {
		t.Fatalf("me: status %d body %v", resp.StatusCode, me)
	}
}

// Role spelling is client-chosen; mixed case must be accepted and
// normalized to the canonical enum.
func TestRegisterAcceptsMixedCaseRole(t *testing.T) {
	app := newTestApp(t)

	var u map[string]any
	resp := doJSON(t, app, "POST", "/auth/register", "", map[string]any{
		"name": "A", "email": "a@x.com", "password": "secret123", "role": "jobSeeker",
	}, &u)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("mixed-case role: want 201, got %d", resp.StatusCode)
	}
	if u["role"] != "JOBSEEKER" {
		t.Fatalf("role not normalized: %v", u["role"])
	}

	resp = doJSON(t, app, "POST", "/auth/register", "", map[string]any{
		"name": "B", "email": "b@x.com", "password": "secret123", "role": "Employer",
	}, &u)
	if resp.StatusCode != http.StatusCreated || u["role"] != "EMPLOYER" {
		t.Fatalf("employer spelling: status %d role %v", resp.StatusCode, u["role"])
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []map[string]any{
		{"name": "", "email": "a@x.com", "password": "secret123"},
		{"name": "A", "email": "not-an-email", "password": "secret123"},
		{"name": "A", "email": "a@x.com", "password": "short"},
		{"name": "A", "email": "a@x.com", "password": "secret123", "role": "ADMIN"},
		{"name": "A", "email": "a@x.com", "password": "secret123", "role": "WIZARD"},
	}
	for i, body := range cases {
		resp := doJSON(t, app, "POST", "/auth/register", "", body, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: want 400, got %d", i, resp.StatusCode)
		}
	}
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/auth/user", "/applications", "/admin/users"} {
		resp := doJSON(t, app, "GET", path, "", nil, nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s without token: want 401, got %d", path, resp.StatusCode)
		}
	}

	resp := doJSON(t, app, "GET", "/auth/user", "garbage.token.here", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: want 401, got %d", resp.StatusCode)
	}
}

func TestProfileUpdateAndDelete(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "A", "a@x.com", "JOBSEEKER")
	tok := login(t, app, "a@x.com", "secret123")

	var updated map[string]any
	resp := doJSON(t, app, "PUT", "/auth/user", tok, map[string]any{
		"name": "Alice", "education": "BSc", "resumeLink": "https://cv.test/alice",
	}, &updated)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: status %d", resp.StatusCode)
	}
	if updated["name"] != "Alice" || updated["education"] != "BSc" {
		t.Fatalf("update not reflected: %v", updated)
	}

	resp = doJSON(t, app, "DELETE", "/auth/user", tok, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}

	// the token subject is gone; the same token no longer authenticates
	resp = doJSON(t, app, "GET", "/auth/user", tok, nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("token after delete: want 401, got %d", resp.StatusCode)
	}
}

// A store failure during the identity re-fetch is an internal error; only
// a genuinely missing subject demotes a valid token to 401.
func TestAuthStoreFailureIsNot401(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{DBDSN: ":memory:", JWTSecret: "test-secret", TokenTTLHours: 72}
	deps := handlers.NewDeps(db, cfg)

	u, err := deps.Auth.Register("A", "a@x.com", "secret123", domain.RoleJobseeker)
	if err != nil {
		t.Fatal(err)
	}
	tok, err := deps.Auth.Tokens.Issue(u)
	if err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	app.Get("/auth/user", handlers.RequireAuth(deps.Auth), deps.AuthHandler.Me)

	if err := db.Close(); err != nil {
		t.Fatal(err)
	}
	resp := doJSON(t, app, "GET", "/auth/user", tok, nil, nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("store failure: want 500, got %d", resp.StatusCode)
	}
}

func TestLoginSetsCookieTransport(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "A", "a@x.com", "JOBSEEKER")

	resp := doJSON(t, app, "POST", "/auth/login", "", map[string]any{
		"email": "a@x.com", "password": "secret123",
	}, nil)
	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			cookie = c.Value
			if !c.HttpOnly {
				t.Fatal("token cookie must be HttpOnly")
			}
		}
	}
	if cookie == "" {
		t.Fatal("token cookie not set")
	}

	// cookie works as the alternate transport
	req := doJSONWithCookie(t, app, "GET", "/auth/user", cookie)
	if req.StatusCode != http.StatusOK {
		t.Fatalf("cookie auth: want 200, got %d", req.StatusCode)
	}
}

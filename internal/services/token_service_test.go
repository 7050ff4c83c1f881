package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobdesk/internal/domain"
	"jobdesk/internal/services"
)

var signingKey = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	ts := services.NewTokenService(signingKey, 72)
	u := &domain.User{ID: "u-1", Email: "a@x.com", Role: domain.RoleJobseeker}

	tok, err := ts.Issue(u)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok == "" {
		t.Fatal("empty token")
	}

	claims, err := ts.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UID != "u-1" || claims.Role != domain.RoleJobseeker {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.Subject != "u-1" {
		t.Fatalf("subject mismatch: %s", claims.Subject)
	}
}

func TestTokenExpired(t *testing.T) {
	ts := services.NewTokenService(signingKey, 72)

	// Sign a token that expired an hour ago with the same key and issuer.
	now := time.Now()
	claims := &services.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "jobdesk",
			Subject:   "u-1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
		},
		UID:  "u-1",
		Role: domain.RoleJobseeker,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ts.Verify(tok); !errors.Is(err, services.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestTokenWrongKeyOrGarbage(t *testing.T) {
	ts := services.NewTokenService(signingKey, 72)
	other := services.NewTokenService([]byte("other-secret"), 72)

	tok, err := other.Issue(&domain.User{ID: "u-1", Role: domain.RoleEmployer})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ts.Verify(tok); !errors.Is(err, services.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid for wrong key, got %v", err)
	}
	if _, err := ts.Verify("not.a.token"); !errors.Is(err, services.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid for garbage, got %v", err)
	}
}

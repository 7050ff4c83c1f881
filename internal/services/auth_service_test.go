package services_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"jobdesk/internal/domain"
	"jobdesk/internal/repos"
	"jobdesk/internal/services"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return &services.AuthService{
		Users:  repos.NewUserRepo(db),
		Tokens: services.NewTokenService(signingKey, 72),
	}
}

func TestHashPassword(t *testing.T) {
	h, err := services.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(h, "secret123") || !strings.HasPrefix(h, "$2") {
		t.Fatalf("unexpected hash: %s", h)
	}
	if !services.ComparePassword("secret123", h) {
		t.Fatal("compare(p, hash(p)) should be true")
	}
	if services.ComparePassword("secret124", h) {
		t.Fatal("compare(q, hash(p)) should be false")
	}

	if _, err := services.HashPassword(""); !errors.Is(err, services.ErrEmptyPassword) {
		t.Fatalf("want ErrEmptyPassword, got %v", err)
	}
}

func TestRegisterAndDuplicate(t *testing.T) {
	svc := newAuthService(t)

	u, err := svc.Register("A", "a@x.com", "secret123", domain.RoleJobseeker)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == "" || u.Verified {
		t.Fatalf("new user should have id and be unverified: %+v", u)
	}

	// Same email, differently cased: the index is case-insensitive.
	if _, err := svc.Register("B", "A@X.COM", "secret456", domain.RoleEmployer); !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

// Two racing registrations with the same email: exactly one wins, the
// loser gets the conflict error from the unique index, never a generic
// store failure.
func TestRegisterConcurrentDuplicate(t *testing.T) {
	svc := newAuthService(t)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register("A", "race@x.com", "secret123", domain.RoleJobseeker)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, services.ErrEmailTaken):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 || conflicted != 1 {
		t.Fatalf("want 1 success and 1 conflict, got %d/%d", won, conflicted)
	}
}

func TestLoginUnifiedError(t *testing.T) {
	svc := newAuthService(t)
	if _, err := svc.Register("A", "a@x.com", "secret123", domain.RoleJobseeker); err != nil {
		t.Fatal(err)
	}

	// wrong password and unknown email must be the same error
	if _, _, err := svc.Login("a@x.com", "wrongpass1"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("wrong password: want ErrBadCreds, got %v", err)
	}
	if _, _, err := svc.Login("nobody@x.com", "secret123"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("unknown email: want ErrBadCreds, got %v", err)
	}

	u, tok, err := svc.Login("a@x.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok == "" {
		t.Fatal("expected non-empty token")
	}
	claims, err := svc.Tokens.Verify(tok)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.UID != u.ID || claims.Role != u.Role {
		t.Fatalf("claims mismatch: %+v vs %+v", claims, u)
	}
}

func TestDeleteAccount(t *testing.T) {
	svc := newAuthService(t)
	u, err := svc.Register("A", "a@x.com", "secret123", domain.RoleJobseeker)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteAccount(u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.UserByID(u.ID); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
	if err := svc.DeleteAccount(u.ID); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
}

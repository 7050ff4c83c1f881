package services

import (
	"database/sql"
	"errors"

	"jobdesk/internal/domain"
	"jobdesk/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *TokenService
}

// HashPassword generates a salted bcrypt digest. Empty plaintext is
// rejected here so a misbehaving caller can never store a digest of "".
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(h), err
}

func ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates a new account. The existence pre-check is an
// optimization only; the unique index on email is the authority, so a
// concurrent duplicate loses with ErrEmailTaken either way.
func (s *AuthService) Register(name, email, password, role string) (*domain.User, error) {
	if _, err := s.Users.ByEmail(email); err == nil {
		return nil, ErrEmailTaken
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Hash:  hash,
		Role:  role,
	}
	if err := s.Users.Create(u); err != nil {
		if repos.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, "", ErrBadCreds
	}
	if !ComparePassword(password, u.Hash) {
		return nil, "", ErrBadCreds
	}
	token, err := s.Tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) UserByID(id string) (*domain.User, error) {
	u, err := s.Users.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *AuthService) UpdateProfile(id, name, education, resumeLink string) (*domain.User, error) {
	if err := s.Users.UpdateProfile(id, name, education, resumeLink); err != nil {
		return nil, err
	}
	return s.UserByID(id)
}

func (s *AuthService) DeleteAccount(id string) error {
	err := s.Users.DeleteCascade(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

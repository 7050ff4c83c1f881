package services

import (
	"errors"
	"fmt"
	"time"

	"jobdesk/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session payload carried by a bearer token: the user's
// opaque id (subject) and the role held at issuance. Authorization
// re-checks the role against the store, so a stale role here only costs
// an extra read, never grants stale access.
type Claims struct {
	jwt.RegisteredClaims
	UID  string `json:"uid"`
	Role string `json:"role"`
}

type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	issuer     string
}

func NewTokenService(signingKey []byte, ttlHours int) *TokenService {
	return &TokenService{
		signingKey: signingKey,
		ttl:        time.Duration(ttlHours) * time.Hour,
		issuer:     "jobdesk",
	}
}

// Issue signs a time-bounded HS256 token for the user. Expiry is fixed at
// issuance; there is no refresh mechanism.
func (ts *TokenService) Issue(u *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
		UID:  u.ID,
		Role: u.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.signingKey)
}

// Verify checks signature and expiry and returns the embedded claims.
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, jwt.WithIssuer(ts.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

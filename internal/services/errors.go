package services

import "errors"

// Domain errors. Handlers translate these to HTTP statuses exactly once,
// at the boundary; nothing below the handlers knows about status codes.
var (
	// ErrBadCreds covers both unknown email and wrong password so the
	// response never reveals which one it was.
	ErrBadCreds = errors.New("invalid email or password")

	ErrEmailTaken     = errors.New("email already registered")
	ErrOrgExists      = errors.New("organization already registered for this account")
	ErrNoOrganization = errors.New("no organization registered for this account")
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")

	ErrEmptyPassword = errors.New("password must not be empty")
)

package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers malformed registration input. Wrap it with
	// detail: fmt.Errorf("%w: email is required", ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken is returned when registering an email that exists.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials is returned on login failure. It deliberately
	// does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken means the token failed signature or shape checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthenticated is the uniform authentication failure. Callers
	// cannot tell a bad signature from a revoked token from an unknown
	// user.
	ErrUnauthenticated = errors.New("unauthenticated")
)

package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	// ErrTokenSubjectMismatch is returned when a valid token belongs to another user.
	ErrTokenSubjectMismatch = errors.New("token does not belong to this user")
)

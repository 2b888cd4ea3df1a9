package auth

import "errors"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrTokenRevoked = errors.New("token has been revoked")
	ErrMissingClaim = errors.New("required claim is missing or invalid")
)

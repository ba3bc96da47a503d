package identity

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailExists     = errors.New("User already exists with this email")
	ErrInvalidEmail    = errors.New("Invalid credentials (email)")
	ErrInvalidPassword = errors.New("Invalid credentials (password)")
	ErrInvalidToken    = errors.New("Token is invalid or expired")
)

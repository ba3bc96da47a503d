package users

import "errors"

var (
	ErrUserNotFound = errors.New("User not found.")
	ErrEmailExists  = errors.New("User already exists with this email")
)

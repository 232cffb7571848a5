package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")

	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// Service-level errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

package user

import "context"

// Service defines business logic for registration and login.
type Service interface {
	// Register validates input, rejects duplicate email/username, hashes
	// the password and issues a token for the new user.
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Login authenticates by email + password and issues a token.
	// Returns ErrInvalidCredentials for both unknown email and wrong
	// password (never reveals which).
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
}

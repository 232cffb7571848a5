package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the user domain.
type Repository interface {
	// Create inserts a new user.
	// Errors: ErrEmailAlreadyExists / ErrUsernameAlreadyExists on a
	// unique-constraint violation (the storage-level backstop for the
	// eager existence checks in the service).
	Create(ctx context.Context, u *User) error

	// FindByID retrieves a user by UUID.
	// Returns ErrUserNotFound if not exists.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail retrieves a user by email (exact, case-sensitive).
	// Returns ErrUserNotFound if not exists.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if an email is taken.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername checks if a username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookworm-backend/internal/domains/user"
	"bookworm-backend/pkg/jwt"
)

type userService struct {
	repo   user.Repository
	tokens *jwt.Manager
}

// NewUserService creates the user service. Token issuance is delegated
// to the injected jwt.Manager so the service never touches the secret.
func NewUserService(repo user.Repository, tokens *jwt.Manager) user.Service {
	return &userService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates a new user and logs them in.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Fast-path conflict checks with specific messages. The UNIQUE
	// constraints in the users table catch the concurrent-registration
	// race the pre-checks cannot.
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	exists, err = s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return nil, user.ErrUsernameAlreadyExists
	}

	passwordHash, err := user.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		ProfileImage: profileImageURL(req.Username),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(newUser.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.AuthResponse{
		Token: token,
		User:  newUser.ToDTO(),
	}, nil
}

// Login authenticates by email and password.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and bad password look identical to the caller.
		return nil, user.ErrInvalidCredentials
	}

	if !user.VerifyPassword(req.Password, u.PasswordHash) {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.AuthResponse{
		Token: token,
		User:  u.ToDTO(),
	}, nil
}

// profileImageURL derives the avatar deterministically from the
// username, independent of the object storage.
func profileImageURL(username string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username)
}

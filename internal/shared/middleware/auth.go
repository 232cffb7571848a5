package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookworm-backend/internal/domains/user"
	"bookworm-backend/internal/shared/response"
	"bookworm-backend/pkg/jwt"
)

// CurrentUserKey is the gin context key the principal is stored under.
const CurrentUserKey = "currentUser"

// PrincipalResolver is the narrow slice of user.Repository the gate
// needs: resolve a verified subject ID to a live principal.
type PrincipalResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Auth verifies the bearer token and attaches the resolved principal to
// the request context. The three verification failures and the
// unknown-subject case all answer 401, with distinct messages — an
// expired token is fixed by logging in again, the others are not.
func Auth(tokens *jwt.Manager, users PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "No authentication token, access denied")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "No authentication token, access denied")
			c.Abort()
			return
		}

		subject, err := tokens.Validate(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, "Token has expired, please log in again")
			} else {
				response.Unauthorized(c, "Invalid token, authentication failed")
			}
			c.Abort()
			return
		}

		userID, err := uuid.Parse(subject)
		if err != nil {
			response.Unauthorized(c, "Invalid token, authentication failed")
			c.Abort()
			return
		}

		u, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			// A verified token whose subject no longer exists (deleted
			// after issuance) is an authentication failure, not a 404.
			if errors.Is(err, user.ErrUserNotFound) {
				response.Unauthorized(c, "User not found, token is invalid")
			} else {
				log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to resolve principal")
				response.InternalServerError(c)
			}
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the principal attached by Auth. Only valid on
// routes behind the middleware.
func CurrentUser(c *gin.Context) *user.User {
	u, _ := c.MustGet(CurrentUserKey).(*user.User)
	return u
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookworm-backend/internal/domains/user"
	"bookworm-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register - POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailAlreadyExists):
			response.BadRequest(c, "Email already exists")
		case errors.Is(err, user.ErrUsernameAlreadyExists):
			response.BadRequest(c, "Username already exists")
		default:
			log.Error().Err(err).Msg("Failed to register user")
			response.InternalServerError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login - POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.BadRequest(c, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("Failed to log user in")
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, result)
}

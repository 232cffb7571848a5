package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookworm-backend/internal/domains/book"
	"bookworm-backend/internal/infrastructure/storage"
	"bookworm-backend/internal/shared/middleware"
	"bookworm-backend/internal/shared/response"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Create - POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	principal := middleware.CurrentUser(c)

	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please provide all fields")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), principal.ID, req)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidImage) {
			response.BadRequest(c, "Invalid image data")
			return
		}
		log.Error().Err(err).Msg("Failed to create book")
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List - GET /api/books?page=&limit=
// Anything non-numeric or non-positive falls back to the defaults
// (page 1, limit 5), matching the reference client contract.
func (h *BookHandler) List(c *gin.Context) {
	page := defaultPage
	limit := defaultLimit

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	result, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list books")
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMine - GET /api/books/user
// Returns the caller's full set, newest first, no pagination.
func (h *BookHandler) ListMine(c *gin.Context) {
	principal := middleware.CurrentUser(c)

	books, err := h.service.ListByOwner(c.Request.Context(), principal.ID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list user's books")
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, books)
}

// Delete - DELETE /api/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	principal := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Book not found")
		return
	}

	err = h.service.Delete(c.Request.Context(), id, principal.ID)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrBookNotFound):
			response.NotFound(c, "Book not found")
		case errors.Is(err, book.ErrNotOwner):
			response.Unauthorized(c, "Unauthorized")
		default:
			log.Error().Err(err).Str("book_id", id.String()).Msg("Failed to delete book")
			response.InternalServerError(c)
		}
		return
	}

	response.Message(c, http.StatusOK, "Book deleted successfully")
}

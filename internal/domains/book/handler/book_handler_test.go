package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm-backend/internal/domains/book"
	"bookworm-backend/internal/domains/book/handler"
	"bookworm-backend/internal/domains/user"
	"bookworm-backend/internal/shared/middleware"
)

type stubBookService struct {
	listPage  int
	listLimit int
	listResp  *book.ListBooksResponse

	deleteErr    error
	deletedID    uuid.UUID
	deletedAsUID uuid.UUID
}

func (s *stubBookService) Create(_ context.Context, _ uuid.UUID, _ book.CreateBookRequest) (*book.Book, error) {
	return &book.Book{}, nil
}

func (s *stubBookService) List(_ context.Context, page, limit int) (*book.ListBooksResponse, error) {
	s.listPage = page
	s.listLimit = limit
	if s.listResp != nil {
		return s.listResp, nil
	}
	return &book.ListBooksResponse{Books: []book.BookWithOwner{}, CurrentPage: page}, nil
}

func (s *stubBookService) ListByOwner(_ context.Context, _ uuid.UUID) ([]book.Book, error) {
	return []book.Book{}, nil
}

func (s *stubBookService) Delete(_ context.Context, id, principalID uuid.UUID) error {
	s.deletedID = id
	s.deletedAsUID = principalID
	return s.deleteErr
}

func setupBookRoutes(svc book.Service, principal *user.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewBookHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CurrentUserKey, principal)
	})
	r.GET("/api/books", h.List)
	r.DELETE("/api/books/:id", h.Delete)
	return r
}

func TestList_QueryNormalization(t *testing.T) {
	principal := &user.User{ID: uuid.New()}

	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"no params", "", 1, 5},
		{"explicit values", "?page=3&limit=10", 3, 10},
		{"non-numeric page", "?page=abc", 1, 5},
		{"non-numeric limit", "?limit=xyz", 1, 5},
		{"zero page", "?page=0", 1, 5},
		{"zero limit", "?limit=0", 1, 5},
		{"negative page", "?page=-2", 1, 5},
		{"limit over the cap", "?limit=500", 1, 5},
		{"limit at the cap", "?limit=100", 1, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubBookService{}
			r := setupBookRoutes(svc, principal)

			req := httptest.NewRequest(http.MethodGet, "/api/books"+tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.wantPage, svc.listPage)
			assert.Equal(t, tc.wantLimit, svc.listLimit)
		})
	}
}

func TestList_ResponseShape(t *testing.T) {
	principal := &user.User{ID: uuid.New()}
	svc := &stubBookService{
		listResp: &book.ListBooksResponse{
			Books:       []book.BookWithOwner{},
			CurrentPage: 2,
			TotalBooks:  12,
			TotalPages:  3,
		},
	}
	r := setupBookRoutes(svc, principal)

	req := httptest.NewRequest(http.MethodGet, "/api/books?page=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "books")
	assert.Contains(t, body, "currentPage")
	assert.Contains(t, body, "totalBooks")
	assert.Contains(t, body, "totalPages")
}

func TestDelete(t *testing.T) {
	principal := &user.User{ID: uuid.New()}

	doDelete := func(svc book.Service, id string) (*httptest.ResponseRecorder, map[string]string) {
		r := setupBookRoutes(svc, principal)
		req := httptest.NewRequest(http.MethodDelete, "/api/books/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		return w, body
	}

	t.Run("success", func(t *testing.T) {
		svc := &stubBookService{}
		id := uuid.New()

		w, body := doDelete(svc, id.String())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Book deleted successfully", body["message"])
		assert.Equal(t, id, svc.deletedID)
		assert.Equal(t, principal.ID, svc.deletedAsUID)
	})

	t.Run("malformed id is a 404", func(t *testing.T) {
		svc := &stubBookService{}

		w, body := doDelete(svc, "not-a-uuid")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", body["message"])
		assert.Equal(t, uuid.Nil, svc.deletedID)
	})

	t.Run("missing book", func(t *testing.T) {
		svc := &stubBookService{deleteErr: book.ErrBookNotFound}

		w, body := doDelete(svc, uuid.New().String())
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", body["message"])
	})

	t.Run("not the owner", func(t *testing.T) {
		svc := &stubBookService{deleteErr: book.ErrNotOwner}

		w, body := doDelete(svc, uuid.New().String())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", body["message"])
	})
}

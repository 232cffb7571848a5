package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm-backend/internal/domains/user"
	"bookworm-backend/internal/domains/user/handler"
)

type stubUserService struct {
	registerResp *user.AuthResponse
	registerErr  error
	loginResp    *user.AuthResponse
	loginErr     error
}

func (s *stubUserService) Register(_ context.Context, _ user.RegisterRequest) (*user.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubUserService) Login(_ context.Context, _ user.LoginRequest) (*user.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func setupAuthRoutes(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewUserHandler(svc)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path, payload string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func messageOf(t *testing.T, body map[string]json.RawMessage) string {
	t.Helper()
	var msg string
	require.NoError(t, json.Unmarshal(body["message"], &msg))
	return msg
}

func authResponse() *user.AuthResponse {
	return &user.AuthResponse{
		Token: "signed.jwt.token",
		User: user.UserDTO{
			ID:       uuid.New(),
			Username: "ana_reads",
			Email:    "ana@example.com",
		},
	}
}

func TestRegisterHandler(t *testing.T) {
	validPayload := `{"email":"ana@example.com","username":"ana_reads","password":"secret123"}`

	t.Run("201 with token and user", func(t *testing.T) {
		r := setupAuthRoutes(&stubUserService{registerResp: authResponse()})

		w, body := postJSON(r, "/api/auth/register", validPayload)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, body, "token")
		assert.Contains(t, body, "user")
	})

	t.Run("missing fields", func(t *testing.T) {
		r := setupAuthRoutes(&stubUserService{})

		w, body := postJSON(r, "/api/auth/register", `{"email":"ana@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "All fields required", messageOf(t, body))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		r := setupAuthRoutes(&stubUserService{})

		w, body := postJSON(r, "/api/auth/register", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "All fields required", messageOf(t, body))
	})

	t.Run("duplicate email", func(t *testing.T) {
		r := setupAuthRoutes(&stubUserService{registerErr: user.ErrEmailAlreadyExists})

		w, body := postJSON(r, "/api/auth/register", validPayload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already exists", messageOf(t, body))
	})

	t.Run("duplicate username", func(t *testing.T) {
		r := setupAuthRoutes(&stubUserService{registerErr: user.ErrUsernameAlreadyExists})

		w, body := postJSON(r, "/api/auth/register", validPayload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Username already exists", messageOf(t, body))
	})
}

func TestLoginHandler(t *testing.T) {
	validPayload := `{"email":"ana@example.com","password":"secret123"}`

	t.Run("200 with token", func(t *testing.T) {
		r := setupAuthRoutes(&stubUserService{loginResp: authResponse()})

		w, body := postJSON(r, "/api/auth/login", validPayload)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, body, "token")
	})

	t.Run("bad credentials", func(t *testing.T) {
		r := setupAuthRoutes(&stubUserService{loginErr: user.ErrInvalidCredentials})

		w, body := postJSON(r, "/api/auth/login", validPayload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid credentials", messageOf(t, body))
	})

	t.Run("missing fields", func(t *testing.T) {
		r := setupAuthRoutes(&stubUserService{})

		w, body := postJSON(r, "/api/auth/login", `{"email":"ana@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "All fields required", messageOf(t, body))
	})
}

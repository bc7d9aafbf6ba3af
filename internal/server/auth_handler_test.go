package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobproj/resume-builder/internal/types"
)

func postJSON(target string, body any) *http.Request {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	return httptest.NewRequest(http.MethodPost, target, &buf)
}

func TestHandleSignup_Success(t *testing.T) {
	s := newTestServer()

	req := postJSON("/api/auth/signup", types.SignupRequest{
		Name:     "Kim",
		Email:    "kim@example.com",
		Password: "password123",
	})
	w := httptest.NewRecorder()

	s.handleSignup(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp types.LoginResponse
	env := decodeEnvelope(t, w, &resp)
	assert.True(t, env.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "kim@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	claims, err := s.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestHandleSignup_DuplicateEmail(t *testing.T) {
	s := newTestServer()

	body := types.SignupRequest{Name: "Kim", Email: "kim@example.com", Password: "password123"}
	w := httptest.NewRecorder()
	s.handleSignup(w, postJSON("/api/auth/signup", body))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	s.handleSignup(w, postJSON("/api/auth/signup", body))

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w, nil)
	assert.False(t, env.Success)
	assert.Equal(t, "EMAIL_EXISTS", env.Code)
}

func TestHandleSignup_ShortPassword(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.handleSignup(w, postJSON("/api/auth/signup", types.SignupRequest{
		Name:     "Kim",
		Email:    "kim@example.com",
		Password: "short",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w, nil)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
}

func TestHandleLogin_Success(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.handleSignup(w, postJSON("/api/auth/signup", types.SignupRequest{
		Name:     "Kim",
		Email:    "kim@example.com",
		Password: "password123",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	s.handleLogin(w, postJSON("/api/auth/login", types.LoginRequest{
		Email:    "kim@example.com",
		Password: "password123",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp types.LoginResponse
	env := decodeEnvelope(t, w, &resp)
	assert.True(t, env.Success)
	assert.NotEmpty(t, resp.Token)
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.handleSignup(w, postJSON("/api/auth/signup", types.SignupRequest{
		Name:     "Kim",
		Email:    "kim@example.com",
		Password: "password123",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	s.handleLogin(w, postJSON("/api/auth/login", types.LoginRequest{
		Email:    "kim@example.com",
		Password: "wrong-password",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w, nil)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Code)
}

func TestHandleLogin_UnknownEmailSameErrorAsWrongPassword(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.handleLogin(w, postJSON("/api/auth/login", types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w, nil)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Code)
	assert.Equal(t, "invalid email or password", env.Message)
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jobproj/resume-builder/internal/config"
	"github.com/jobproj/resume-builder/internal/server/middleware"
	"github.com/jobproj/resume-builder/internal/types"
)

// newTestServer builds a server backed by an in-memory store.
func newTestServer() *Server {
	jwtCfg := &config.JWTConfig{Secret: "test-secret-for-handlers", ExpirationHours: 1}
	pwCfg := &config.PasswordConfig{BcryptCost: 10}
	store := newMockStore()
	return &Server{
		db:          store,
		jwtService:  NewJWTService(jwtCfg),
		userService: NewUserService(store, pwCfg),
		validator:   validator.New(),
	}
}

// authedRequest builds a request with the user ID already in context, the way
// the auth middleware leaves it.
func authedRequest(method, target string, body any, userID uuid.UUID) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey(), userID)
	return req.WithContext(ctx)
}

// decodeEnvelope unmarshals a recorded response body and its data payload.
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data any) types.Envelope {
	t.Helper()
	var env types.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil && env.Data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

// seedResume inserts a resume for the given owner directly into the mock.
func seedResume(t *testing.T, s *Server, ownerID uuid.UUID, title string) int64 {
	t.Helper()
	id, err := s.db.CreateResume(context.Background(), ownerID, title)
	require.NoError(t, err)
	return id
}

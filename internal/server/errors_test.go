package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict, "EMAIL_EXISTS"},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"not found", &ErrNotFound{Resource: "resume", ID: 7}, http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", &ErrForbidden{}, http.StatusForbidden, "FORBIDDEN"},
		{"validation", &ErrValidation{Field: "title", Message: "required"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}
}

func TestErrNotFound_Message(t *testing.T) {
	err := &ErrNotFound{Resource: "experience", ID: 42}
	assert.Equal(t, "experience not found: 42", err.Error())
}

package server

import (
	"net/http"

	"github.com/jobproj/resume-builder/internal/types"
)

// handleSignup registers a user and returns the profile plus a bearer token.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.validateStruct(&req); err != nil {
		s.fail(w, err)
		return
	}

	user, err := s.userService.Register(r.Context(), &req)
	if err != nil {
		s.fail(w, err)
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusCreated, types.LoginResponse{User: user, Token: token})
}

// handleLogin authenticates a user and returns the profile plus a bearer
// token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.validateStruct(&req); err != nil {
		s.fail(w, err)
		return
	}

	user, err := s.userService.Login(r.Context(), &req)
	if err != nil {
		s.fail(w, err)
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, types.LoginResponse{User: user, Token: token})
}

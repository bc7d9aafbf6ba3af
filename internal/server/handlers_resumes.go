package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jobproj/resume-builder/internal/server/middleware"
	"github.com/jobproj/resume-builder/internal/types"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pathID parses an int64 path value.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		return 0, &ErrValidation{Field: name, Message: "must be a positive integer"}
	}
	return id, nil
}

// pageParams parses ?page and ?size with defaults and an upper bound on size.
func pageParams(r *http.Request) (page, size int) {
	page, size = 0, defaultPageSize
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// ownedResume loads a resume and checks that the caller owns it. readOnly
// additionally admits public resumes.
func (s *Server) ownedResume(ctx context.Context, r *http.Request, resumeID int64, readOnly bool) (*types.Resume, error) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		return nil, err
	}

	resume, err := s.db.GetResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, &ErrNotFound{Resource: "resume", ID: resumeID}
	}

	if resume.OwnerID != userID {
		if readOnly && resume.IsPublic {
			return resume, nil
		}
		return nil, &ErrForbidden{}
	}
	return resume, nil
}

// handleCreateResume creates an empty resume owned by the caller and returns
// its id.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	var req types.CreateResumeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.validateStruct(&req); err != nil {
		s.fail(w, err)
		return
	}

	id, err := s.db.CreateResume(r.Context(), userID, req.Title)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusCreated, id)
}

// handleListResumes returns one page of the caller's resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	page, size := pageParams(r)
	resumes, total, err := s.db.ListResumes(r.Context(), userID, page, size)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, types.ResumePage{
		Content:       resumes,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    types.PageCount(total, size),
	})
}

// handleGetResume returns one resume. Public resumes are readable by any
// authenticated user.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}

	resume, err := s.ownedResume(r.Context(), r, resumeID, true)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, resume)
}

// handleUpdateResume applies a partial update; absent fields stay unchanged.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}

	if _, err := s.ownedResume(r.Context(), r, resumeID, false); err != nil {
		s.fail(w, err)
		return
	}

	var req types.UpdateResumeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.validateStruct(&req); err != nil {
		s.fail(w, err)
		return
	}

	updated, err := s.db.UpdateResume(r.Context(), resumeID, &req)
	if err != nil {
		s.fail(w, err)
		return
	}
	if !updated {
		s.fail(w, &ErrNotFound{Resource: "resume", ID: resumeID})
		return
	}

	s.ok(w, http.StatusOK, nil)
}

// handleDeleteResume deletes a resume; sections and skill associations
// cascade in the database.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}

	if _, err := s.ownedResume(r.Context(), r, resumeID, false); err != nil {
		s.fail(w, err)
		return
	}

	deleted, err := s.db.DeleteResume(r.Context(), resumeID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if !deleted {
		s.fail(w, &ErrNotFound{Resource: "resume", ID: resumeID})
		return
	}

	s.ok(w, http.StatusOK, nil)
}

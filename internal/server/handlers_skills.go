package server

import (
	"net/http"
	"strconv"

	"github.com/jobproj/resume-builder/internal/types"
)

const defaultSkillSearchLimit = 50

// handleSearchSkills searches the global skill master by name substring,
// case-insensitive.
func (s *Server) handleSearchSkills(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	limit := defaultSkillSearchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= defaultSkillSearchLimit {
			limit = n
		}
	}

	skills, err := s.db.SearchSkills(r.Context(), q, limit)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, skills)
}

// handleCreateSkill creates a master skill and returns its id. Names are
// unique case-insensitively; callers should search before creating.
func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSkillRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.validateStruct(&req); err != nil {
		s.fail(w, err)
		return
	}

	id, err := s.db.CreateSkill(r.Context(), req.Name)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusCreated, id)
}

// handleListResumeSkills returns a resume's skill associations.
func (s *Server) handleListResumeSkills(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.ownedResume(r.Context(), r, resumeID, true); err != nil {
		s.fail(w, err)
		return
	}

	skills, err := s.db.ListResumeSkills(r.Context(), resumeID)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, skills)
}

// handlePutResumeSkill attaches a master skill to a resume, updating the
// proficiency if the association already exists.
func (s *Server) handlePutResumeSkill(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}
	skillID, err := pathID(r, "skillId")
	if err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.ownedResume(r.Context(), r, resumeID, false); err != nil {
		s.fail(w, err)
		return
	}

	skill, err := s.db.GetSkill(r.Context(), skillID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if skill == nil {
		s.fail(w, &ErrNotFound{Resource: "skill", ID: skillID})
		return
	}

	var req types.PutResumeSkillRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.validateStruct(&req); err != nil {
		s.fail(w, err)
		return
	}

	if err := s.db.PutResumeSkill(r.Context(), resumeID, skillID, req.Proficiency); err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, nil)
}

// handleDeleteResumeSkill detaches a skill from a resume. The master record
// stays for other resumes.
func (s *Server) handleDeleteResumeSkill(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}
	skillID, err := pathID(r, "skillId")
	if err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.ownedResume(r.Context(), r, resumeID, false); err != nil {
		s.fail(w, err)
		return
	}

	deleted, err := s.db.DeleteResumeSkill(r.Context(), resumeID, skillID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if !deleted {
		s.fail(w, &ErrNotFound{Resource: "resume skill", ID: skillID})
		return
	}

	s.ok(w, http.StatusOK, nil)
}

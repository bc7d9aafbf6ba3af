package server

import (
	"net/http"

	"github.com/jobproj/resume-builder/internal/types"
)

// handleListEducations returns one page of a resume's education records.
func (s *Server) handleListEducations(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.ownedResume(r.Context(), r, resumeID, true); err != nil {
		s.fail(w, err)
		return
	}

	page, size := pageParams(r)
	educations, total, err := s.db.ListEducations(r.Context(), resumeID, page, size)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, types.EducationPage{
		Content:       educations,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    types.PageCount(total, size),
	})
}

// handleCreateEducation adds an education record and returns its id.
func (s *Server) handleCreateEducation(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.ownedResume(r.Context(), r, resumeID, false); err != nil {
		s.fail(w, err)
		return
	}

	var req types.CreateEducationRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	id, err := s.db.CreateEducation(r.Context(), resumeID, &req)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusCreated, id)
}

// handleDeleteEducation removes one education record by its own id.
func (s *Server) handleDeleteEducation(w http.ResponseWriter, r *http.Request) {
	educationID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}

	education, err := s.db.GetEducation(r.Context(), educationID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if education == nil {
		s.fail(w, &ErrNotFound{Resource: "education", ID: educationID})
		return
	}
	if _, err := s.ownedResume(r.Context(), r, education.ResumeID, false); err != nil {
		s.fail(w, err)
		return
	}

	if _, err := s.db.DeleteEducation(r.Context(), educationID); err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, nil)
}

// handleListExperiences returns all experience records of a resume.
func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.ownedResume(r.Context(), r, resumeID, true); err != nil {
		s.fail(w, err)
		return
	}

	experiences, err := s.db.ListExperiences(r.Context(), resumeID)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, experiences)
}

// handleCreateExperience adds an experience record and returns its id.
func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.ownedResume(r.Context(), r, resumeID, false); err != nil {
		s.fail(w, err)
		return
	}

	var req types.CreateExperienceRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	id, err := s.db.CreateExperience(r.Context(), resumeID, &req)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusCreated, id)
}

// handleDeleteExperience removes one experience record.
func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	experienceID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}

	experience, err := s.db.GetExperience(r.Context(), experienceID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if experience == nil {
		s.fail(w, &ErrNotFound{Resource: "experience", ID: experienceID})
		return
	}
	if _, err := s.ownedResume(r.Context(), r, experience.ResumeID, false); err != nil {
		s.fail(w, err)
		return
	}

	if _, err := s.db.DeleteExperience(r.Context(), experienceID); err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, nil)
}

// handleListProjects returns all project records of a resume.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.ownedResume(r.Context(), r, resumeID, true); err != nil {
		s.fail(w, err)
		return
	}

	projects, err := s.db.ListProjects(r.Context(), resumeID)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, projects)
}

// handleCreateProject adds a project record and returns its id.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	resumeID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.ownedResume(r.Context(), r, resumeID, false); err != nil {
		s.fail(w, err)
		return
	}

	var req types.CreateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.validateStruct(&req); err != nil {
		s.fail(w, err)
		return
	}

	id, err := s.db.CreateProject(r.Context(), resumeID, &req)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusCreated, id)
}

// handleDeleteProject removes one project record.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		s.fail(w, err)
		return
	}

	project, err := s.db.GetProject(r.Context(), projectID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if project == nil {
		s.fail(w, &ErrNotFound{Resource: "project", ID: projectID})
		return
	}
	if _, err := s.ownedResume(r.Context(), r, project.ResumeID, false); err != nil {
		s.fail(w, err)
		return
	}

	if _, err := s.db.DeleteProject(r.Context(), projectID); err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, nil)
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobproj/resume-builder/internal/types"
)

// Signup registers a new user and returns the user plus a bearer token.
func (c *Client) Signup(ctx context.Context, req *types.SignupRequest) (*types.LoginResponse, error) {
	var out types.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and returns the user plus a bearer token.
func (c *Client) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	var out types.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateResume creates a new resume and returns its id.
func (c *Client) CreateResume(ctx context.Context, req *types.CreateResumeRequest) (int64, error) {
	var id int64
	if err := c.doJSON(ctx, http.MethodPost, "/api/resumes", req, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetResume fetches one resume with its profile fields.
func (c *Client) GetResume(ctx context.Context, resumeID int64) (*types.Resume, error) {
	var out types.Resume
	path := fmt.Sprintf("/api/resumes/%d", resumeID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateResume PATCHes the resume; nil fields in req stay unchanged.
func (c *Client) UpdateResume(ctx context.Context, resumeID int64, req *types.UpdateResumeRequest) error {
	path := fmt.Sprintf("/api/resumes/%d", resumeID)
	return c.doJSON(ctx, http.MethodPatch, path, req, nil)
}

// DeleteResume deletes a resume and everything under it.
func (c *Client) DeleteResume(ctx context.Context, resumeID int64) error {
	path := fmt.Sprintf("/api/resumes/%d", resumeID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// ListEducations fetches one page of a resume's education records.
func (c *Client) ListEducations(ctx context.Context, resumeID int64, page, size int) (*types.EducationPage, error) {
	var out types.EducationPage
	path := fmt.Sprintf("/api/resumes/%d/educations?page=%d&size=%d", resumeID, page, size)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEducation adds an education record and returns its id.
func (c *Client) CreateEducation(ctx context.Context, resumeID int64, req *types.CreateEducationRequest) (int64, error) {
	var id int64
	path := fmt.Sprintf("/api/resumes/%d/educations", resumeID)
	if err := c.doJSON(ctx, http.MethodPost, path, req, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteEducation removes one education record by its own id.
func (c *Client) DeleteEducation(ctx context.Context, educationID int64) error {
	path := fmt.Sprintf("/api/educations/%d", educationID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// ListExperiences fetches all experience records of a resume.
func (c *Client) ListExperiences(ctx context.Context, resumeID int64) ([]types.Experience, error) {
	var out []types.Experience
	path := fmt.Sprintf("/api/resumes/%d/experiences", resumeID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateExperience adds an experience record and returns its id.
func (c *Client) CreateExperience(ctx context.Context, resumeID int64, req *types.CreateExperienceRequest) (int64, error) {
	var id int64
	path := fmt.Sprintf("/api/resumes/%d/experiences", resumeID)
	if err := c.doJSON(ctx, http.MethodPost, path, req, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteExperience removes one experience record.
func (c *Client) DeleteExperience(ctx context.Context, experienceID int64) error {
	path := fmt.Sprintf("/api/experiences/%d", experienceID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// ListProjects fetches all project records of a resume.
func (c *Client) ListProjects(ctx context.Context, resumeID int64) ([]types.Project, error) {
	var out []types.Project
	path := fmt.Sprintf("/api/resumes/%d/projects", resumeID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProject adds a project record and returns its id.
func (c *Client) CreateProject(ctx context.Context, resumeID int64, req *types.CreateProjectRequest) (int64, error) {
	var id int64
	path := fmt.Sprintf("/api/resumes/%d/projects", resumeID)
	if err := c.doJSON(ctx, http.MethodPost, path, req, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteProject removes one project record.
func (c *Client) DeleteProject(ctx context.Context, projectID int64) error {
	path := fmt.Sprintf("/api/projects/%d", projectID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// ListResumeSkills fetches the skill associations of a resume.
func (c *Client) ListResumeSkills(ctx context.Context, resumeID int64) ([]types.ResumeSkill, error) {
	var out []types.ResumeSkill
	path := fmt.Sprintf("/api/resumes/%d/skills", resumeID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PutResumeSkill attaches a master skill to a resume.
func (c *Client) PutResumeSkill(ctx context.Context, resumeID, skillID int64, req *types.PutResumeSkillRequest) error {
	path := fmt.Sprintf("/api/resumes/%d/skills/%d", resumeID, skillID)
	return c.doJSON(ctx, http.MethodPut, path, req, nil)
}

// DeleteResumeSkill detaches a skill from a resume.
func (c *Client) DeleteResumeSkill(ctx context.Context, resumeID, skillID int64) error {
	path := fmt.Sprintf("/api/resumes/%d/skills/%d", resumeID, skillID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// SearchSkills searches the global skill master by name.
func (c *Client) SearchSkills(ctx context.Context, q string, limit int) ([]types.Skill, error) {
	var out []types.Skill
	path := fmt.Sprintf("/api/skills?q=%s&limit=%d", escape(q), limit)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSkill creates a master skill and returns its id.
func (c *Client) CreateSkill(ctx context.Context, req *types.CreateSkillRequest) (int64, error) {
	var id int64
	if err := c.doJSON(ctx, http.MethodPost, "/api/skills", req, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// Package types provides type definitions for resume documents and the REST
// wire format shared by the server, the client and the editor.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Resume is the top-level document a user edits and exports. Profile fields
// (name, phone, email, birth date) live on the resume itself, not the user,
// so one user can present differently per resume.
type Resume struct {
	ResumeID        int64     `json:"resumeId"`
	OwnerID         uuid.UUID `json:"-"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary,omitempty"`
	IsPublic        bool      `json:"isPublic"`
	Name            string    `json:"name,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	BirthDate       string    `json:"birthDate,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// Education is one schooling record. The editor keeps at most one per resume
// even though the collection is unbounded server-side.
type Education struct {
	EducationID int64  `json:"educationId"`
	ResumeID    int64  `json:"resumeId,omitempty"`
	SchoolName  string `json:"schoolName,omitempty"`
	Major       string `json:"major,omitempty"`
	Degree      string `json:"degree,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
}

// Experience is one employment record.
type Experience struct {
	ExperienceID  int64  `json:"experienceId"`
	ResumeID      int64  `json:"resumeId,omitempty"`
	CompanyName   string `json:"companyName,omitempty"`
	PositionTitle string `json:"positionTitle,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	IsCurrent     bool   `json:"isCurrent"`
	Description   string `json:"description,omitempty"`
}

// Project is one project record.
type Project struct {
	ProjectID int64  `json:"projectId"`
	ResumeID  int64  `json:"resumeId,omitempty"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	IsCurrent bool   `json:"isCurrent"`
	Summary   string `json:"summary,omitempty"`
	TechStack string `json:"techStack,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Skill is a global, name-deduplicated master record.
type Skill struct {
	SkillID int64  `json:"skillId"`
	Name    string `json:"name"`
}

// ResumeSkill associates a master skill with a resume. Proficiency is stored
// but the editor always writes 0; no UI exposes it yet.
type ResumeSkill struct {
	SkillID     int64  `json:"skillId"`
	Name        string `json:"name,omitempty"`
	Proficiency int    `json:"proficiency"`
}

// CreateResumeRequest creates a new empty resume owned by the caller.
type CreateResumeRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

// UpdateResumeRequest is the PATCH body for a resume. Nil fields are left
// unchanged; the editor always sends the full profile set.
type UpdateResumeRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	IsPublic  *bool   `json:"isPublic,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	BirthDate *string `json:"birthDate,omitempty"`
}

// CreateEducationRequest is the POST body for an education record.
type CreateEducationRequest struct {
	SchoolName string `json:"schoolName,omitempty"`
	Major      string `json:"major,omitempty"`
	Degree     string `json:"degree,omitempty"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
	Current    bool   `json:"current"`
}

// CreateExperienceRequest is the POST body for an experience record.
type CreateExperienceRequest struct {
	CompanyName   string `json:"companyName,omitempty"`
	PositionTitle string `json:"positionTitle,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	IsCurrent     bool   `json:"isCurrent"`
	Description   string `json:"description,omitempty"`
}

// CreateProjectRequest is the POST body for a project record.
type CreateProjectRequest struct {
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	IsCurrent bool   `json:"isCurrent"`
	Summary   string `json:"summary,omitempty"`
	TechStack string `json:"techStack,omitempty"`
	URL       string `json:"url,omitempty" validate:"omitempty,url"`
}

// CreateSkillRequest creates a master skill.
type CreateSkillRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// PutResumeSkillRequest attaches a skill to a resume.
type PutResumeSkillRequest struct {
	Proficiency int `json:"proficiency" validate:"gte=0,lte=5"`
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateResumeRequest using the validator.
func (r *UpdateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateProjectRequest using the validator.
func (r *CreateProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateSkillRequest using the validator.
func (r *CreateSkillRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PutResumeSkillRequest using the validator.
func (r *PutResumeSkillRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

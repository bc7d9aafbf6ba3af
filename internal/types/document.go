package types

// ResumeDocument is the local-file representation of a complete resume: the
// parent record plus every section collection. The pull and push commands
// read and write this shape, and exports render from it.
type ResumeDocument struct {
	Resume      Resume        `json:"resume"`
	Educations  []Education   `json:"educations,omitempty"`
	Experiences []Experience  `json:"experiences,omitempty"`
	Projects    []Project     `json:"projects,omitempty"`
	Skills      []ResumeSkill `json:"skills,omitempty"`
}

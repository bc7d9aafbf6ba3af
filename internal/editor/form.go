package editor

import (
	"fmt"
	"log"
)

// MaxBlocks is the soft cap on repeated experience/project blocks.
const MaxBlocks = 5

// Field identifier helpers. Identifiers are derived from the block index at
// creation time; nothing ever rewrites an existing id.

// ExpFieldID returns the input id for an experience block field, e.g.
// ExpFieldID(2, "company") == "input-exp2-company".
func ExpFieldID(n int, name string) string {
	return fmt.Sprintf("input-exp%d-%s", n, name)
}

// ExpPreviewID returns the preview id for an experience block field.
func ExpPreviewID(n int, name string) string {
	return fmt.Sprintf("preview-exp%d-%s", n, name)
}

// ProjFieldID returns the input id for a project block field.
func ProjFieldID(n int, name string) string {
	return fmt.Sprintf("input-proj%d-%s", n, name)
}

// ProjPreviewID returns the preview id for a project block field.
func ProjPreviewID(n int, name string) string {
	return fmt.Sprintf("preview-proj%d-%s", n, name)
}

// ProfileValues are the owner-identifying fields of the form.
type ProfileValues struct {
	Name    string
	Phone   string
	Email   string
	Birth   string
	Summary string
}

// EducationValues is the single education block.
type EducationValues struct {
	School string
	Major  string
	Degree string
	Period string
}

// Empty reports whether every field of the block is blank.
func (v EducationValues) Empty() bool {
	return v.School == "" && v.Major == "" && v.Degree == "" && v.Period == ""
}

// ExperienceValues is one experience block.
type ExperienceValues struct {
	Company     string
	Position    string
	Period      string
	Description string
}

// Empty reports whether every field of the block is blank.
func (v ExperienceValues) Empty() bool {
	return v.Company == "" && v.Position == "" && v.Period == "" && v.Description == ""
}

// ProjectValues is one project block.
type ProjectValues struct {
	Name        string
	Role        string
	Period      string
	Tech        string
	Description string
}

// Empty reports whether every field of the block is blank.
func (v ProjectValues) Empty() bool {
	return v.Name == "" && v.Role == "" && v.Period == "" && v.Tech == "" && v.Description == ""
}

// Meta caches resume metadata that has no edit field of its own (title,
// public flag) between load and save, like the resumeMeta object in the
// original screen.
type Meta struct {
	Title    string
	IsPublic bool
}

// Form is the complete edit-session state: the document, the running block
// counts and the metadata cache. Construct one per resume-edit session.
type Form struct {
	doc       *Document
	expCount  int
	projCount int

	// Meta is read on save and refreshed on load.
	Meta Meta

	// Notify surfaces user-facing warnings (the alert() of the original).
	// Defaults to log.Printf.
	Notify func(msg string)
}

// NewForm builds the standard edit screen: profile fields, one education
// block, one experience block, one project block, the skill list, and all of
// their preview bindings.
func NewForm() *Form {
	f := &Form{
		doc:    NewDocument(),
		Notify: func(msg string) { log.Printf("[form] %s", msg) },
	}

	doc := f.doc

	for _, name := range []string{"name", "phone", "email", "birth", "summary"} {
		doc.AddField("input-" + name)
		doc.AddPreview("preview-" + name)
		Bind(doc, "input-"+name, "preview-"+name)
	}

	for _, name := range []string{"school", "major", "degree", "period"} {
		doc.AddField("input-edu-" + name)
	}
	doc.AddPreview("preview-edu-school")
	doc.AddPreview("preview-edu-major")
	doc.AddPreview("preview-edu-period")
	Bind(doc, "input-edu-school", "preview-edu-school")
	Bind(doc, "input-edu-period", "preview-edu-period")
	BindCombined(doc, "input-edu-major", "input-edu-degree", "preview-edu-major", " / ")

	doc.AddField("input-skill-list")
	doc.AddPreview("preview-skill-list")
	BindSkillTags(doc, "input-skill-list", "preview-skill-list")

	f.buildExperienceBlock(1)
	f.expCount = 1
	f.buildProjectBlock(1)
	f.projCount = 1

	return f
}

// Document exposes the underlying field registry.
func (f *Form) Document() *Document { return f.doc }

// ExperienceCount returns the number of experience blocks present.
func (f *Form) ExperienceCount() int { return f.expCount }

// ProjectCount returns the number of project blocks present.
func (f *Form) ProjectCount() int { return f.projCount }

// SetProfile fills the profile fields, firing preview bindings.
func (f *Form) SetProfile(v ProfileValues) {
	f.doc.SetValue("input-name", v.Name)
	f.doc.SetValue("input-phone", v.Phone)
	f.doc.SetValue("input-email", v.Email)
	f.doc.SetValue("input-birth", v.Birth)
	f.doc.SetValue("input-summary", v.Summary)
}

// Profile reads the profile fields.
func (f *Form) Profile() ProfileValues {
	return ProfileValues{
		Name:    f.doc.Value("input-name"),
		Phone:   f.doc.Value("input-phone"),
		Email:   f.doc.Value("input-email"),
		Birth:   f.doc.Value("input-birth"),
		Summary: f.doc.Value("input-summary"),
	}
}

// SetEducation fills the single education block.
func (f *Form) SetEducation(v EducationValues) {
	f.doc.SetValue("input-edu-school", v.School)
	f.doc.SetValue("input-edu-major", v.Major)
	f.doc.SetValue("input-edu-degree", v.Degree)
	f.doc.SetValue("input-edu-period", v.Period)
}

// Education reads the single education block.
func (f *Form) Education() EducationValues {
	return EducationValues{
		School: f.doc.Value("input-edu-school"),
		Major:  f.doc.Value("input-edu-major"),
		Degree: f.doc.Value("input-edu-degree"),
		Period: f.doc.Value("input-edu-period"),
	}
}

// SetExperience fills experience block n (1-based). Out-of-range blocks are
// ignored, matching the original's missing-markup tolerance.
func (f *Form) SetExperience(n int, v ExperienceValues) {
	if n < 1 || n > f.expCount {
		return
	}
	f.doc.SetValue(ExpFieldID(n, "company"), v.Company)
	f.doc.SetValue(ExpFieldID(n, "position"), v.Position)
	f.doc.SetValue(ExpFieldID(n, "period"), v.Period)
	f.doc.SetValue(ExpFieldID(n, "desc"), v.Description)
}

// Experience reads experience block n.
func (f *Form) Experience(n int) ExperienceValues {
	return ExperienceValues{
		Company:     f.doc.Value(ExpFieldID(n, "company")),
		Position:    f.doc.Value(ExpFieldID(n, "position")),
		Period:      f.doc.Value(ExpFieldID(n, "period")),
		Description: f.doc.Value(ExpFieldID(n, "desc")),
	}
}

// SetProject fills project block n (1-based).
func (f *Form) SetProject(n int, v ProjectValues) {
	if n < 1 || n > f.projCount {
		return
	}
	f.doc.SetValue(ProjFieldID(n, "name"), v.Name)
	f.doc.SetValue(ProjFieldID(n, "role"), v.Role)
	f.doc.SetValue(ProjFieldID(n, "period"), v.Period)
	f.doc.SetValue(ProjFieldID(n, "tech"), v.Tech)
	f.doc.SetValue(ProjFieldID(n, "desc"), v.Description)
}

// Project reads project block n.
func (f *Form) Project(n int) ProjectValues {
	return ProjectValues{
		Name:        f.doc.Value(ProjFieldID(n, "name")),
		Role:        f.doc.Value(ProjFieldID(n, "role")),
		Period:      f.doc.Value(ProjFieldID(n, "period")),
		Tech:        f.doc.Value(ProjFieldID(n, "tech")),
		Description: f.doc.Value(ProjFieldID(n, "desc")),
	}
}

// SetSkills replaces the raw comma-separated skill list.
func (f *Form) SetSkills(raw string) {
	f.doc.SetValue("input-skill-list", raw)
}

// Skills returns the raw skill field value.
func (f *Form) Skills() string {
	return f.doc.Value("input-skill-list")
}

// SkillNames returns the parsed skill tag list.
func (f *Form) SkillNames() []string {
	return SplitSkills(f.Skills())
}

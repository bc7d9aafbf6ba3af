package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/jobproj/resume-builder/internal/period"
	"github.com/jobproj/resume-builder/internal/types"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// DefaultTheme is used when the caller does not pick one.
const DefaultTheme = "classic"

// Markers rendered for ongoing ranges, per section kind.
const (
	eduCurrentMarker  = "재학"
	workCurrentMarker = "재직"
	projCurrentMarker = "진행중"
)

// Renderer renders resume documents with one of the bundled themes.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the bundled theme templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse bundled templates", Cause: err}
	}
	return &Renderer{templates: tmpl}, nil
}

// Themes lists the available theme names, sorted.
func (r *Renderer) Themes() []string {
	names := make([]string, 0)
	for _, t := range r.templates.Templates() {
		name := strings.TrimSuffix(t.Name(), ".html.tmpl")
		if name != t.Name() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// RenderHTML renders a resume document with the named theme. An empty theme
// selects DefaultTheme.
func (r *Renderer) RenderHTML(doc *types.ResumeDocument, theme string) (string, error) {
	if doc == nil {
		return "", &RenderError{Message: "document is nil"}
	}
	if theme == "" {
		theme = DefaultTheme
	}

	name := theme + ".html.tmpl"
	if r.templates.Lookup(name) == nil {
		return "", &TemplateError{Message: fmt.Sprintf("unknown theme %q (have: %s)", theme, strings.Join(r.Themes(), ", "))}
	}

	var sb strings.Builder
	if err := r.templates.ExecuteTemplate(&sb, name, buildTemplateData(doc)); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

// TemplateData is the view model the theme templates consume. Dates arrive as
// ISO strings in the document and leave as display periods here.
type TemplateData struct {
	Title   string
	Name    string
	Email   string
	Phone   string
	Birth   string
	Summary string

	Educations  []EducationView
	Experiences []ExperienceView
	Projects    []ProjectView
	Skills      []string
}

// EducationView is one education entry prepared for display.
type EducationView struct {
	School string
	Major  string
	Degree string
	Period string
}

// ExperienceView is one experience entry prepared for display.
type ExperienceView struct {
	Company     string
	Position    string
	Period      string
	Description string
}

// ProjectView is one project entry prepared for display.
type ProjectView struct {
	Name    string
	Role    string
	Period  string
	Tech    string
	Summary string
	URL     string
}

func buildTemplateData(doc *types.ResumeDocument) *TemplateData {
	data := &TemplateData{
		Title:   doc.Resume.Title,
		Name:    doc.Resume.Name,
		Email:   doc.Resume.Email,
		Phone:   doc.Resume.Phone,
		Birth:   doc.Resume.BirthDate,
		Summary: doc.Resume.Summary,
	}

	for _, edu := range doc.Educations {
		data.Educations = append(data.Educations, EducationView{
			School: edu.SchoolName,
			Major:  edu.Major,
			Degree: edu.Degree,
			Period: period.Format(period.Range{
				StartDate: edu.StartDate, EndDate: edu.EndDate, Current: edu.Current,
			}, eduCurrentMarker),
		})
	}

	for _, exp := range doc.Experiences {
		data.Experiences = append(data.Experiences, ExperienceView{
			Company:  exp.CompanyName,
			Position: exp.PositionTitle,
			Period: period.Format(period.Range{
				StartDate: exp.StartDate, EndDate: exp.EndDate, Current: exp.IsCurrent,
			}, workCurrentMarker),
			Description: exp.Description,
		})
	}

	for _, proj := range doc.Projects {
		data.Projects = append(data.Projects, ProjectView{
			Name: proj.Name,
			Role: proj.Role,
			Period: period.Format(period.Range{
				StartDate: proj.StartDate, EndDate: proj.EndDate, Current: proj.IsCurrent,
			}, projCurrentMarker),
			Tech:    proj.TechStack,
			Summary: proj.Summary,
			URL:     proj.URL,
		})
	}

	for _, skill := range doc.Skills {
		if skill.Name != "" {
			data.Skills = append(data.Skills, skill.Name)
		}
	}

	return data
}

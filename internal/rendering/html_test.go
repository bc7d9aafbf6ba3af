package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobproj/resume-builder/internal/types"
)

func sampleDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		Resume: types.Resume{
			ResumeID:  1,
			Title:     "Backend Engineer Resume",
			Name:      "Kim Minsu",
			Email:     "minsu@example.com",
			Phone:     "010-1234-5678",
			BirthDate: "1995-04-02",
			Summary:   "Backend engineer with five years of Go experience.",
		},
		Educations: []types.Education{
			{SchoolName: "Hanguk University", Major: "Computer Science", Degree: "BS", StartDate: "2014-03-01", Current: true},
		},
		Experiences: []types.Experience{
			{CompanyName: "Acme Corp", PositionTitle: "Backend Engineer", StartDate: "2020-01-01", EndDate: "2022-12-01"},
			{CompanyName: "Globex", PositionTitle: "Senior Engineer", StartDate: "2023-01-01", IsCurrent: true, Description: "Owns the billing pipeline."},
		},
		Projects: []types.Project{
			{Name: "Resume Builder", Role: "Maintainer", StartDate: "2024-05-01", IsCurrent: true, TechStack: "Go, PostgreSQL", URL: "https://example.com/rb"},
		},
		Skills: []types.ResumeSkill{
			{SkillID: 1, Name: "Go"},
			{SkillID: 2, Name: "PostgreSQL"},
		},
	}
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestThemes(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	assert.Equal(t, []string{"classic", "compact", "modern"}, r.Themes())
}

func TestRenderHTML_Classic(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.RenderHTML(sampleDocument(), "classic")
	require.NoError(t, err)

	doc := parseHTML(t, html)

	assert.Equal(t, "Kim Minsu", doc.Find("#resume-name").Text())
	assert.Equal(t, "minsu@example.com", doc.Find("#resume-email").Text())
	assert.Equal(t, "010-1234-5678", doc.Find("#resume-phone").Text())
	assert.Contains(t, doc.Find("#resume-summary").Text(), "five years of Go")

	assert.Equal(t, 1, doc.Find(".education-entry").Length())
	assert.Equal(t, 2, doc.Find(".experience-entry").Length())
	assert.Equal(t, 1, doc.Find(".project-entry").Length())
	assert.Equal(t, 2, doc.Find(".skill-tag").Length())
}

func TestRenderHTML_PeriodsUseSectionMarkers(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.RenderHTML(sampleDocument(), "classic")
	require.NoError(t, err)

	doc := parseHTML(t, html)

	eduPeriod := doc.Find(".education-entry .period").First().Text()
	assert.Equal(t, "2014.03 ~ 재학", eduPeriod)

	expPeriods := doc.Find(".experience-entry .period").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"2020.01 ~ 2022.12", "2023.01 ~ 재직"}, expPeriods)

	projPeriod := doc.Find(".project-entry .period").First().Text()
	assert.Equal(t, "2024.05 ~ 진행중", projPeriod)
}

func TestRenderHTML_DefaultTheme(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.RenderHTML(sampleDocument(), "")
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.Equal(t, "Kim Minsu", doc.Find("#resume-name").Text())
}

func TestRenderHTML_AllThemesRenderEverySection(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, theme := range r.Themes() {
		html, err := r.RenderHTML(sampleDocument(), theme)
		require.NoError(t, err, "theme %s", theme)

		doc := parseHTML(t, html)
		assert.Equal(t, 1, doc.Find("#section-education").Length(), "theme %s", theme)
		assert.Equal(t, 1, doc.Find("#section-experience").Length(), "theme %s", theme)
		assert.Equal(t, 1, doc.Find("#section-project").Length(), "theme %s", theme)
		assert.Equal(t, 1, doc.Find("#section-skills").Length(), "theme %s", theme)
	}
}

func TestRenderHTML_EmptySectionsOmitted(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.RenderHTML(&types.ResumeDocument{
		Resume: types.Resume{Title: "Empty", Name: "Nobody"},
	}, "classic")
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.Equal(t, 0, doc.Find("#section-education").Length())
	assert.Equal(t, 0, doc.Find("#section-experience").Length())
	assert.Equal(t, 0, doc.Find("#section-project").Length())
	assert.Equal(t, 0, doc.Find("#section-skills").Length())
}

func TestRenderHTML_EscapesUserContent(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	doc := sampleDocument()
	doc.Resume.Name = `<script>alert("x")</script>`

	html, err := r.RenderHTML(doc, "classic")
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTML_UnknownTheme(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, err = r.RenderHTML(sampleDocument(), "neon")
	require.Error(t, err)

	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, tmplErr.Message, "neon")
	assert.Contains(t, tmplErr.Message, "classic")
}

func TestRenderHTML_NilDocument(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, err = r.RenderHTML(nil, "classic")
	require.Error(t, err)

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobproj/resume-builder/internal/rendering"
	"github.com/jobproj/resume-builder/internal/types"
)

func testDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		Resume: types.Resume{
			ResumeID: 1,
			Title:    "Backend Engineer Resume",
			Name:     "Kim Minsu",
			Email:    "minsu@example.com",
		},
		Experiences: []types.Experience{
			{CompanyName: "Acme Corp", StartDate: "2020-01-01", IsCurrent: true},
		},
	}
}

func TestDefaultOutputName(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		ext      string
		expected string
	}{
		{"simple title", "Backend Engineer Resume", ".pdf", "Backend-Engineer-Resume.pdf"},
		{"korean title", "백엔드 이력서", ".html", "백엔드-이력서.html"},
		{"unsafe characters", "my/resume: v2?", ".pdf", "my-resume-v2.pdf"},
		{"empty title", "", ".pdf", "resume.pdf"},
		{"only unsafe characters", "///???", ".pdf", "resume.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &types.ResumeDocument{Resume: types.Resume{Title: tt.title}}
			assert.Equal(t, tt.expected, DefaultOutputName(doc, tt.ext))
		})
	}
}

func TestDefaultOutputName_NilDocument(t *testing.T) {
	assert.Equal(t, "resume.pdf", DefaultOutputName(nil, ".pdf"))
}

func TestToHTML(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.html")

	path, err := ToHTML(testDocument(), Options{Output: output})
	require.NoError(t, err)
	assert.Equal(t, output, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Kim Minsu")
	assert.Contains(t, string(content), "Acme Corp")
}

func TestToHTML_UnknownTheme(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.html")

	_, err := ToHTML(testDocument(), Options{Theme: "neon", Output: output})
	require.Error(t, err)

	var tmplErr *rendering.TemplateError
	assert.ErrorAs(t, err, &tmplErr)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestToHTML_ThemedOutputDiffers(t *testing.T) {
	dir := t.TempDir()

	classic, err := ToHTML(testDocument(), Options{Theme: "classic", Output: filepath.Join(dir, "classic.html")})
	require.NoError(t, err)
	modern, err := ToHTML(testDocument(), Options{Theme: "modern", Output: filepath.Join(dir, "modern.html")})
	require.NoError(t, err)

	classicContent, err := os.ReadFile(classic)
	require.NoError(t, err)
	modernContent, err := os.ReadFile(modern)
	require.NoError(t, err)
	assert.NotEqual(t, string(classicContent), string(modernContent))
}

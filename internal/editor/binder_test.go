package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBind_ReflectsChanges(t *testing.T) {
	doc := NewDocument()
	doc.AddField("input-name")
	doc.AddPreview("preview-name")

	Bind(doc, "input-name", "preview-name")
	doc.SetValue("input-name", "Kim Taehyung")

	assert.Equal(t, "Kim Taehyung", doc.PreviewText("preview-name"))

	doc.SetValue("input-name", "")
	assert.Equal(t, "", doc.PreviewText("preview-name"))
}

func TestBind_InitialSync(t *testing.T) {
	doc := NewDocument()
	doc.AddField("input-email").SetValue("kim@example.com")
	doc.AddPreview("preview-email")

	Bind(doc, "input-email", "preview-email")

	assert.Equal(t, "kim@example.com", doc.PreviewText("preview-email"))
}

func TestBind_MissingSideIsNoOp(t *testing.T) {
	doc := NewDocument()
	doc.AddField("input-phone")

	// Preview absent; must not panic, field keeps working.
	Bind(doc, "input-phone", "preview-phone")
	doc.SetValue("input-phone", "010-1234-5678")

	assert.Equal(t, "", doc.PreviewText("preview-phone"))
}

func TestBind_Idempotent(t *testing.T) {
	doc := NewDocument()
	doc.AddField("input-name")
	doc.AddPreview("preview-name")

	Bind(doc, "input-name", "preview-name")
	Bind(doc, "input-name", "preview-name")
	doc.SetValue("input-name", "Lee")

	assert.Equal(t, "Lee", doc.PreviewText("preview-name"))
}

func TestBindCombined_MajorAndDegree(t *testing.T) {
	doc := NewDocument()
	doc.AddField("input-edu-major")
	doc.AddField("input-edu-degree")
	doc.AddPreview("preview-edu-major")

	BindCombined(doc, "input-edu-major", "input-edu-degree", "preview-edu-major", " / ")

	doc.SetValue("input-edu-major", "Computer Science")
	assert.Equal(t, "Computer Science", doc.PreviewText("preview-edu-major"))

	doc.SetValue("input-edu-degree", "BSc")
	assert.Equal(t, "Computer Science / BSc", doc.PreviewText("preview-edu-major"))

	doc.SetValue("input-edu-major", "")
	assert.Equal(t, "BSc", doc.PreviewText("preview-edu-major"))
}

func TestBindCombined_RoleAndTech(t *testing.T) {
	f := NewForm()
	doc := f.Document()

	doc.SetValue(ProjFieldID(1, "role"), "Backend")
	doc.SetValue(ProjFieldID(1, "tech"), "Go, Postgres")

	assert.Equal(t, "Backend · Go, Postgres", doc.PreviewText(ProjPreviewID(1, "role")))
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Java", "python", "Go"}, SplitSkills(" Java,  python,,Go, "))
	assert.Empty(t, SplitSkills(" , ,"))
	assert.Empty(t, SplitSkills(""))
}

func TestBindSkillTags(t *testing.T) {
	doc := NewDocument()
	doc.AddField("input-skill-list")
	doc.AddPreview("preview-skill-list")

	BindSkillTags(doc, "input-skill-list", "preview-skill-list")
	doc.SetValue("input-skill-list", "Java, , Spring Boot ,MySQL")

	assert.Equal(t, "Java, Spring Boot, MySQL", doc.PreviewText("preview-skill-list"))
}

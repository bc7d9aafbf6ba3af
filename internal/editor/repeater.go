package editor

import "fmt"

// expFieldNames and projFieldNames define the field set of one block; the
// first block built from these is the template every later block repeats.
var (
	expFieldNames  = []string{"company", "position", "period", "desc"}
	projFieldNames = []string{"name", "role", "period", "tech", "desc"}
)

// AddExperienceBlock appends one experience block. It returns false without
// changing the count when the cap is reached (surfacing a warning through
// Notify) or when the template block is missing. The synchronizer calls this
// programmatically during load; the UI calls it on click.
func (f *Form) AddExperienceBlock() bool {
	if f.expCount >= MaxBlocks {
		f.Notify(fmt.Sprintf("최대 %d개까지 경력을 추가할 수 있습니다.", MaxBlocks))
		return false
	}
	if f.doc.Field(ExpFieldID(1, "company")) == nil {
		return false
	}

	f.buildExperienceBlock(f.expCount + 1)
	f.expCount++
	return true
}

// AddProjectBlock appends one project block under the same rules.
func (f *Form) AddProjectBlock() bool {
	if f.projCount >= MaxBlocks {
		f.Notify(fmt.Sprintf("최대 %d개까지 프로젝트를 추가할 수 있습니다.", MaxBlocks))
		return false
	}
	if f.doc.Field(ProjFieldID(1, "name")) == nil {
		return false
	}

	f.buildProjectBlock(f.projCount + 1)
	f.projCount++
	return true
}

// buildExperienceBlock creates the fields, previews, heading and bindings of
// experience block n. All values start empty.
func (f *Form) buildExperienceBlock(n int) {
	doc := f.doc

	for _, name := range expFieldNames {
		doc.AddField(ExpFieldID(n, name))
		doc.AddPreview(ExpPreviewID(n, name))
	}
	doc.AddPreview(expHeadingID(n)).SetText(fmt.Sprintf("경력 %d", n))

	for _, name := range expFieldNames {
		Bind(doc, ExpFieldID(n, name), ExpPreviewID(n, name))
	}
}

// buildProjectBlock creates the fields, previews, heading and bindings of
// project block n. The role preview shows the combined "role · tech" text.
func (f *Form) buildProjectBlock(n int) {
	doc := f.doc

	for _, name := range projFieldNames {
		doc.AddField(ProjFieldID(n, name))
	}
	for _, name := range []string{"name", "role", "period", "desc"} {
		doc.AddPreview(ProjPreviewID(n, name))
	}
	doc.AddPreview(projHeadingID(n)).SetText(fmt.Sprintf("프로젝트 %d", n))

	Bind(doc, ProjFieldID(n, "name"), ProjPreviewID(n, "name"))
	Bind(doc, ProjFieldID(n, "period"), ProjPreviewID(n, "period"))
	Bind(doc, ProjFieldID(n, "desc"), ProjPreviewID(n, "desc"))
	BindCombined(doc, ProjFieldID(n, "role"), ProjFieldID(n, "tech"), ProjPreviewID(n, "role"), " · ")
}

func expHeadingID(n int) string { return fmt.Sprintf("label-exp%d", n) }

func projHeadingID(n int) string { return fmt.Sprintf("label-proj%d", n) }

// ExperienceHeading returns the visible heading of experience block n.
func (f *Form) ExperienceHeading(n int) string {
	return f.doc.PreviewText(expHeadingID(n))
}

// ProjectHeading returns the visible heading of project block n.
func (f *Form) ProjectHeading(n int) string {
	return f.doc.PreviewText(projHeadingID(n))
}

package editor

import "strings"

// Bind wires one-way reflection from a field to a preview element: every
// change of the field's value sets the element text to the value verbatim.
// If either side is missing the call is a no-op. If the field already holds
// a value the preview is synchronized immediately; binding twice is
// harmless.
func Bind(doc *Document, fieldID, previewID string) {
	field := doc.Field(fieldID)
	preview := doc.Preview(previewID)
	if field == nil || preview == nil {
		return
	}

	field.OnChange(func(value string) {
		preview.SetText(value)
	})

	if field.Value() != "" {
		preview.SetText(field.Value())
	}
}

// BindCombined listens to two fields and writes "a <sep> b" to the preview,
// re-running on every change of either field. Empty halves collapse: only
// the non-empty half is shown, without the separator.
func BindCombined(doc *Document, firstID, secondID, previewID, sep string) {
	first := doc.Field(firstID)
	second := doc.Field(secondID)
	preview := doc.Preview(previewID)
	if first == nil || second == nil || preview == nil {
		return
	}

	update := func(string) {
		a := strings.TrimSpace(first.Value())
		b := strings.TrimSpace(second.Value())

		text := a
		if b != "" {
			if a != "" {
				text += sep
			}
			text += b
		}
		preview.SetText(text)
	}

	first.OnChange(update)
	second.OnChange(update)
	update("")
}

// SplitSkills turns the comma-separated skill field value into the tag list
// shown in the preview: split on commas, trim, drop empties. Duplicates are
// kept here; de-duplication happens at save time against the skill master.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// BindSkillTags renders the skill field into the preview as a comma-joined
// tag list on every change.
func BindSkillTags(doc *Document, fieldID, previewID string) {
	field := doc.Field(fieldID)
	preview := doc.Preview(previewID)
	if field == nil || preview == nil {
		return
	}

	render := func(value string) {
		preview.SetText(strings.Join(SplitSkills(value), ", "))
	}

	field.OnChange(render)
	if field.Value() != "" {
		render(field.Value())
	}
}

// Package editor models the resume edit screen: a document of editable
// fields and read-only preview elements, one-way field-to-preview bindings,
// and dynamic repetition of experience/project blocks.
//
// The browser original wired real DOM nodes by id and cloned markup to add
// blocks. Here blocks are indexed view-models: identifiers are derived from
// the block index at creation time, never rewritten, but the naming scheme
// ("input-exp2-company", "preview-proj3-role") is kept so form state maps
// one-to-one onto the original screen.
package editor

// Field is an editable input. Changing its value notifies listeners, which
// is how bindings push text into the preview.
type Field struct {
	id        string
	value     string
	listeners []func(value string)
}

// ID returns the field identifier.
func (f *Field) ID() string { return f.id }

// Value returns the current value.
func (f *Field) Value() string { return f.value }

// SetValue stores the value and fires all listeners, mirroring an input
// event. Listeners fire even when the value is unchanged; bindings are
// idempotent so this is harmless.
func (f *Field) SetValue(value string) {
	f.value = value
	for _, fn := range f.listeners {
		fn(value)
	}
}

// OnChange registers a listener fired on every SetValue.
func (f *Field) OnChange(fn func(value string)) {
	f.listeners = append(f.listeners, fn)
}

// Element is a read-only preview node holding display text.
type Element struct {
	id   string
	text string
}

// ID returns the element identifier.
func (e *Element) ID() string { return e.id }

// Text returns the displayed text.
func (e *Element) Text() string { return e.text }

// SetText replaces the displayed text.
func (e *Element) SetText(text string) { e.text = text }

// Document is the registry of fields and preview elements for one edit
// session. Lookups for absent identifiers return nil; callers treat missing
// markup as tolerable, not as an error.
type Document struct {
	fields   map[string]*Field
	previews map[string]*Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		fields:   make(map[string]*Field),
		previews: make(map[string]*Element),
	}
}

// AddField registers an editable field. Re-adding an existing id returns the
// existing field unchanged.
func (d *Document) AddField(id string) *Field {
	if f, ok := d.fields[id]; ok {
		return f
	}
	f := &Field{id: id}
	d.fields[id] = f
	return f
}

// AddPreview registers a preview element, reusing an existing one.
func (d *Document) AddPreview(id string) *Element {
	if e, ok := d.previews[id]; ok {
		return e
	}
	e := &Element{id: id}
	d.previews[id] = e
	return e
}

// Field returns the field with the given id, or nil.
func (d *Document) Field(id string) *Field { return d.fields[id] }

// Preview returns the preview element with the given id, or nil.
func (d *Document) Preview(id string) *Element { return d.previews[id] }

// SetValue sets a field's value if the field exists.
func (d *Document) SetValue(id, value string) {
	if f := d.fields[id]; f != nil {
		f.SetValue(value)
	}
}

// Value returns a field's value, or "" when the field is absent.
func (d *Document) Value(id string) string {
	if f := d.fields[id]; f != nil {
		return f.value
	}
	return ""
}

// PreviewText returns a preview element's text, or "" when absent.
func (d *Document) PreviewText(id string) string {
	if e := d.previews[id]; e != nil {
		return e.text
	}
	return ""
}

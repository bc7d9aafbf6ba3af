package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExperienceBlock_UpToCap(t *testing.T) {
	f := NewForm()
	var warnings []string
	f.Notify = func(msg string) { warnings = append(warnings, msg) }

	for i := 0; i < 4; i++ {
		assert.True(t, f.AddExperienceBlock())
	}
	assert.Equal(t, 5, f.ExperienceCount())
	assert.Empty(t, warnings)

	// Sixth block is rejected with a warning; count unchanged.
	assert.False(t, f.AddExperienceBlock())
	assert.Equal(t, 5, f.ExperienceCount())
	assert.Len(t, warnings, 1)
}

func TestAddExperienceBlock_DisjointIdentifiers(t *testing.T) {
	f := NewForm()
	for i := 0; i < 4; i++ {
		require.True(t, f.AddExperienceBlock())
	}

	seen := map[string]bool{}
	for n := 1; n <= 5; n++ {
		for _, name := range []string{"company", "position", "period", "desc"} {
			id := ExpFieldID(n, name)
			require.NotNil(t, f.Document().Field(id), "field %s must exist", id)
			assert.False(t, seen[id], "identifier %s must be unique", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, 20)
}

func TestAddExperienceBlock_NewBlockIsEmptyAndBound(t *testing.T) {
	f := NewForm()
	f.SetExperience(1, ExperienceValues{Company: "JobRecord Inc"})

	require.True(t, f.AddExperienceBlock())

	// Clone starts empty even though block 1 has values.
	assert.Equal(t, ExperienceValues{}, f.Experience(2))
	assert.Equal(t, "경력 2", f.ExperienceHeading(2))

	// New fields are wired to their own previews, not block 1's.
	f.Document().SetValue(ExpFieldID(2, "company"), "StockMatch Lab")
	assert.Equal(t, "StockMatch Lab", f.Document().PreviewText(ExpPreviewID(2, "company")))
	assert.Equal(t, "JobRecord Inc", f.Document().PreviewText(ExpPreviewID(1, "company")))
}

func TestAddProjectBlock_CapAndCombiner(t *testing.T) {
	f := NewForm()
	var warned bool
	f.Notify = func(string) { warned = true }

	for i := 0; i < 4; i++ {
		require.True(t, f.AddProjectBlock())
	}
	assert.False(t, f.AddProjectBlock())
	assert.Equal(t, 5, f.ProjectCount())
	assert.True(t, warned)

	// Role+tech combiner is applied to every created block.
	for n := 2; n <= 5; n++ {
		f.Document().SetValue(ProjFieldID(n, "role"), fmt.Sprintf("Role%d", n))
		f.Document().SetValue(ProjFieldID(n, "tech"), "Go")
		assert.Equal(t, fmt.Sprintf("Role%d · Go", n), f.Document().PreviewText(ProjPreviewID(n, "role")))
	}
}

func TestAddBlock_MissingTemplateIsNoOp(t *testing.T) {
	// A form whose document lacks the template block: AddBlock must refuse
	// without warning or panic.
	f := &Form{doc: NewDocument(), Notify: func(string) { t.Fatal("unexpected warning") }}

	assert.False(t, f.AddExperienceBlock())
	assert.False(t, f.AddProjectBlock())
	assert.Equal(t, 0, f.ExperienceCount())
}

func TestMaterializeSavedBlocks(t *testing.T) {
	// Reproducing N saved entries takes count-1 add calls, the load pattern
	// used by the synchronizer.
	f := NewForm()
	entries := 3
	for i := 2; i <= entries; i++ {
		require.True(t, f.AddExperienceBlock())
	}
	assert.Equal(t, entries, f.ExperienceCount())

	for n := 1; n <= entries; n++ {
		f.SetExperience(n, ExperienceValues{Company: fmt.Sprintf("Company %d", n)})
	}
	for n := 1; n <= entries; n++ {
		assert.Equal(t, fmt.Sprintf("Company %d", n), f.Experience(n).Company)
	}
}

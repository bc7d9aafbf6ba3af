// Package matching scores a resume against a job posting by skill overlap.
// The baseline matcher works on plain text; the Gemini matcher extracts the
// posting's required skills with an LLM first and scores against those.
package matching

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jobproj/resume-builder/internal/types"
)

// Result is the outcome of matching a resume against a job posting.
type Result struct {
	// Score is the fraction of required skills covered, 0 to 1.
	Score float64 `json:"score"`
	// Matched lists required skills the resume covers, in their required form.
	Matched []string `json:"matched"`
	// Missing lists required skills the resume does not cover.
	Missing []string `json:"missing"`
}

// normalizeSkill lowercases and collapses whitespace so "Spring  Boot" and
// "spring boot" compare equal. Symbols stay: "C#" and "C++" are distinct
// skills.
func normalizeSkill(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// documentSkills collects the normalized skill names of a document.
func documentSkills(doc *types.ResumeDocument) map[string]bool {
	set := make(map[string]bool)
	if doc == nil {
		return set
	}
	for _, skill := range doc.Skills {
		if normalized := normalizeSkill(skill.Name); normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

// Score compares the resume's skills against a required skill list. Required
// skills are deduplicated case-insensitively; the first spelling wins for
// reporting.
func Score(doc *types.ResumeDocument, required []string) Result {
	have := documentSkills(doc)

	seen := make(map[string]bool)
	result := Result{Matched: []string{}, Missing: []string{}}
	total := 0

	for _, req := range required {
		normalized := normalizeSkill(req)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		total++

		if have[normalized] {
			result.Matched = append(result.Matched, req)
		} else {
			result.Missing = append(result.Missing, req)
		}
	}

	if total > 0 {
		result.Score = float64(len(result.Matched)) / float64(total)
	}
	return result
}

// wordBoundary matches characters that end a skill mention in prose.
var wordBoundary = regexp.MustCompile(`[a-z0-9#+.]`)

// MatchText scores the resume against raw job posting text: each resume skill
// that appears in the text counts as matched. Matching is case-insensitive
// and requires the mention to not be embedded in a longer word, so "Go" does
// not match "Google". Matched skills come back sorted.
func MatchText(doc *types.ResumeDocument, jobText string) Result {
	textLower := strings.ToLower(jobText)

	result := Result{Matched: []string{}, Missing: []string{}}
	seen := make(map[string]bool)
	total := 0

	for _, skill := range doc.Skills {
		normalized := normalizeSkill(skill.Name)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		total++

		if mentions(textLower, normalized) {
			result.Matched = append(result.Matched, skill.Name)
		} else {
			result.Missing = append(result.Missing, skill.Name)
		}
	}

	sort.Strings(result.Matched)
	sort.Strings(result.Missing)

	if total > 0 {
		result.Score = float64(len(result.Matched)) / float64(total)
	}
	return result
}

// mentions reports whether needle occurs in haystack bounded by
// non-word characters. Both arguments must already be lowercase.
func mentions(haystack, needle string) bool {
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return false
		}
		idx += from

		beforeOK := idx == 0 || !wordBoundary.MatchString(string(haystack[idx-1]))
		afterIdx := idx + len(needle)
		afterOK := afterIdx >= len(haystack) || !wordBoundary.MatchString(string(haystack[afterIdx]))
		if beforeOK && afterOK {
			return true
		}

		from = idx + 1
		if from >= len(haystack) {
			return false
		}
	}
}

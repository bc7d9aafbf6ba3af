// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jobproj/resume-builder/internal/matching"
	"github.com/jobproj/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentSummary outputs a human-readable summary of a resume document.
func (p *Printer) PrintDocumentSummary(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", doc.Resume.Title))
	if doc.Resume.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Resume.Name))
	}
	sb.WriteString(fmt.Sprintf("Public:   %v\n", doc.Resume.IsPublic))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Educations:  %d\n", len(doc.Educations)))
	sb.WriteString(fmt.Sprintf("Experiences: %d\n", len(doc.Experiences)))
	sb.WriteString(fmt.Sprintf("Projects:    %d\n", len(doc.Projects)))

	if len(doc.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(doc.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", doc.Skills[i].Name))
		}
		if len(doc.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Skills)-maxItemsToShow))
		}
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the job matching outcome with matched and missing
// skills.
func (p *Printer) PrintMatchResult(result matching.Result) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %.0f%%\n", result.Score*100))

	if len(result.Matched) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(result.Matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", result.Matched[i]))
		}
		if len(result.Matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Matched)-maxItemsToShow))
		}
	}

	if len(result.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(result.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", result.Missing[i]))
		}
		if len(result.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Missing)-maxItemsToShow))
		}
	}

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSchemaErrors outputs document schema validation failures.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSchemaErrors(fields []string) {
	if len(fields) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ DOCUMENT VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d schema violations:\n\n", len(fields)))
	for i, field := range fields {
		if len(field) > 50 {
			field = field[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s", field))
		if i < len(fields)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", sb.String())
}

// Package export turns resume documents into shareable artifacts. HTML export
// is a plain render-and-write; PDF export prints the rendered HTML through a
// headless browser so the output matches the preview pixel for pixel.
// PDF export requires Chrome/Chromium to be installed on the system.
package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jobproj/resume-builder/internal/rendering"
	"github.com/jobproj/resume-builder/internal/types"
)

// DefaultTimeout bounds the whole browser session for one PDF export.
const DefaultTimeout = 60 * time.Second

// A4 paper size in inches, what PrintToPDF expects.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// Options controls a single export.
type Options struct {
	// Theme selects the preview theme; empty means rendering.DefaultTheme.
	Theme string
	// Output is the destination path. Empty derives a name from the resume
	// title next to the working directory.
	Output string
	// Timeout bounds the browser session for PDF export. Zero means
	// DefaultTimeout.
	Timeout time.Duration
	// Verbose enables progress logging.
	Verbose bool
}

// ToHTML renders the document and writes it to the output path. Returns the
// path written.
func ToHTML(doc *types.ResumeDocument, opts Options) (string, error) {
	renderer, err := rendering.NewRenderer()
	if err != nil {
		return "", err
	}

	html, err := renderer.RenderHTML(doc, opts.Theme)
	if err != nil {
		return "", err
	}

	output := opts.Output
	if output == "" {
		output = DefaultOutputName(doc, ".html")
	}

	if err := os.WriteFile(output, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("failed to write HTML export: %w", err)
	}

	if opts.Verbose {
		log.Printf("[EXPORT] Wrote HTML: %s (%d bytes)", output, len(html))
	}

	return output, nil
}

// ToPDF renders the document, loads it in a headless browser and prints it to
// PDF. Returns the path written.
func ToPDF(ctx context.Context, doc *types.ResumeDocument, opts Options) (string, error) {
	renderer, err := rendering.NewRenderer()
	if err != nil {
		return "", err
	}

	html, err := renderer.RenderHTML(doc, opts.Theme)
	if err != nil {
		return "", err
	}

	// The browser needs a URL, so stage the HTML in a temp file.
	tmpDir, err := os.MkdirTemp("", "resume-export-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpHTML := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(tmpHTML, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("failed to stage HTML: %w", err)
	}

	pdf, err := printToPDF(ctx, "file://"+tmpHTML, opts)
	if err != nil {
		return "", err
	}

	output := opts.Output
	if output == "" {
		output = DefaultOutputName(doc, ".pdf")
	}

	if err := os.WriteFile(output, pdf, 0644); err != nil {
		return "", fmt.Errorf("failed to write PDF export: %w", err)
	}

	if opts.Verbose {
		log.Printf("[EXPORT] Wrote PDF: %s (%d bytes)", output, len(pdf))
	}

	return output, nil
}

// printToPDF loads the URL in a headless browser and prints the page.
func printToPDF(ctx context.Context, url string, opts Options) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	if opts.Verbose {
		log.Printf("[EXPORT] Starting headless browser for: %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf printing failed: %w", err)
	}

	return pdf, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9가-힣._-]+`)

// DefaultOutputName derives a filesystem-safe filename from the resume title,
// falling back to "resume" when the title yields nothing usable.
func DefaultOutputName(doc *types.ResumeDocument, ext string) string {
	name := "resume"
	if doc != nil && strings.TrimSpace(doc.Resume.Title) != "" {
		cleaned := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(doc.Resume.Title), "-")
		cleaned = strings.Trim(cleaned, "-.")
		if cleaned != "" {
			name = cleaned
		}
	}
	return name + ext
}

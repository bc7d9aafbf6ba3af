package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobproj/resume-builder/internal/config"
	"github.com/jobproj/resume-builder/internal/export"
	"github.com/jobproj/resume-builder/internal/rendering"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a document to themed HTML",
	Long:  "Render a local resume document to an HTML file with one of the bundled themes.",
	RunE:  runPreview,
}

var (
	previewDocument string
	previewTheme    string
	previewOutput   string
	previewList     bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewDocument, "document", "d", "", "Document path to render")
	previewCmd.Flags().StringVar(&previewTheme, "theme", "", "Theme name (default classic)")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Output HTML path")
	previewCmd.Flags().BoolVar(&previewList, "list-themes", false, "List available themes and exit")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if previewList {
		renderer, err := rendering.NewRenderer()
		if err != nil {
			return err
		}
		for _, theme := range renderer.Themes() {
			fmt.Fprintln(os.Stdout, theme)
		}
		return nil
	}

	cfg, err := resolveConfig(config.Config{
		Document: previewDocument,
		Theme:    previewTheme,
		Output:   previewOutput,
	})
	if err != nil {
		return err
	}

	doc, err := readDocument(cfg.Document)
	if err != nil {
		return err
	}

	path, err := export.ToHTML(doc, export.Options{
		Theme:   cfg.Theme,
		Output:  cfg.Output,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Rendered preview: %s\n", path)
	return nil
}

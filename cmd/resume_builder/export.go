package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobproj/resume-builder/internal/config"
	"github.com/jobproj/resume-builder/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a document to PDF",
	Long:  "Render a local resume document with a theme and print it to PDF through a headless browser. Requires Chrome/Chromium.",
	RunE:  runExport,
}

var (
	exportDocument string
	exportTheme    string
	exportOutput   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportDocument, "document", "d", "", "Document path to export")
	exportCmd.Flags().StringVar(&exportTheme, "theme", "", "Theme name (default classic)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output PDF path")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(config.Config{
		Document: exportDocument,
		Theme:    exportTheme,
		Output:   exportOutput,
	})
	if err != nil {
		return err
	}

	doc, err := readDocument(cfg.Document)
	if err != nil {
		return err
	}

	path, err := export.ToPDF(cmd.Context(), doc, export.Options{
		Theme:   cfg.Theme,
		Output:  cfg.Output,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Exported PDF: %s\n", path)
	return nil
}

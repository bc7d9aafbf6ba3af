package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobproj/resume-builder/internal/config"
	"github.com/jobproj/resume-builder/internal/observability"
	"github.com/jobproj/resume-builder/internal/syncer"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download a resume into a local document file",
	Long:  "Fetch a resume and all of its sections from the server and write them to a local JSON document.",
	RunE:  runPull,
}

var (
	pullServerURL string
	pullToken     string
	pullResumeID  int64
	pullDocument  string
)

func init() {
	pullCmd.Flags().StringVar(&pullServerURL, "server", "", "Base URL of the resume API")
	pullCmd.Flags().StringVar(&pullToken, "token", "", "Bearer token")
	pullCmd.Flags().Int64Var(&pullResumeID, "resume-id", 0, "Resume to pull")
	pullCmd.Flags().StringVarP(&pullDocument, "document", "d", "", "Output document path")

	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(config.Config{
		ServerURL: pullServerURL,
		Token:     pullToken,
		ResumeID:  pullResumeID,
		Document:  pullDocument,
	})
	if err != nil {
		return err
	}
	if cfg.ResumeID <= 0 {
		return fmt.Errorf("a positive --resume-id is required")
	}
	if cfg.Document == "" {
		return fmt.Errorf("document path is required (--document or 'document' in config)")
	}

	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	doc, err := syncer.PullDocument(cmd.Context(), client, cfg.ResumeID)
	if err != nil {
		return err
	}

	if err := writeDocument(cfg.Document, doc); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintDocumentSummary(doc)
	}
	fmt.Fprintf(os.Stdout, "Pulled resume %d to %s\n", cfg.ResumeID, cfg.Document)
	return nil
}

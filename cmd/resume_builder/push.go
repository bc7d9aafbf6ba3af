package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobproj/resume-builder/internal/config"
	"github.com/jobproj/resume-builder/internal/syncer"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload a local document to the server",
	Long:  "Validate a local resume document against the schema, then replace the remote resume's content with it.",
	RunE:  runPush,
}

var (
	pushServerURL string
	pushToken     string
	pushResumeID  int64
	pushDocument  string
)

func init() {
	pushCmd.Flags().StringVar(&pushServerURL, "server", "", "Base URL of the resume API")
	pushCmd.Flags().StringVar(&pushToken, "token", "", "Bearer token")
	pushCmd.Flags().Int64Var(&pushResumeID, "resume-id", 0, "Resume to push into")
	pushCmd.Flags().StringVarP(&pushDocument, "document", "d", "", "Document path to upload")

	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(config.Config{
		ServerURL: pushServerURL,
		Token:     pushToken,
		ResumeID:  pushResumeID,
		Document:  pushDocument,
	})
	if err != nil {
		return err
	}
	if cfg.ResumeID <= 0 {
		return fmt.Errorf("a positive --resume-id is required")
	}

	doc, err := readDocument(cfg.Document)
	if err != nil {
		return err
	}

	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	if err := syncer.PushDocument(cmd.Context(), client, cfg.ResumeID, doc); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Pushed %s to resume %d\n", cfg.Document, cfg.ResumeID)
	return nil
}

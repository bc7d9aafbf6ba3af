package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobproj/resume-builder/internal/config"
	"github.com/jobproj/resume-builder/internal/jobfetch"
	"github.com/jobproj/resume-builder/internal/matching"
	"github.com/jobproj/resume-builder/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a document against a job posting",
	Long:  "Score a local resume document against a job posting text file by skill overlap. With an API key, required skills are extracted by Gemini first; otherwise the posting text is matched directly.",
	RunE:  runMatch,
}

var (
	matchDocument string
	matchJob      string
	matchJobURL   string
	matchAPIKey   string
)

func init() {
	matchCmd.Flags().StringVarP(&matchDocument, "document", "d", "", "Document path to score")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Job posting text file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "Job posting URL to fetch")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(config.Config{
		Document: matchDocument,
		Job:      matchJob,
		APIKey:   matchAPIKey,
	})
	if err != nil {
		return err
	}
	if cfg.Job == "" && matchJobURL == "" {
		return fmt.Errorf("a job posting is required (--job, --job-url or 'job' in config)")
	}
	if cfg.Job != "" && matchJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	doc, err := readDocument(cfg.Document)
	if err != nil {
		return err
	}

	var jobText string
	if matchJobURL != "" {
		opts := jobfetch.DefaultOptions()
		opts.Verbose = cfg.Verbose
		jobText, err = jobfetch.JobText(cmd.Context(), matchJobURL, opts)
		if err != nil {
			return err
		}
	} else {
		raw, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job posting %s: %w", cfg.Job, err)
		}
		jobText = string(raw)
	}

	var result matching.Result
	if cfg.APIKey != "" {
		matcher, err := matching.NewGeminiMatcher(cmd.Context(), cfg.APIKey)
		if err != nil {
			return err
		}
		defer matcher.Close()

		result, err = matcher.Match(cmd.Context(), doc, jobText)
		if err != nil {
			return err
		}
	} else {
		result = matching.MatchText(doc, jobText)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(result)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Match score: %.0f%%\n", result.Score*100)
	if len(result.Matched) > 0 {
		fmt.Fprintf(os.Stdout, "Matched: %s\n", strings.Join(result.Matched, ", "))
	}
	if len(result.Missing) > 0 {
		fmt.Fprintf(os.Stdout, "Missing: %s\n", strings.Join(result.Missing, ", "))
	}
	return nil
}

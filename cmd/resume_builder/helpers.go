package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jobproj/resume-builder/internal/api"
	"github.com/jobproj/resume-builder/internal/config"
	"github.com/jobproj/resume-builder/internal/schemas"
	"github.com/jobproj/resume-builder/internal/types"
)

// resolveConfig merges flag values over the optional config file. The file
// acts as defaults; any flag the user set wins.
func resolveConfig(flags config.Config) (config.Config, error) {
	if verbose {
		flags.Verbose = true
	}

	if configPath == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}

	merged := flags.MergeWithDefaults(*fileCfg)
	if fileCfg.Verbose {
		merged.Verbose = true
	}
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// newAPIClient builds an authenticated client from config. Server URL and
// token are both required for any remote command.
func newAPIClient(cfg config.Config) (*api.Client, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("server URL is required (--server or 'server_url' in config)")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("bearer token is required (--token or 'token' in config)")
	}
	return api.New(cfg.ServerURL, &api.Options{Token: cfg.Token})
}

// readDocument validates and loads a local resume document file.
func readDocument(path string) (*types.ResumeDocument, error) {
	if path == "" {
		return nil, fmt.Errorf("document path is required (--document or 'document' in config)")
	}

	if err := schemas.ValidateResumeDocumentFile(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}
	return &doc, nil
}

// writeDocument writes a resume document as indented JSON.
func writeDocument(path string, doc *types.ResumeDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}

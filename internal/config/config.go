// Package config provides configuration loading for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values fall back to defaults or CLI flags.
type Config struct {
	// Server connection
	ServerURL string `json:"server_url,omitempty"` // Base URL of the resume API
	Token     string `json:"token,omitempty"`      // Bearer token for API calls

	// Editing
	ResumeID int64  `json:"resume_id,omitempty"` // Resume to pull/push by default
	Document string `json:"document,omitempty"`  // Path to a local resume document JSON

	// Rendering and export
	Theme  string `json:"theme,omitempty"`  // Preview template theme name
	Output string `json:"output,omitempty"` // Output path for preview/export

	// Matching
	APIKey string `json:"api_key,omitempty"` // Gemini API key for job matching
	Job    string `json:"job,omitempty"`     // Path to a job posting text file

	// Server-side
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Addr        string `json:"addr,omitempty"`         // Listen address for serve
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for invalid values. Required fields are
// not checked here; flag validation after merging handles those.
func (c *Config) Validate() error {
	if c.ResumeID < 0 {
		return fmt.Errorf("config error: 'resume_id' must be non-negative")
	}

	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ServerURL == "" {
		result.ServerURL = defaults.ServerURL
	}
	if result.Token == "" {
		result.Token = defaults.Token
	}
	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}

	if result.ResumeID == 0 {
		result.ResumeID = defaults.ResumeID
	}

	// Bool fields: unset is indistinguishable from false, so flags always win.

	return result
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobproj/resume-builder/internal/config"
	"github.com/jobproj/resume-builder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume API server",
	Long:  "Start the HTTP API server backing the resume editor: auth, resume CRUD, section collections and the skill master.",
	RunE:  runServe,
}

var (
	serveAddr        string
	serveDatabaseURL string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(config.Config{Addr: serveAddr, DatabaseURL: serveDatabaseURL})
	if err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (--database-url, 'database_url' in config, or DATABASE_URL)")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	srv, err := server.New(server.Config{Addr: cfg.Addr, DatabaseURL: cfg.DatabaseURL})
	if err != nil {
		return err
	}
	return srv.Start()
}

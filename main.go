package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

var (
	rootCmd = &cobra.Command{
		Use:   "library",
		Short: "HTTP service for authors and books",
		Long: `library serves a small JSON API for authors and books stored in SQLite.

Run "library migrate" once to create the schema, then "library serve".
Configuration is read from the environment and from .env / .env.local.`,
		SilenceUsage: true,
		// Serving is the default when no command is given.
		RunE: runServe,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}

	resetSchema bool

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long: `Create missing tables and indexes. Existing data is kept.

With --reset every table is dropped and recreated; all data is lost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return entrypoint.Migrate(config.NewConfig(), resetSchema)
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("library %s (%s)\n", Version, Commit)
		},
	}
)

func runServe(cmd *cobra.Command, args []string) error {
	return entrypoint.Run(config.NewConfig(), Version)
}

func init() {
	migrateCmd.Flags().BoolVar(&resetSchema, "reset", false, "drop all tables before migrating")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

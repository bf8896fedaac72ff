// Package main provides the entry point for the link-doctor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "link_doctor",
	Short: "Diagnose broken links from a link-health report",
	Long: `link_doctor reads a link-health report, asks a hosted language model to
diagnose the broken (4xx/5xx) links and propose a correction, then checks
that the suggested correction answers 200 OK.

Run without arguments to process test_data.json in the current directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLinkDoctor,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

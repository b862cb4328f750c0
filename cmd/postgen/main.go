// Package main provides the postgen command that turns a product feed
// into ready-to-publish social post bundles.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "postgen",
	Short: "Generate social post bundles from a product feed",
	Long: "postgen reads a product spreadsheet (xlsx or csv) and writes one bundle per row: " +
		"square 1080x1080 images, a caption, alt text and a meta.json record.",
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

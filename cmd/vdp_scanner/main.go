// Package main provides the entry point for the VDP scanner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vdp_scanner",
	Short: "Vulnerability disclosure policy scanner",
	Long:  "Discovers, fetches, and classifies company vulnerability-disclosure and bug-bounty policy pages, starting from a CSV of company names and base URLs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

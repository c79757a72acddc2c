// Package main provides the triagectl CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	// logs share stdout with rendered output
	if os.Getenv("LOG_LEVEL") == "" {
		_ = os.Setenv("LOG_LEVEL", "warn")
	}

	rootCmd := &cobra.Command{
		Use:   "triagectl",
		Short: "Explain triage assessments and aggregate triage analytics",
		Long: `triagectl builds the "Why this prediction?" rationale for a triage
assessment and summarizes analytics datasets into dashboard snapshots.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newExplainCmd(),
		newAggregateCmd(),
		newDatasetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

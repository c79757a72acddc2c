package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"triage-insights-go/internal/dataset"
)

func newDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Work with analytics dataset files",
	}
	cmd.AddCommand(newDatasetTemplateCmd())
	return cmd
}

func newDatasetTemplateCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a workbook pre-filled with the demo dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dataset.Write(out, dataset.Demo()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "triage-analytics.xlsx", "Output workbook path")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"
	"triage-insights-go/internal/dataset"
	"triage-insights-go/internal/processor"
	"triage-insights-go/internal/render"
)

func newAggregateCmd() *cobra.Command {
	var (
		datasetPath string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Summarize an analytics dataset into a dashboard snapshot",
		Long:  `Reads an .xlsx or .json dataset (the demo dataset when --dataset is omitted) and prints the snapshot and key insights.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := render.ForFormat(outputFmt)
			if err != nil {
				return err
			}

			ds := dataset.Demo()
			if datasetPath != "" {
				if ds, err = dataset.LoadAndSummarize(datasetPath); err != nil {
					return err
				}
			}

			res, err := processor.BuildDashboard(ds)
			if err != nil {
				return err
			}
			return r.Dashboard(cmd.OutOrStdout(), &res)
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "Path to an .xlsx or .json dataset (default: demo data)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

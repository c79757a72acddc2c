package main

import (
	"github.com/spf13/cobra"
	"triage-insights-go/internal/config"
	"triage-insights-go/internal/processor"
	"triage-insights-go/internal/render"
	"triage-insights-go/internal/types"
)

func newExplainCmd() *cobra.Command {
	var (
		symptoms    string
		duration    string
		severity    int
		riskFactors []string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Build the rationale sections for an assessment",
		Long: `Builds the ordered explanation sections for one assessment. Duration and
severity fall back to the configured defaults when the flags are not given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.AssessmentRequest{RiskFactors: riskFactors}
			if cmd.Flags().Changed("symptoms") {
				req.Symptoms = &symptoms
			}
			if cmd.Flags().Changed("duration") {
				req.Duration = &duration
			}
			if cmd.Flags().Changed("severity") {
				req.Severity = &severity
			}

			r, err := render.ForFormat(outputFmt)
			if err != nil {
				return err
			}
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}

			res, err := processor.Explain(req, cfg.Explain.Defaults())
			if err != nil {
				return err
			}
			return r.Explanation(cmd.OutOrStdout(), &res)
		},
	}

	cmd.Flags().StringVar(&symptoms, "symptoms", "", "Free-text symptom description (required)")
	cmd.Flags().StringVar(&duration, "duration", "", "How long symptoms have lasted")
	cmd.Flags().IntVar(&severity, "severity", 0, "Severity score 1-10")
	cmd.Flags().StringArrayVar(&riskFactors, "risk-factor", nil, "Risk factor (repeatable)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("symptoms")

	return cmd
}

package render

import (
	"fmt"
	"io"
	"strings"

	"triage-insights-go/internal/processor"
)

// TextRenderer writes plain text, one block per section.
type TextRenderer struct{}

func (r *TextRenderer) Explanation(w io.Writer, res *processor.ExplanationResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Why this prediction? (severity %d, %s urgency)\n", res.Assessment.Severity, res.Bucket.Word())
	for _, s := range res.Sections {
		fmt.Fprintf(&b, "\n%s\n%s\n", s.Heading, strings.Repeat("-", len(s.Heading)))
		if len(s.Items) > 0 {
			for _, item := range s.Items {
				fmt.Fprintf(&b, "  • %s\n", item)
			}
			continue
		}
		fmt.Fprintf(&b, "%s\n", s.Body)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TextRenderer) Dashboard(w io.Writer, res *processor.DashboardResult) error {
	snap := res.Snapshot
	var b strings.Builder

	fmt.Fprintf(&b, "Total patients:       %d\n", snap.TotalPatients)
	fmt.Fprintf(&b, "Emergency estimate:   %d\n", snap.EmergencyCaseEstimate)

	if len(snap.CategoryBreakdown) > 0 {
		b.WriteString("\nSymptom categories\n")
		for _, c := range snap.CategoryBreakdown {
			fmt.Fprintf(&b, "  %-20s %5d\n", c.Category, c.Count)
		}
	}
	if len(snap.RiskTrend) > 0 {
		b.WriteString("\nRisk trend\n")
		for _, p := range snap.RiskTrend {
			fmt.Fprintf(&b, "  %-8s avg risk %5.1f  emergencies %d\n", p.Period, p.AvgRisk, p.Emergencies)
		}
	}
	if len(snap.DetectionAccuracy) > 0 {
		b.WriteString("\nDetection accuracy\n")
		for _, p := range snap.DetectionAccuracy {
			fmt.Fprintf(&b, "  %-8s flagged %3d  actual %3d\n", p.Week, p.Flagged, p.Actual)
		}
	}
	if len(snap.RiskDistribution) > 0 {
		b.WriteString("\nRisk distribution\n")
		for _, s := range snap.RiskDistribution {
			fmt.Fprintf(&b, "  %-8s %5.1f%%\n", s.RiskLevel, s.Percentage)
		}
	}
	if len(res.Insights) > 0 {
		b.WriteString("\nKey insights\n")
		for _, c := range res.Insights {
			fmt.Fprintf(&b, "  %-26s %6s  %s\n", c.Insight, c.Value, c.Detail)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

package processor

import (
	"time"

	"triage-insights-go/internal/actionable"
	"triage-insights-go/internal/aggregator"
	"triage-insights-go/internal/explain"
	"triage-insights-go/internal/logger"
	"triage-insights-go/internal/metric"
	"triage-insights-go/internal/types"
)

// ExplanationResult is returned by POST /api/v1/explanations
type ExplanationResult struct {
	Assessment types.TriageAssessment     `json:"assessment"`
	Bucket     metric.Bucket              `json:"severity_bucket"`
	Sections   []types.ExplanationSection `json:"sections"`
	DurationMs int64                      `json:"duration_ms"`
	Error      string                     `json:"error,omitempty"`
}

// DashboardResult is returned by the analytics endpoints
type DashboardResult struct {
	Snapshot   types.AnalyticsSnapshot  `json:"snapshot"`
	Insights   []actionable.InsightCard `json:"insights"`
	DurationMs int64                    `json:"duration_ms"`
	Error      string                   `json:"error,omitempty"`
}

// Explain fills unset request fields from defaults and synthesizes the
// explanation sections for the resulting assessment.
func Explain(req types.AssessmentRequest, defaults explain.Defaults) (ExplanationResult, error) {
	log := logger.New().WithField("component", "processor")
	start := time.Now()

	a := defaults.Apply(req)
	res := ExplanationResult{Assessment: a, Bucket: metric.SeverityBucketFor(a.Severity)}

	sections, err := explain.Synthesize(a)
	if err != nil {
		res.Error = err.Error()
		res.DurationMs = time.Since(start).Milliseconds()
		log.WithError(err).Warn("explanation rejected")
		return res, err
	}
	res.Sections = sections
	res.DurationMs = time.Since(start).Milliseconds()

	log.WithField("sections", len(sections)).
		WithField("bucket", res.Bucket).
		WithField("duration_ms", res.DurationMs).
		Debug("explanation built")
	return res, nil
}

// BuildDashboard aggregates ds into a snapshot plus its key insight cards.
func BuildDashboard(ds types.Dataset) (DashboardResult, error) {
	log := logger.New().WithField("component", "processor")
	start := time.Now()
	var res DashboardResult

	snap, err := aggregator.AggregateDataset(ds)
	if err != nil {
		res.Error = err.Error()
		res.DurationMs = time.Since(start).Milliseconds()
		log.WithError(err).Warn("aggregation failed")
		return res, err
	}
	res.Snapshot = snap
	res.Insights = actionable.Generate(snap)
	res.DurationMs = time.Since(start).Milliseconds()

	log.WithField("total_patients", snap.TotalPatients).
		WithField("emergency_estimate", snap.EmergencyCaseEstimate).
		WithField("duration_ms", res.DurationMs).
		Debug("dashboard built")
	return res, nil
}

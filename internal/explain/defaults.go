package explain

import "triage-insights-go/internal/types"

// Defaults holds the values used for assessment fields the caller left out.
// The zero value is not useful; start from DefaultDefaults.
type Defaults struct {
	// Duration used when no duration is supplied (default: "Acute onset")
	Duration string
	// Severity used when no severity is supplied (default: 7)
	Severity int
}

// DefaultDefaults returns the documented defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		Duration: "Acute onset",
		Severity: 7,
	}
}

// Apply resolves req into a complete assessment. Only absent (nil) fields are
// defaulted; an explicitly empty duration is kept as is. Missing symptoms are
// left empty for Synthesize to reject.
func (d Defaults) Apply(req types.AssessmentRequest) types.TriageAssessment {
	a := types.TriageAssessment{
		Duration:    d.Duration,
		Severity:    d.Severity,
		RiskFactors: []string{},
	}
	if req.Symptoms != nil {
		a.Symptoms = *req.Symptoms
	}
	if req.Duration != nil {
		a.Duration = *req.Duration
	}
	if req.Severity != nil {
		a.Severity = *req.Severity
	}
	if len(req.RiskFactors) > 0 {
		a.RiskFactors = append(a.RiskFactors, req.RiskFactors...)
	}
	return a
}

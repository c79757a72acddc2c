package types

// TriageAssessment is the input to the explanation synthesizer.
// Defaults are expected to be applied before it reaches the synthesizer.
type TriageAssessment struct {
	Symptoms    string   `json:"symptoms"`
	Duration    string   `json:"duration"`
	Severity    int      `json:"severity"` // 1–10, not clamped
	RiskFactors []string `json:"risk_factors"`
}

// AssessmentRequest is the wire form of an assessment. Nil fields are absent
// and get their documented defaults.
type AssessmentRequest struct {
	Symptoms    *string  `json:"symptoms"`
	Duration    *string  `json:"duration,omitempty"`
	Severity    *int     `json:"severity,omitempty"`
	RiskFactors []string `json:"risk_factors,omitempty"`
}

type SectionLabel string

const (
	SectionSymptomMatch      SectionLabel = "symptom_match"
	SectionSeverityWeighting SectionLabel = "severity_weighting"
	SectionDurationInfluence SectionLabel = "duration_influence"
	SectionRiskFactors       SectionLabel = "risk_factors"
	SectionModelInfo         SectionLabel = "model_info"
)

// ExplanationSection is one labeled block of rationale text.
// Items is only set for list-shaped sections (risk factors).
type ExplanationSection struct {
	Label   SectionLabel `json:"label"`
	Heading string       `json:"heading"`
	Body    string       `json:"body"`
	Items   []string     `json:"items,omitempty"`
}

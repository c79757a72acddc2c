// Package explain turns a triage assessment into ordered rationale sections
// that a UI can show under "Why this prediction?".
package explain

import (
	"errors"
	"fmt"
	"strings"

	"triage-insights-go/internal/metric"
	"triage-insights-go/internal/types"
)

// ErrInvalidInput is returned when the mandatory symptoms text is missing.
var ErrInvalidInput = errors.New("invalid input")

// symptomExcerptLen is a hard rune cut, not word-boundary aware.
const symptomExcerptLen = 100

const (
	symptomMatchSuffix = ` closely match the typical presentation pattern for the identified conditions. ` +
		`Key symptom indicators were detected and weighted in the analysis.`
	severitySuffix = `This factor increases the risk score and influences condition probability rankings.`
	durationSuffix = `presentation affects the differential diagnosis. Acute symptoms require immediate ` +
		`evaluation while chronic symptoms may indicate different underlying conditions.`

	// ModelInfo is the fixed disclosure appended to every explanation.
	ModelInfo = `This prediction uses a multi-factor neural network trained on millions of medical cases. ` +
		`The model considers symptom patterns, temporal relationships, severity indicators, and clinical ` +
		`risk factors to generate probability-weighted differential diagnoses.`
)

// Synthesize builds the explanation for a. Sections come out in a fixed order:
// symptom match, severity weighting, duration influence, risk factors (only
// when a has any) and model info, which is always last.
func Synthesize(a types.TriageAssessment) ([]types.ExplanationSection, error) {
	if a.Symptoms == "" {
		return nil, fmt.Errorf("%w: symptoms is required", ErrInvalidInput)
	}

	sections := make([]types.ExplanationSection, 0, 5)
	sections = append(sections,
		symptomMatch(a.Symptoms),
		severityWeighting(a.Severity),
		durationInfluence(a.Duration),
	)
	if len(a.RiskFactors) > 0 {
		sections = append(sections, riskFactors(a.RiskFactors))
	}
	sections = append(sections, types.ExplanationSection{
		Label:   types.SectionModelInfo,
		Heading: "AI Model",
		Body:    ModelInfo,
	})
	return sections, nil
}

// Excerpt returns at most the first 100 runes of symptoms.
func Excerpt(symptoms string) string {
	r := []rune(symptoms)
	if len(r) <= symptomExcerptLen {
		return symptoms
	}
	return string(r[:symptomExcerptLen])
}

func symptomMatch(symptoms string) types.ExplanationSection {
	return types.ExplanationSection{
		Label:   types.SectionSymptomMatch,
		Heading: "Symptom Match",
		Body:    fmt.Sprintf(`The reported symptoms: "%s..."%s`, Excerpt(symptoms), symptomMatchSuffix),
	}
}

func severityWeighting(severity int) types.ExplanationSection {
	bucket := metric.SeverityBucketFor(severity)
	return types.ExplanationSection{
		Label:   types.SectionSeverityWeighting,
		Heading: "Severity Weighting",
		Body: fmt.Sprintf("Symptom severity level of %d/10 indicates %s urgency. %s",
			severity, bucket.Word(), severitySuffix),
	}
}

func durationInfluence(duration string) types.ExplanationSection {
	return types.ExplanationSection{
		Label:   types.SectionDurationInfluence,
		Heading: "Duration Influence",
		Body:    duration + " " + durationSuffix,
	}
}

func riskFactors(factors []string) types.ExplanationSection {
	items := make([]string, len(factors))
	copy(items, factors)
	return types.ExplanationSection{
		Label:   types.SectionRiskFactors,
		Heading: "Contributing Risk Factors",
		Body:    strings.Join(items, "\n"),
		Items:   items,
	}
}

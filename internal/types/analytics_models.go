// internal/types/analytics_models.go
package types

import "strings"

// --------------------------------------------
// Risk levels used by distribution slices
// --------------------------------------------
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ParseRiskLevel accepts the bare level names as well as dashboard labels
// such as "High Risk" or "Medium Risk (YELLOW)".
func ParseRiskLevel(s string) (RiskLevel, bool) {
	l := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(l, "low"), hasTriageColor(l, "green"):
		return RiskLow, true
	case strings.HasPrefix(l, "medium"), strings.HasPrefix(l, "moderate"), hasTriageColor(l, "yellow"):
		return RiskMedium, true
	case strings.HasPrefix(l, "high"), hasTriageColor(l, "red"):
		return RiskHigh, true
	}
	return "", false
}

// hasTriageColor matches "red" or "(red)" but not words that merely contain it.
func hasTriageColor(l, color string) bool {
	return l == color || strings.Contains(l, "("+color+")")
}

// --------------------------------------------
// Aggregator inputs
// --------------------------------------------
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type TrendPoint struct {
	Period      string  `json:"period"`
	AvgRisk     float64 `json:"avg_risk"` // 0–100
	Emergencies int     `json:"emergencies"`
}

type AccuracyPoint struct {
	Week    string `json:"week"`
	Flagged int    `json:"flagged"`
	Actual  int    `json:"actual"`
}

type DistributionSlice struct {
	RiskLevel  RiskLevel `json:"risk_level"`
	Percentage float64   `json:"percentage"` // 0–100
}

// Dataset bundles the four independent aggregator inputs as they arrive
// from a workbook, a JSON file or the upstream analytics source.
type Dataset struct {
	Categories   []CategoryCount     `json:"categories"`
	Trend        []TrendPoint        `json:"trend"`
	Accuracy     []AccuracyPoint     `json:"accuracy"`
	Distribution []DistributionSlice `json:"distribution"`
}

// --------------------------------------------
// Aggregator output
// --------------------------------------------
type AnalyticsSnapshot struct {
	TotalPatients         int                 `json:"total_patients"`
	EmergencyCaseEstimate int                 `json:"emergency_case_estimate"`
	CategoryBreakdown     []CategoryCount     `json:"category_breakdown"`
	RiskTrend             []TrendPoint        `json:"risk_trend"`
	DetectionAccuracy     []AccuracyPoint     `json:"detection_accuracy"`
	RiskDistribution      []DistributionSlice `json:"risk_distribution"`
}

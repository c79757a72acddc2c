package actionable

import (
	"fmt"

	"triage-insights-go/internal/metric"
	"triage-insights-go/internal/types"
)

type InsightKey string

const (
	InsightTopCategory    InsightKey = "top_category"
	InsightDetectionRate  InsightKey = "detection_rate"
	InsightAvgRisk        InsightKey = "avg_risk"
	InsightEmergencyShare InsightKey = "emergency_share"
)

// InsightCard is one "key insight" tile on the analytics dashboard.
type InsightCard struct {
	Key     InsightKey `json:"key"`
	Value   string     `json:"value"`
	Insight string     `json:"insight"`
	Detail  string     `json:"detail"`
}

// elevatedRiskThreshold marks the average risk above which the latest
// period is called out as elevated.
const elevatedRiskThreshold = 50.0

// Generate derives the key insight cards for a snapshot. Cards whose inputs
// are empty are left out, so the result may be empty.
func Generate(snap types.AnalyticsSnapshot) []InsightCard {
	var cards []InsightCard
	if c, ok := topCategory(snap.CategoryBreakdown); ok {
		cards = append(cards, c)
	}
	if c, ok := detectionRate(snap.DetectionAccuracy); ok {
		cards = append(cards, c)
	}
	if c, ok := latestRisk(snap.RiskTrend); ok {
		cards = append(cards, c)
	}
	if c, ok := emergencyShare(snap); ok {
		cards = append(cards, c)
	}
	return cards
}

func topCategory(categories []types.CategoryCount) (InsightCard, bool) {
	if len(categories) == 0 {
		return InsightCard{}, false
	}
	top := categories[0]
	for _, c := range categories[1:] {
		if c.Count > top.Count {
			top = c
		}
	}
	return InsightCard{
		Key:     InsightTopCategory,
		Value:   fmt.Sprintf("%d", top.Count),
		Insight: "Most Common Category",
		Detail:  fmt.Sprintf("%s symptoms lead patient visits", top.Category),
	}, true
}

func detectionRate(points []types.AccuracyPoint) (InsightCard, bool) {
	flagged, actual := 0, 0
	for _, p := range points {
		flagged += p.Flagged
		actual += p.Actual
	}
	if flagged == 0 {
		return InsightCard{}, false
	}
	return InsightCard{
		Key:     InsightDetectionRate,
		Value:   fmt.Sprintf("%d%%", metric.RatioToPercentage(actual, flagged)),
		Insight: "Emergency Detection Rate",
		Detail:  fmt.Sprintf("%d out of %d flagged cases confirmed", actual, flagged),
	}, true
}

func latestRisk(trend []types.TrendPoint) (InsightCard, bool) {
	if len(trend) == 0 {
		return InsightCard{}, false
	}
	last := trend[len(trend)-1]
	detail := fmt.Sprintf("Average risk for %s", last.Period)
	if len(trend) > 1 {
		prev := trend[len(trend)-2]
		switch delta := last.AvgRisk - prev.AvgRisk; {
		case delta > 0:
			detail = fmt.Sprintf("Up %.0f points from %s", delta, prev.Period)
		case delta < 0:
			detail = fmt.Sprintf("Down %.0f points from %s", -delta, prev.Period)
		default:
			detail = fmt.Sprintf("Unchanged from %s", prev.Period)
		}
	}
	insight := "Avg Risk Level"
	if last.AvgRisk >= elevatedRiskThreshold {
		insight = "Elevated Avg Risk Level"
	}
	return InsightCard{
		Key:     InsightAvgRisk,
		Value:   fmt.Sprintf("%.0f%%", last.AvgRisk),
		Insight: insight,
		Detail:  detail,
	}, true
}

func emergencyShare(snap types.AnalyticsSnapshot) (InsightCard, bool) {
	for _, s := range snap.RiskDistribution {
		if s.RiskLevel != types.RiskHigh {
			continue
		}
		return InsightCard{
			Key:     InsightEmergencyShare,
			Value:   fmt.Sprintf("%d", snap.EmergencyCaseEstimate),
			Insight: "Emergency Cases",
			Detail:  fmt.Sprintf("%.0f%% of %d patients in the high risk group", s.Percentage, snap.TotalPatients),
		}, true
	}
	return InsightCard{}, false
}

package dataset

import "triage-insights-go/internal/types"

// Demo returns the sample dataset shown on the analytics dashboard when no
// real data source is configured.
func Demo() types.Dataset {
	return types.Dataset{
		Categories: []types.CategoryCount{
			{Category: "Respiratory", Count: 145},
			{Category: "Cardiac", Count: 98},
			{Category: "Neurological", Count: 76},
			{Category: "Gastrointestinal", Count: 62},
			{Category: "Musculoskeletal", Count: 54},
			{Category: "Other", Count: 89},
		},
		Trend: []types.TrendPoint{
			{Period: "Sep", AvgRisk: 42, Emergencies: 12},
			{Period: "Oct", AvgRisk: 38, Emergencies: 9},
			{Period: "Nov", AvgRisk: 45, Emergencies: 15},
			{Period: "Dec", AvgRisk: 40, Emergencies: 11},
			{Period: "Jan", AvgRisk: 48, Emergencies: 18},
			{Period: "Feb", AvgRisk: 52, Emergencies: 22},
		},
		Accuracy: []types.AccuracyPoint{
			{Week: "Week 1", Flagged: 5, Actual: 4},
			{Week: "Week 2", Flagged: 7, Actual: 6},
			{Week: "Week 3", Flagged: 8, Actual: 7},
			{Week: "Week 4", Flagged: 6, Actual: 5},
		},
		Distribution: []types.DistributionSlice{
			{RiskLevel: types.RiskLow, Percentage: 58},
			{RiskLevel: types.RiskMedium, Percentage: 28},
			{RiskLevel: types.RiskHigh, Percentage: 14},
		},
	}
}

package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triage-insights-go/internal/types"
)

func fixture() types.Dataset {
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
			{Period: "Jan", AvgRisk: 48, Emergencies: 18},
			{Period: "Feb", AvgRisk: 52, Emergencies: 22},
		},
		Accuracy: []types.AccuracyPoint{
			{Week: "Week 2", Flagged: 7, Actual: 6},
			{Week: "Week 1", Flagged: 5, Actual: 4},
		},
		Distribution: []types.DistributionSlice{
			{RiskLevel: types.RiskLow, Percentage: 58},
			{RiskLevel: types.RiskMedium, Percentage: 28},
			{RiskLevel: types.RiskHigh, Percentage: 14},
		},
	}
}

func TestAggregate(t *testing.T) {
	ds := fixture()

	snap, err := AggregateDataset(ds)
	require.NoError(t, err)

	assert.Equal(t, 524, snap.TotalPatients)
	assert.Equal(t, 73, snap.EmergencyCaseEstimate)
	assert.Equal(t, ds.Categories, snap.CategoryBreakdown)
	assert.Equal(t, ds.Trend, snap.RiskTrend)
	// pass-through keeps input order, even when it is not chronological
	assert.Equal(t, "Week 2", snap.DetectionAccuracy[0].Week)
	assert.Equal(t, ds.Distribution, snap.RiskDistribution)
}

func TestAggregate_Idempotent(t *testing.T) {
	ds := fixture()

	first, err := AggregateDataset(ds)
	require.NoError(t, err)
	second, err := AggregateDataset(ds)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_MissingHighSlice(t *testing.T) {
	ds := fixture()
	ds.Distribution = []types.DistributionSlice{
		{RiskLevel: types.RiskLow, Percentage: 70},
		{RiskLevel: types.RiskMedium, Percentage: 30},
	}

	snap, err := AggregateDataset(ds)

	assert.ErrorIs(t, err, ErrMissingSlice)
	assert.Equal(t, types.AnalyticsSnapshot{}, snap)
}

func TestAggregate_FirstHighSliceWins(t *testing.T) {
	snap, err := Aggregate(
		[]types.CategoryCount{{Category: "a", Count: 100}},
		nil,
		nil,
		[]types.DistributionSlice{
			{RiskLevel: types.RiskHigh, Percentage: 10},
			{RiskLevel: types.RiskHigh, Percentage: 90},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 10, snap.EmergencyCaseEstimate)
}

func TestAggregate_EmptyCategories(t *testing.T) {
	snap, err := Aggregate(nil, nil, nil, []types.DistributionSlice{{RiskLevel: types.RiskHigh, Percentage: 14}})
	require.NoError(t, err)

	assert.Equal(t, 0, snap.TotalPatients)
	assert.Equal(t, 0, snap.EmergencyCaseEstimate)
	assert.Nil(t, snap.CategoryBreakdown)
}

func TestAggregate_OutOfRangeValuesPassThrough(t *testing.T) {
	trend := []types.TrendPoint{{Period: "Mar", AvgRisk: 140, Emergencies: -1}}

	snap, err := Aggregate(nil, trend, nil, []types.DistributionSlice{{RiskLevel: types.RiskHigh, Percentage: 120}})
	require.NoError(t, err)

	assert.Equal(t, trend, snap.RiskTrend)
	assert.Equal(t, 120.0, snap.RiskDistribution[0].Percentage)
}

func TestAggregate_SnapshotDoesNotAliasInput(t *testing.T) {
	ds := fixture()

	snap, err := AggregateDataset(ds)
	require.NoError(t, err)
	ds.Categories[0].Count = 1

	assert.Equal(t, 145, snap.CategoryBreakdown[0].Count)
}

package aggregator

import (
	"errors"
	"fmt"
	"slices"

	"triage-insights-go/internal/metric"
	"triage-insights-go/internal/types"
)

// ErrMissingSlice is returned when the distribution has no High risk slice,
// so the emergency estimate cannot be computed.
var ErrMissingSlice = errors.New("missing distribution slice")

// Aggregate derives the dashboard snapshot from the four input collections.
// Inputs pass through in order and are not validated; the snapshot holds its
// own copies so callers may reuse their slices.
func Aggregate(
	categories []types.CategoryCount,
	trend []types.TrendPoint,
	accuracy []types.AccuracyPoint,
	distribution []types.DistributionSlice,
) (types.AnalyticsSnapshot, error) {
	high, ok := findSlice(distribution, types.RiskHigh)
	if !ok {
		return types.AnalyticsSnapshot{}, fmt.Errorf("%w: no %s risk level in distribution", ErrMissingSlice, types.RiskHigh)
	}

	total := metric.SumCounts(categories)
	return types.AnalyticsSnapshot{
		TotalPatients:         total,
		EmergencyCaseEstimate: metric.EstimateFromPercentage(total, high.Percentage),
		CategoryBreakdown:     slices.Clone(categories),
		RiskTrend:             slices.Clone(trend),
		DetectionAccuracy:     slices.Clone(accuracy),
		RiskDistribution:      slices.Clone(distribution),
	}, nil
}

// AggregateDataset is Aggregate over a bundled dataset.
func AggregateDataset(ds types.Dataset) (types.AnalyticsSnapshot, error) {
	return Aggregate(ds.Categories, ds.Trend, ds.Accuracy, ds.Distribution)
}

// findSlice returns the first slice with the given level.
func findSlice(distribution []types.DistributionSlice, level types.RiskLevel) (types.DistributionSlice, bool) {
	for _, s := range distribution {
		if s.RiskLevel == level {
			return s, true
		}
	}
	return types.DistributionSlice{}, false
}

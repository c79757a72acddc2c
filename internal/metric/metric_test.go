package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"triage-insights-go/internal/types"
)

func TestSeverityBucketFor(t *testing.T) {
	tests := []struct {
		severity int
		want     Bucket
	}{
		{severity: -5, want: BucketLow},
		{severity: 0, want: BucketLow},
		{severity: 3, want: BucketLow},
		{severity: 4, want: BucketModerate},
		{severity: 6, want: BucketModerate},
		{severity: 7, want: BucketHigh},
		{severity: 10, want: BucketHigh},
		{severity: 15, want: BucketHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityBucketFor(tt.severity), "severity %d", tt.severity)
	}
}

func TestSeverityBucketFor_NoGapOrOverlap(t *testing.T) {
	for s := 1; s <= 10; s++ {
		b := SeverityBucketFor(s)
		switch {
		case s < 4:
			assert.Equal(t, BucketLow, b, "severity %d", s)
		case s < 7:
			assert.Equal(t, BucketModerate, b, "severity %d", s)
		default:
			assert.Equal(t, BucketHigh, b, "severity %d", s)
		}
	}
}

func TestBucketWord(t *testing.T) {
	assert.Equal(t, "high", BucketHigh.Word())
	assert.Equal(t, "moderate", BucketModerate.Word())
	assert.Equal(t, "low", BucketLow.Word())
}

func TestSumCounts(t *testing.T) {
	assert.Equal(t, 0, SumCounts(nil))
	assert.Equal(t, 0, SumCounts([]types.CategoryCount{}))
	assert.Equal(t, 8, SumCounts([]types.CategoryCount{{Count: 3}, {Count: 5}}))
}

func TestEstimateFromPercentage(t *testing.T) {
	tests := []struct {
		name       string
		basis      int
		percentage float64
		want       int
	}{
		{name: "dashboard emergency estimate", basis: 524, percentage: 14, want: 73},
		{name: "zero basis", basis: 0, percentage: 14, want: 0},
		{name: "tie rounds up", basis: 10, percentage: 25, want: 3},
		{name: "negative tie rounds away from zero", basis: -10, percentage: 25, want: -3},
		{name: "full share", basis: 200, percentage: 100, want: 200},
		{name: "out of range percentage passes through", basis: 100, percentage: 150, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateFromPercentage(tt.basis, tt.percentage))
		})
	}
}

func TestRatioToPercentage(t *testing.T) {
	assert.Equal(t, 0, RatioToPercentage(5, 0))
	assert.Equal(t, 85, RatioToPercentage(22, 26))
	assert.Equal(t, 50, RatioToPercentage(1, 2))
	assert.Equal(t, 100, RatioToPercentage(4, 4))
}

// Package metric holds the numeric helpers shared by the explanation and
// analytics code. Everything here is a pure function.
package metric

import (
	"math"

	"triage-insights-go/internal/types"
)

// Bucket is the coarse urgency class derived from a 1–10 severity score.
type Bucket string

const (
	BucketLow      Bucket = "Low"
	BucketModerate Bucket = "Moderate"
	BucketHigh     Bucket = "High"
)

// Word returns the lower-cased form used inside rationale text.
func (b Bucket) Word() string {
	switch b {
	case BucketHigh:
		return "high"
	case BucketModerate:
		return "moderate"
	default:
		return "low"
	}
}

// SeverityBucketFor partitions the integer line at 4 and 7.
// Out-of-range scores are not clamped: 15 is High, -3 is Low.
func SeverityBucketFor(severity int) Bucket {
	switch {
	case severity >= 7:
		return BucketHigh
	case severity >= 4:
		return BucketModerate
	default:
		return BucketLow
	}
}

// SumCounts adds up the count of every record; 0 for no records.
func SumCounts(records []types.CategoryCount) int {
	total := 0
	for _, r := range records {
		total += r.Count
	}
	return total
}

// EstimateFromPercentage returns round(basis * percentage / 100) with ties
// rounded away from zero.
func EstimateFromPercentage(basis int, percentage float64) int {
	return int(math.Round(float64(basis) * percentage / 100))
}

// RatioToPercentage returns part/whole as a whole percentage, 0 when whole is 0.
func RatioToPercentage(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

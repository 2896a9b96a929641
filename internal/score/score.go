// Package score holds the shared result record and the numeric helpers
// every analyzer uses to combine its sub-signals.
package score

import "math"

// Record is the persisted shape of one metric for one artist. FinalScore
// is an integer in [0,100] (the vocabulary metric instead stores a capped
// unique-word count). Subscores are the named components that produced it;
// Extras carries analyzer-specific values such as the detected dominant
// theme or the chorus flag.
type Record struct {
	FinalScore int                `json:"final_score"`
	Subscores  map[string]float64 `json:"subscores"`
	Extras     map[string]any     `json:"extras,omitempty"`
}

// Clamp01 bounds v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp bounds v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Final converts a raw weighted sum on the 100-point scale into the final
// integer score: clamp to [0,100], round to nearest.
func Final(raw float64) int {
	return int(math.Round(Clamp(raw, 0, 100)))
}

// Weighted returns the linear combination of paired (value, weight)
// entries. Weight tables are per-metric constants that sum to 1.0.
func Weighted(pairs ...[2]float64) float64 {
	sum := 0.0
	for _, p := range pairs {
		sum += p[0] * p[1]
	}
	return sum
}

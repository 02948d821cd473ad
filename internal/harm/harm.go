// Package harm assigns severity scores to disaster types.
//
// A harm score is an integer in [0,100] describing how urgent delivery to a
// disaster-affected destination is. Scoring is a fixed lookup: it never
// fails, and unknown or missing disaster types fall back to the baseline.
package harm

import "strings"

// Baseline is the score assigned when no recognized disaster type is present.
const Baseline = 10

var severityByType = map[string]int{
	"earthquake": 95,
	"flood":      90,
	"cyclone":    85,
	"landslide":  80,
	"storm":      70,
}

// Score maps a disaster type to its severity score. Matching is
// case-insensitive and ignores surrounding whitespace; an empty or
// unrecognized type scores Baseline.
func Score(disasterType string) int {
	normalized := strings.ToLower(strings.TrimSpace(disasterType))
	if score, ok := severityByType[normalized]; ok {
		return score
	}
	return Baseline
}

package harm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_KnownTypes(t *testing.T) {
	tests := []struct {
		disasterType string
		want         int
	}{
		{"earthquake", 95},
		{"flood", 90},
		{"cyclone", 85},
		{"landslide", 80},
		{"storm", 70},
	}

	for _, tt := range tests {
		t.Run(tt.disasterType, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.disasterType))
		})
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 90, Score("FLOOD"))
	assert.Equal(t, 90, Score("Flood"))
	assert.Equal(t, 90, Score("fLoOd"))
	assert.Equal(t, 85, Score("Cyclone"))
	assert.Equal(t, 95, Score("  earthquake  "))
}

func TestScore_Baseline(t *testing.T) {
	assert.Equal(t, Baseline, Score(""))
	assert.Equal(t, Baseline, Score("   "))
	assert.Equal(t, Baseline, Score("tornado"))
	assert.Equal(t, Baseline, Score("unknown type"))
}

func TestScore_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, 95, Score("earthquake"))
		assert.Equal(t, Baseline, Score("tornado"))
	}
}

func TestScore_InRange(t *testing.T) {
	for _, input := range []string{"earthquake", "flood", "cyclone", "landslide", "storm", "", "wildfire"} {
		score := Score(input)
		assert.GreaterOrEqual(t, score, 0, "input %q", input)
		assert.LessOrEqual(t, score, 100, "input %q", input)
	}
}

package sim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		coverage  []float64
		wantAvg   float64
		wantFinal float64
	}{
		{"empty series", nil, 0, 0},
		{"single step", []float64{0.5}, 0.5, 0.5},
		{"multi step", []float64{0.5, 0.7, 1.0}, 2.2 / 3, 1.0},
		{"all zero", []float64{0, 0, 0, 0}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.coverage)
			assert.InDelta(t, tt.wantAvg, s.AverageCoverage, 1e-12)
			assert.InDelta(t, tt.wantFinal, s.FinalCoverage, 1e-12)
			assert.Len(t, s.CoverageOverTime, len(tt.coverage))
		})
	}
}

// TestSummary_JSONFieldNames pins the on-disk metrics key layout.
func TestSummary_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Summarize([]float64{0.25, 0.75}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "coverage_over_time")
	assert.Contains(t, decoded, "average_coverage")
	assert.Contains(t, decoded, "final_coverage")
	assert.InDelta(t, 0.5, decoded["average_coverage"].(float64), 1e-12)
	assert.InDelta(t, 0.75, decoded["final_coverage"].(float64), 1e-12)
}

func TestNewDistribution_Empty(t *testing.T) {
	d := NewDistribution(nil)
	assert.Equal(t, Distribution{}, d)
}

func TestNewDistribution_SingleValue(t *testing.T) {
	d := NewDistribution([]float64{0.8})

	assert.Equal(t, 1, d.Count)
	assert.InDelta(t, 0.8, d.Mean, 1e-12)
	assert.InDelta(t, 0.8, d.P50, 1e-12)
	assert.InDelta(t, 0.8, d.P99, 1e-12)
	assert.InDelta(t, 0.8, d.Min, 1e-12)
	assert.InDelta(t, 0.8, d.Max, 1e-12)
}

func TestNewDistribution_UniformValues(t *testing.T) {
	// Every percentile of a constant series is that constant.
	d := NewDistribution([]float64{0.6, 0.6, 0.6, 0.6, 0.6})

	assert.Equal(t, 5, d.Count)
	assert.InDelta(t, 0.6, d.Mean, 1e-12)
	assert.InDelta(t, 0.6, d.P50, 1e-12)
	assert.InDelta(t, 0.6, d.P95, 1e-12)
	assert.InDelta(t, 0.6, d.P99, 1e-12)
}

func TestNewDistribution_OrderedPercentiles(t *testing.T) {
	// GIVEN an unsorted series
	values := []float64{0.9, 0.1, 0.5, 0.3, 0.7, 0.2, 0.8, 0.4, 0.6, 1.0}
	d := NewDistribution(values)

	// THEN extremes are exact and percentiles are monotone between them
	assert.Equal(t, 10, d.Count)
	assert.InDelta(t, 0.55, d.Mean, 1e-12)
	assert.InDelta(t, 0.1, d.Min, 1e-12)
	assert.InDelta(t, 1.0, d.Max, 1e-12)
	assert.LessOrEqual(t, d.Min, d.P50)
	assert.LessOrEqual(t, d.P50, d.P95)
	assert.LessOrEqual(t, d.P95, d.P99)
	assert.LessOrEqual(t, d.P99, d.Max)

	// AND the input order is untouched
	assert.Equal(t, 0.9, values[0])
}

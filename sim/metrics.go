// Aggregates per-step coverage into run-level statistics for final reporting.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary reduces a coverage time series for final reporting. The JSON
// field names match the on-disk metrics layout consumed by downstream
// analysis.
type Summary struct {
	CoverageOverTime []float64 `json:"coverage_over_time"`
	AverageCoverage  float64   `json:"average_coverage"`
	FinalCoverage    float64   `json:"final_coverage"`
}

// Summarize computes the run-level summary: arithmetic-mean coverage and
// the last step's coverage, both 0.0 for an empty series.
func Summarize(coverage []float64) Summary {
	s := Summary{CoverageOverTime: coverage}
	if len(coverage) == 0 {
		return s
	}
	s.AverageCoverage = stat.Mean(coverage, nil)
	s.FinalCoverage = coverage[len(coverage)-1]
	return s
}

// Print displays the run summary on stdout.
func (s Summary) Print(strategy string) {
	fmt.Println("=== Simulation Results ===")
	fmt.Printf("Strategy         : %s\n", strategy)
	fmt.Printf("Steps            : %d\n", len(s.CoverageOverTime))
	fmt.Printf("Average Coverage : %.4f\n", s.AverageCoverage)
	fmt.Printf("Final Coverage   : %.4f\n", s.FinalCoverage)
}

// Distribution captures statistical summary of a metric.
type Distribution struct {
	Mean  float64
	P50   float64
	P95   float64
	P99   float64
	Min   float64
	Max   float64
	Count int
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Distribution{
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.50, stat.LinInterp, sorted, nil),
		P95:   stat.Quantile(0.95, stat.LinInterp, sorted, nil),
		P99:   stat.Quantile(0.99, stat.LinInterp, sorted, nil),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
}

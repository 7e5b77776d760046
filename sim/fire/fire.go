// Package fire supplies fire-intensity field series to the simulator,
// either loaded from on-disk grid progressions or synthesized by a small
// cellular automaton.
package fire

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/richardjpurcell/sensor-deployment-simulation/sim"
)

// SeriesFilename returns the on-disk name for the fire grid of a step.
func SeriesFilename(step int) string {
	return fmt.Sprintf("ForestGrid%02d.csv", step)
}

// LoadGrid reads one delimited grid file (comma- or whitespace-separated).
func LoadGrid(path string) (*sim.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := sim.ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// LoadSeries reads one fire grid per step from dir. The series must cover
// every requested step with identically shaped grids; a missing or
// malformed file fails the load immediately rather than letting the run
// come up short.
func LoadSeries(dir string, numSteps int) ([]*sim.Grid, error) {
	if numSteps <= 0 {
		return nil, fmt.Errorf("num_time_steps must be positive, got %d", numSteps)
	}
	series := make([]*sim.Grid, 0, numSteps)
	for t := 0; t < numSteps; t++ {
		path := filepath.Join(dir, SeriesFilename(t))
		g, err := LoadGrid(path)
		if err != nil {
			return nil, fmt.Errorf("fire field for step %d: %w", t, err)
		}
		if t > 0 && !g.SameShape(series[0]) {
			return nil, fmt.Errorf("fire field for step %d: shape %dx%d does not match step 0 (%dx%d)",
				t, g.Rows(), g.Cols(), series[0].Rows(), series[0].Cols())
		}
		logrus.Debugf("loaded fire field %s (%dx%d)", path, g.Rows(), g.Cols())
		series = append(series, g)
	}
	return series, nil
}

// WriteSeries persists a fire series in the layout LoadSeries reads.
func WriteSeries(dir string, series []*sim.Grid) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for t, g := range series {
		path := filepath.Join(dir, SeriesFilename(t))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := g.WriteDelimited(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

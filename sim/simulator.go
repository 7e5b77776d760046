// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// StepRecord is the per-step result handed to the persistence sink:
// where the sensors stood and how much of the fire they saw.
type StepRecord struct {
	TimeStep  int
	Positions []Position
	Coverage  float64
}

// StepSink receives one record per completed step together with the
// burn-probability snapshot that step produced. Implementations live
// outside the core (see sim/record); the simulator depends only on this
// contract. A sink error aborts the run.
type StepSink interface {
	RecordStep(rec StepRecord, bp *Grid) error
}

// Simulator drives the sequential placement loop over a fixed fire-field
// series: snapshot, place, update, score, emit, once per step, in order.
// The placement and coverage histories are owned by the simulator;
// strategies never see them except through the previous-placement
// argument.
type Simulator struct {
	fields    []*Grid
	strategy  PlacementStrategy
	bp        *BurnProbabilityField
	sink      StepSink
	radius    float64
	threshold float64

	// Filled by Run, one entry per step.
	Placements      [][]Position
	CoverageHistory []float64

	completed bool
}

// NewSimulator validates the run inputs and wires a simulator.
// The fire series must hold exactly numTimeSteps identically shaped grids
// matching the burn-probability seed; anything else fails here, before the
// first step, rather than mid-run. sink may be nil to skip persistence.
func NewSimulator(fields []*Grid, strategy PlacementStrategy, bp *BurnProbabilityField, sink StepSink,
	numTimeSteps int, sensorRadius, detectionThreshold float64) (*Simulator, error) {
	if numTimeSteps <= 0 {
		return nil, fmt.Errorf("num_time_steps must be positive, got %d", numTimeSteps)
	}
	if len(fields) != numTimeSteps {
		return nil, fmt.Errorf("fire series has %d fields, config requests %d steps", len(fields), numTimeSteps)
	}
	if strategy == nil {
		return nil, fmt.Errorf("placement strategy is required")
	}
	if bp == nil {
		return nil, fmt.Errorf("burn-probability field is required")
	}
	shape := fields[0]
	for t, g := range fields {
		if !g.SameShape(shape) {
			return nil, fmt.Errorf("fire field for step %d is %dx%d, want %dx%d",
				t, g.Rows(), g.Cols(), shape.Rows(), shape.Cols())
		}
	}
	if seed := bp.Snapshot(0); !seed.SameShape(shape) {
		return nil, fmt.Errorf("burn-probability seed is %dx%d, fire fields are %dx%d",
			seed.Rows(), seed.Cols(), shape.Rows(), shape.Cols())
	}
	return &Simulator{
		fields:    fields,
		strategy:  strategy,
		bp:        bp,
		sink:      sink,
		radius:    sensorRadius,
		threshold: detectionThreshold,
	}, nil
}

// Run executes every configured time step in order. Each step places
// sensors against the previous step's burn-probability snapshot, applies
// the decay/reinforcement update, scores coverage against the current
// fire field, and emits the step record. The first sink error aborts the
// run; there are no partial retries.
func (sim *Simulator) Run() error {
	logrus.Infof("starting simulation: %d steps over a %dx%d grid",
		len(sim.fields), sim.fields[0].Rows(), sim.fields[0].Cols())

	var prev []Position
	for t, fire := range sim.fields {
		placed := sim.strategy.Place(fire, sim.bp.Snapshot(t), t, prev)
		next := sim.bp.Apply(t, fire, placed)
		coverage := Coverage(fire, placed, sim.radius, sim.threshold)

		sim.Placements = append(sim.Placements, placed)
		sim.CoverageHistory = append(sim.CoverageHistory, coverage)

		if sim.sink != nil {
			rec := StepRecord{TimeStep: t, Positions: placed, Coverage: coverage}
			if err := sim.sink.RecordStep(rec, next); err != nil {
				return fmt.Errorf("recording step %d: %w", t, err)
			}
		}
		logrus.Debugf("[step %03d] placed %d sensors, coverage=%.3f", t, len(placed), coverage)
		prev = placed
	}
	sim.completed = true

	summary := sim.Summary()
	logrus.Infof("simulation ended: average coverage %.3f, final coverage %.3f",
		summary.AverageCoverage, summary.FinalCoverage)
	return nil
}

// Completed reports whether Run finished every step.
func (sim *Simulator) Completed() bool {
	return sim.completed
}

// Summary reduces the recorded coverage history. Meaningful after Run;
// before that it is the zero summary.
func (sim *Simulator) Summary() Summary {
	return Summarize(sim.CoverageHistory)
}

// BPHistory exposes the burn-probability snapshots accumulated so far:
// the seed first, then one per completed step.
func (sim *Simulator) BPHistory() []*Grid {
	return sim.bp.History()
}

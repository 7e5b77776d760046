package fire

import (
	"fmt"
	"math/rand"

	"github.com/richardjpurcell/sensor-deployment-simulation/sim"
)

// Cell lifecycle for the synthetic spread model. A cell ignites once,
// burns for FlameSteps updates while ramping in intensity, then fades
// until it drops below extinctIntensity and stays out.
const (
	cellUnburned uint8 = iota
	cellBurning
	cellFading
	cellBurnedOut
)

const (
	// igniteIntensity is the fire value a cell takes the moment it catches.
	igniteIntensity = 0.5
	// extinctIntensity is the floor below which a fading cell is snuffed.
	extinctIntensity = 0.05
)

// SpreadSpec parameterizes the synthetic fire generator.
type SpreadSpec struct {
	Rows      int
	Cols      int
	Steps     int
	Ignitions int

	// SpreadChance is the per-step probability that an unburned cell with
	// at least one actively burning Moore neighbor catches fire.
	SpreadChance float64
	// GrowthRate is added to a burning cell's intensity each update,
	// capped at 1.0.
	GrowthRate float64
	// FlameSteps is how many updates a cell burns before it starts fading.
	FlameSteps int
	// FadeRate is the per-step fractional intensity loss while fading.
	FadeRate float64
}

// Validate reports the first malformed field.
func (s SpreadSpec) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("grid shape must be positive, got %dx%d", s.Rows, s.Cols)
	}
	if s.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", s.Steps)
	}
	if s.Ignitions < 1 || s.Ignitions > s.Rows*s.Cols {
		return fmt.Errorf("ignitions must be in [1, %d], got %d", s.Rows*s.Cols, s.Ignitions)
	}
	if s.SpreadChance < 0 || s.SpreadChance > 1 {
		return fmt.Errorf("spread_chance must be in [0,1], got %v", s.SpreadChance)
	}
	if s.GrowthRate < 0 {
		return fmt.Errorf("growth_rate must be non-negative, got %v", s.GrowthRate)
	}
	if s.FlameSteps < 1 {
		return fmt.Errorf("flame_steps must be at least 1, got %d", s.FlameSteps)
	}
	if s.FadeRate < 0 || s.FadeRate > 1 {
		return fmt.Errorf("fade_rate must be in [0,1], got %v", s.FadeRate)
	}
	return nil
}

// spreadWorld holds the automaton state, double-buffered so each update
// reads a consistent snapshot of the previous step.
type spreadWorld struct {
	spec SpreadSpec
	rng  *rand.Rand

	stateCurr []uint8
	stateNext []uint8
	intenCurr []float64
	intenNext []float64
	burnAge   []int
}

// Synthesize runs the spread automaton and returns one intensity grid per
// step: series[0] is the ignition state, series[t] the state after t
// updates. The result is deterministic for a given rng seed.
func Synthesize(spec SpreadSpec, rng *rand.Rand) ([]*sim.Grid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	n := spec.Rows * spec.Cols
	w := &spreadWorld{
		spec:      spec,
		rng:       rng,
		stateCurr: make([]uint8, n),
		stateNext: make([]uint8, n),
		intenCurr: make([]float64, n),
		intenNext: make([]float64, n),
		burnAge:   make([]int, n),
	}
	w.ignite()

	series := make([]*sim.Grid, 0, spec.Steps)
	series = append(series, w.snapshot())
	for t := 1; t < spec.Steps; t++ {
		w.step()
		series = append(series, w.snapshot())
	}
	return series, nil
}

// ignite lights Ignitions distinct random cells.
func (w *spreadWorld) ignite() {
	n := w.spec.Rows * w.spec.Cols
	lit := 0
	for lit < w.spec.Ignitions {
		i := w.rng.Intn(n)
		if w.stateCurr[i] != cellUnburned {
			continue
		}
		w.stateCurr[i] = cellBurning
		w.intenCurr[i] = igniteIntensity
		lit++
	}
}

func (w *spreadWorld) step() {
	for r := 0; r < w.spec.Rows; r++ {
		for c := 0; c < w.spec.Cols; c++ {
			i := r*w.spec.Cols + c
			switch w.stateCurr[i] {
			case cellUnburned:
				if w.burningNeighbors(r, c) > 0 && w.rng.Float64() < w.spec.SpreadChance {
					w.stateNext[i] = cellBurning
					w.intenNext[i] = igniteIntensity
					w.burnAge[i] = 0
				} else {
					w.stateNext[i] = cellUnburned
					w.intenNext[i] = 0
				}
			case cellBurning:
				w.burnAge[i]++
				w.intenNext[i] = min(1.0, w.intenCurr[i]+w.spec.GrowthRate)
				if w.burnAge[i] >= w.spec.FlameSteps {
					w.stateNext[i] = cellFading
				} else {
					w.stateNext[i] = cellBurning
				}
			case cellFading:
				inten := w.intenCurr[i] * (1 - w.spec.FadeRate)
				if inten < extinctIntensity {
					w.stateNext[i] = cellBurnedOut
					w.intenNext[i] = 0
				} else {
					w.stateNext[i] = cellFading
					w.intenNext[i] = inten
				}
			case cellBurnedOut:
				w.stateNext[i] = cellBurnedOut
				w.intenNext[i] = 0
			}
		}
	}
	w.stateCurr, w.stateNext = w.stateNext, w.stateCurr
	w.intenCurr, w.intenNext = w.intenNext, w.intenCurr
}

// burningNeighbors counts actively burning cells in the Moore
// neighborhood of (r, c) as of the previous step.
func (w *spreadWorld) burningNeighbors(r, c int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if nr < 0 || nr >= w.spec.Rows || nc < 0 || nc >= w.spec.Cols {
				continue
			}
			if w.stateCurr[nr*w.spec.Cols+nc] == cellBurning {
				count++
			}
		}
	}
	return count
}

func (w *spreadWorld) snapshot() *sim.Grid {
	g := sim.NewGrid(w.spec.Rows, w.spec.Cols)
	copy(g.Data(), w.intenCurr)
	return g
}

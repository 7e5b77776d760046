package sim

import (
	"fmt"
	"math/rand"
)

// PlacementStrategy decides where the mobile sensors stand for one time step.
//
// Place receives the fire-intensity field for the current step, the
// burn-probability snapshot finalized at the end of the previous step, the
// step index, and the previous step's placement (nil at step 0). It returns
// at most the configured number of positions, all in bounds and pairwise
// distinct, and never mutates its inputs. All randomness comes from the
// generator injected at construction.
type PlacementStrategy interface {
	Place(fire, bp *Grid, step int, prev []Position) []Position
}

// ValidStrategies is the set of recognized placement strategy names.
// Shared by Validate() and NewPlacementStrategy() to avoid duplication.
var ValidStrategies = map[string]bool{"greedy": true, "epsilon-greedy": true, "genetic": true}

// StrategyNames returns the recognized strategy names in a stable order,
// for comparison sweeps and error messages.
func StrategyNames() []string {
	return []string{"greedy", "epsilon-greedy", "genetic"}
}

// PlacementConfig holds the shared and per-variant placement parameters.
// Alpha and Beta weight burn probability and fire intensity in the cell
// value used by epsilon-greedy and genetic; greedy ignores them.
type PlacementConfig struct {
	Strategy     string
	NumSensors   int
	SensorRadius float64

	// epsilon-greedy
	Epsilon float64

	// epsilon-greedy and genetic
	Alpha float64
	Beta  float64

	// genetic
	PopulationSize int
	NumGenerations int
	MutationRate   float64
}

// Validate checks the strategy name and parameter ranges.
// The returned error names the offending field.
func (c PlacementConfig) Validate() error {
	if !ValidStrategies[c.Strategy] {
		return fmt.Errorf("unknown placement strategy %q (valid: %v)", c.Strategy, StrategyNames())
	}
	if c.NumSensors <= 0 {
		return fmt.Errorf("num_sensors must be positive, got %d", c.NumSensors)
	}
	if c.SensorRadius <= 0 {
		return fmt.Errorf("sensor_radius must be positive, got %v", c.SensorRadius)
	}
	switch c.Strategy {
	case "epsilon-greedy":
		if c.Epsilon < 0 || c.Epsilon > 1 {
			return fmt.Errorf("epsilon must be in [0,1], got %v", c.Epsilon)
		}
	case "genetic":
		if c.PopulationSize <= 0 {
			return fmt.Errorf("population_size must be positive, got %d", c.PopulationSize)
		}
		if c.NumGenerations <= 0 {
			return fmt.Errorf("num_generations must be positive, got %d", c.NumGenerations)
		}
		if c.MutationRate < 0 || c.MutationRate > 1 {
			return fmt.Errorf("mutation_rate must be in [0,1], got %v", c.MutationRate)
		}
	}
	return nil
}

// NewPlacementStrategy creates a placement strategy by name.
// Valid names are defined in ValidStrategies; callers validate the config
// first, so an unrecognized name is a programming error and panics.
// rng is the strategy's private randomness source; pass a stream from
// PartitionedRNG.ForSubsystem(SubsystemPlacement) for reproducible runs.
func NewPlacementStrategy(cfg PlacementConfig, rng *rand.Rand) PlacementStrategy {
	switch cfg.Strategy {
	case "greedy":
		return NewGreedy(cfg.NumSensors, cfg.SensorRadius)
	case "epsilon-greedy":
		return NewEpsilonGreedy(cfg.NumSensors, cfg.SensorRadius, cfg.Epsilon, cfg.Alpha, cfg.Beta, rng)
	case "genetic":
		return NewGenetic(cfg.NumSensors, cfg.SensorRadius, GeneticParams{
			PopulationSize: cfg.PopulationSize,
			NumGenerations: cfg.NumGenerations,
			MutationRate:   cfg.MutationRate,
			Alpha:          cfg.Alpha,
			Beta:           cfg.Beta,
		}, rng)
	default:
		panic(fmt.Sprintf("unknown placement strategy %q", cfg.Strategy))
	}
}

// scoredCell pairs a grid cell with its current desirability score.
type scoredCell struct {
	pos   Position
	score float64
}

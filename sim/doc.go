// Package sim provides the core engine for the wildfire sensor-deployment
// simulator.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - placement.go: the PlacementStrategy contract, config validation, and
//     the strategy registry
//   - burnprob.go: the burn-probability field, its decay/reinforcement
//     update, and the one-step snapshot lag placement reads through
//   - simulator.go: the step loop tying fire fields, placement, coverage
//     scoring, and persistence together
//
// # Architecture
//
// The sim package owns the data model (Grid, Position) and the decision
// engine; collaborators live in sub-packages:
//   - sim/fire/: fire-field series loading and synthetic fire generation
//   - sim/record/: per-step and run-level persistence
//
// Strategies are pure with respect to the simulation: they read the fields
// they are given, draw randomness only from the generator injected at
// construction, and return a fresh placement. The simulator owns every
// history (placements, coverage, burn-probability snapshots).
//
// # Key Interfaces
//
// The extension points are single-method interfaces:
//   - PlacementStrategy: choose sensor positions for one step
//   - StepSink: persist one completed step
package sim

package sim

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSink aborts persistence at a chosen step.
type failingSink struct {
	failAt int
}

func (f *failingSink) RecordStep(rec StepRecord, bp *Grid) error {
	if rec.TimeStep == f.failAt {
		return errors.New("disk full")
	}
	return nil
}

// centerFireSetup builds the canonical single-hotspot scenario: a 3x3
// grid burning only in the middle, seeded with certainty there.
func centerFireSetup(t *testing.T, steps int) ([]*Grid, *BurnProbabilityField) {
	t.Helper()
	fields := make([]*Grid, steps)
	for i := range fields {
		fire := uniformGrid(3, 3, 0)
		fire.Set(1, 1, 1.0)
		fields[i] = fire
	}
	seed := uniformGrid(3, 3, 0)
	seed.Set(1, 1, 1.0)
	return fields, NewBurnProbabilityField(seed, 0.9, 1, 0.5)
}

// TestSimulator_SingleHotspotRun walks the full loop on the hand-checkable
// hotspot scenario.
func TestSimulator_SingleHotspotRun(t *testing.T) {
	// GIVEN one sensor, radius 1, a single burning center cell
	fields, bp := centerFireSetup(t, 1)
	sink := &collectingSink{}
	s, err := NewSimulator(fields, NewGreedy(1, 1), bp, sink, 1, 1, 0.5)
	require.NoError(t, err)

	// WHEN the simulation runs
	require.NoError(t, s.Run())

	// THEN the sensor stands on the hotspot and sees the whole fire
	assert.True(t, s.Completed())
	require.Len(t, s.Placements, 1)
	assert.Equal(t, []Position{{Row: 1, Col: 1}}, s.Placements[0])
	require.Len(t, s.CoverageHistory, 1)
	assert.InDelta(t, 1.0, s.CoverageHistory[0], 1e-12)

	// THEN the confirmed fire stamped a plus shape into the field
	snap := bp.Snapshot(1)
	want := [][]float64{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, want[r][c], snap.At(r, c), 1e-12, "cell (%d,%d)", r, c)
		}
	}

	// THEN the sink saw exactly one record carrying the same step data
	require.Len(t, sink.records, 1)
	assert.Equal(t, 0, sink.records[0].TimeStep)
	assert.Equal(t, s.Placements[0], sink.records[0].Positions)
	assert.InDelta(t, 1.0, sink.records[0].Coverage, 1e-12)

	// THEN the summary reduces the single step
	summary := s.Summary()
	assert.InDelta(t, 1.0, summary.AverageCoverage, 1e-12)
	assert.InDelta(t, 1.0, summary.FinalCoverage, 1e-12)
}

// TestSimulator_PlacementSeesPreviousSnapshot pins the information lag:
// the strategy at step t reads the field exactly as the end of step t-1
// left it, and the step-0 update applies no decay.
func TestSimulator_PlacementSeesPreviousSnapshot(t *testing.T) {
	// GIVEN a 1x1 world with seed 0.8, decay 0.5, and no fire ever
	fields := []*Grid{uniformGrid(1, 1, 0), uniformGrid(1, 1, 0), uniformGrid(1, 1, 0)}
	bp := NewBurnProbabilityField(uniformGrid(1, 1, 0.8), 0.5, 1, 0.5)
	capture := &captureStrategy{fixed: Position{Row: 0, Col: 0}}

	s, err := NewSimulator(fields, capture, bp, nil, 3, 1, 0.5)
	require.NoError(t, err)
	require.NoError(t, s.Run())

	// THEN step 0 saw the seed, step 1 saw the undecayed post-step-0
	// snapshot, step 2 saw one decay applied
	require.Len(t, capture.seen, 3)
	assert.InDelta(t, 0.8, capture.seen[0][0], 1e-12)
	assert.InDelta(t, 0.8, capture.seen[1][0], 1e-12)
	assert.InDelta(t, 0.4, capture.seen[2][0], 1e-12)

	// Nothing burns, so every step is vacuously covered.
	for _, c := range s.CoverageHistory {
		assert.InDelta(t, 1.0, c, 1e-12)
	}
}

// TestSimulator_SinkErrorAbortsRun verifies persistence failures stop the
// loop with step context and leave the run incomplete.
func TestSimulator_SinkErrorAbortsRun(t *testing.T) {
	fields, bp := centerFireSetup(t, 3)
	s, err := NewSimulator(fields, NewGreedy(1, 1), bp, &failingSink{failAt: 1}, 3, 1, 0.5)
	require.NoError(t, err)

	err = s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording step 1")
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, s.Completed())
	// Step 0 completed before the failure surfaced at step 1.
	assert.Len(t, s.CoverageHistory, 2)
}

// TestNewSimulator_Validation rejects inconsistent run inputs before the
// first step.
func TestNewSimulator_Validation(t *testing.T) {
	strategy := NewGreedy(1, 1)
	goodBP := func() *BurnProbabilityField {
		return NewBurnProbabilityField(uniformGrid(2, 2, 0.5), 0.9, 1, 0.5)
	}

	tests := []struct {
		name     string
		fields   []*Grid
		strategy PlacementStrategy
		bp       *BurnProbabilityField
		steps    int
		wantErr  string
	}{
		{
			name:     "series shorter than requested steps",
			fields:   []*Grid{uniformGrid(2, 2, 0)},
			strategy: strategy,
			bp:       goodBP(),
			steps:    3,
			wantErr:  "fire series has 1 fields, config requests 3 steps",
		},
		{
			name:     "zero steps",
			fields:   nil,
			strategy: strategy,
			bp:       goodBP(),
			steps:    0,
			wantErr:  "num_time_steps",
		},
		{
			name:     "nil strategy",
			fields:   []*Grid{uniformGrid(2, 2, 0)},
			strategy: nil,
			bp:       goodBP(),
			steps:    1,
			wantErr:  "placement strategy",
		},
		{
			name:     "nil burn-probability field",
			fields:   []*Grid{uniformGrid(2, 2, 0)},
			strategy: strategy,
			bp:       nil,
			steps:    1,
			wantErr:  "burn-probability field",
		},
		{
			name:     "fire fields disagree on shape",
			fields:   []*Grid{uniformGrid(2, 2, 0), uniformGrid(3, 3, 0)},
			strategy: strategy,
			bp:       goodBP(),
			steps:    2,
			wantErr:  "fire field for step 1",
		},
		{
			name:     "seed shape mismatch",
			fields:   []*Grid{uniformGrid(3, 3, 0)},
			strategy: strategy,
			bp:       goodBP(), // 2x2 seed
			steps:    1,
			wantErr:  "burn-probability seed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSimulator(tt.fields, tt.strategy, tt.bp, nil, tt.steps, 1, 0.5)
			require.Error(t, err)
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

// TestSimulator_NilSinkSkipsPersistence verifies a sink is optional.
func TestSimulator_NilSinkSkipsPersistence(t *testing.T) {
	fields, bp := centerFireSetup(t, 2)
	s, err := NewSimulator(fields, NewGreedy(1, 1), bp, nil, 2, 1, 0.5)
	require.NoError(t, err)
	require.NoError(t, s.Run())
	assert.Len(t, s.CoverageHistory, 2)
}

// TestSimulator_DeterministicEndToEnd verifies two identically seeded runs
// produce identical placement and coverage histories.
func TestSimulator_DeterministicEndToEnd(t *testing.T) {
	const steps = 5

	run := func() ([][]Position, []float64) {
		fields := make([]*Grid, steps)
		for i := range fields {
			fields[i] = RandomGrid(8, 8, newRandFromSeed(int64(100+i)))
		}
		rng := NewPartitionedRNG(NewSimulationKey(42))
		cfg := PlacementConfig{
			Strategy:     "epsilon-greedy",
			NumSensors:   4,
			SensorRadius: 2,
			Epsilon:      0.3,
			Alpha:        0.7,
			Beta:         0.3,
		}
		strategy := NewPlacementStrategy(cfg, rng.ForSubsystem(SubsystemPlacement))
		seed := RandomGrid(8, 8, rng.ForSubsystem(SubsystemBPSeed))
		bp := NewBurnProbabilityField(seed, 0.9, 2, 0.5)

		s, err := NewSimulator(fields, strategy, bp, nil, steps, 2, 0.5)
		require.NoError(t, err)
		require.NoError(t, s.Run())
		return s.Placements, s.CoverageHistory
	}

	p1, c1 := run()
	p2, c2 := run()
	assert.Equal(t, p1, p2)
	assert.Equal(t, c1, c2)
}

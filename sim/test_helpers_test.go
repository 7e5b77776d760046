package sim

import "testing"

// gridFromRows builds a grid from literal rows, failing the test on ragged
// input instead of returning an error.
func gridFromRows(t *testing.T, rows [][]float64) *Grid {
	t.Helper()
	g, err := NewGridFromRows(rows)
	if err != nil {
		t.Fatalf("building test grid: %v", err)
	}
	return g
}

// uniformGrid builds a rows x cols grid with every cell set to v.
func uniformGrid(rows, cols int, v float64) *Grid {
	g := NewGrid(rows, cols)
	g.Fill(v)
	return g
}

// assertPlacementWellFormed checks the contract every strategy must honor:
// at most n positions, all in bounds, pairwise distinct.
func assertPlacementWellFormed(t *testing.T, placed []Position, n, rows, cols int) {
	t.Helper()
	if len(placed) > n {
		t.Errorf("placement has %d positions, want at most %d", len(placed), n)
	}
	seen := make(map[Position]bool, len(placed))
	for i, pos := range placed {
		if !pos.InBounds(rows, cols) {
			t.Errorf("position %d = %v out of %dx%d bounds", i, pos, rows, cols)
		}
		if seen[pos] {
			t.Errorf("position %d = %v duplicated in placement", i, pos)
		}
		seen[pos] = true
	}
}

// assertSeparated checks that every pair of positions keeps at least radius
// distance.
func assertSeparated(t *testing.T, placed []Position, radius float64) {
	t.Helper()
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			if d := placed[i].DistanceTo(placed[j]); d < radius {
				t.Errorf("positions %v and %v are %.3f apart, want >= %v", placed[i], placed[j], d, radius)
			}
		}
	}
}

// captureStrategy is a stub PlacementStrategy that records a copy of every
// burn-probability snapshot it is shown and always places one fixed sensor.
type captureStrategy struct {
	fixed Position
	seen  [][]float64
}

func (cs *captureStrategy) Place(fire, bp *Grid, step int, prev []Position) []Position {
	snap := make([]float64, len(bp.Data()))
	copy(snap, bp.Data())
	cs.seen = append(cs.seen, snap)
	return []Position{cs.fixed}
}

// collectingSink gathers step records in memory for assertions.
type collectingSink struct {
	records []StepRecord
	bps     []*Grid
}

func (cs *collectingSink) RecordStep(rec StepRecord, bp *Grid) error {
	cs.records = append(cs.records, rec)
	cs.bps = append(cs.bps, bp.Clone())
	return nil
}

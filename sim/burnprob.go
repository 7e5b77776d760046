package sim

// BurnProbabilityField owns the evolving burn-probability grid and its
// per-step snapshot history.
//
// The history holds the seed at index 0 and one post-update snapshot per
// completed step, so Snapshot(t) is the field exactly as the end of step
// t-1 left it. Placement for step t reads Snapshot(t), never the live
// grid: strategies always see the previous step's finalized field, a
// one-step information lag.
type BurnProbabilityField struct {
	current   *Grid
	history   []*Grid
	decay     float64
	radius    float64
	threshold float64
}

// NewBurnProbabilityField seeds the field. The seed grid is cloned, so the
// caller keeps ownership of its copy. decay is the per-step multiplicative
// factor, sensorRadius the reinforcement stamp radius, and
// detectionThreshold the fire intensity at which a cell counts as burning.
func NewBurnProbabilityField(seed *Grid, decay, sensorRadius, detectionThreshold float64) *BurnProbabilityField {
	initial := seed.Clone()
	return &BurnProbabilityField{
		current:   initial,
		history:   []*Grid{initial.Clone()},
		decay:     decay,
		radius:    sensorRadius,
		threshold: detectionThreshold,
	}
}

// Snapshot returns the field as placement must see it at step t: the seed
// for t = 0, otherwise the snapshot taken at the end of step t-1.
func (f *BurnProbabilityField) Snapshot(t int) *Grid {
	return f.history[t]
}

// History returns the append-only snapshot sequence: the seed first, then
// one entry per completed step.
func (f *BurnProbabilityField) History() []*Grid {
	return f.history
}

// Apply advances the field for one step: uniform decay (skipped at step 0
// so the seed enters the first update untouched), then confirmed-fire
// reinforcement, then a snapshot. Reinforcement stamps exactly 1.0 on
// every cell within the sensor radius (inclusive) of each placed sensor
// standing on a burning cell, overriding whatever the decay left there.
// The returned grid is the appended snapshot.
func (f *BurnProbabilityField) Apply(step int, fire *Grid, placed []Position) *Grid {
	if step > 0 {
		f.current.Scale(f.decay)
	}
	for _, pos := range placed {
		if fire.At(pos.Row, pos.Col) >= f.threshold {
			f.reinforce(pos)
		}
	}
	snap := f.current.Clone()
	f.history = append(f.history, snap)
	return snap
}

// reinforce sets every cell within radius (inclusive) of center to 1.0.
// The scan runs over the enclosing square before the exact Euclidean
// check; for integer cells, |dr| <= floor(radius) bounds the square.
func (f *BurnProbabilityField) reinforce(center Position) {
	rows, cols := f.current.Rows(), f.current.Cols()
	span := int(f.radius)
	rMin := max(0, center.Row-span)
	rMax := min(rows-1, center.Row+span)
	cMin := max(0, center.Col-span)
	cMax := min(cols-1, center.Col+span)
	for r := rMin; r <= rMax; r++ {
		for c := cMin; c <= cMax; c++ {
			if center.DistanceTo(Position{Row: r, Col: c}) <= f.radius {
				f.current.Set(r, c, 1.0)
			}
		}
	}
}

package sim

import "sort"

// greedyRevisitPenalty dampens the score of a cell that hosted a sensor in
// the previous step, keeping the fleet from parking on one hotspot.
const greedyRevisitPenalty = 0.1

// Greedy ranks every cell by burn probability and takes the best separated
// cells, one at a time.
//
// Each selection pops the highest-scoring candidate; it is accepted only if
// it keeps at least SensorRadius distance to everything accepted so far.
// After an acceptance, candidates inside that radius have their scores
// zeroed and the pool is re-sorted, so crowded-out cells sink to the back
// but remain selectable once far-away high scores run out. Sorting is
// stable and the pool starts in row-major order, so ties resolve to the
// top-left-most cell. Given the same inputs the strategy is fully
// deterministic; it draws no randomness.
type Greedy struct {
	numSensors int
	radius     float64
}

// NewGreedy creates a greedy placement strategy.
func NewGreedy(numSensors int, radius float64) *Greedy {
	return &Greedy{numSensors: numSensors, radius: radius}
}

// Place implements PlacementStrategy for Greedy.
func (g *Greedy) Place(fire, bp *Grid, step int, prev []Position) []Position {
	prevSet := positionSet(prev)
	candidates := make([]scoredCell, 0, bp.Rows()*bp.Cols())
	for r := 0; r < bp.Rows(); r++ {
		for c := 0; c < bp.Cols(); c++ {
			pos := Position{Row: r, Col: c}
			score := bp.At(r, c)
			if prevSet[pos] {
				score *= greedyRevisitPenalty
			}
			candidates = append(candidates, scoredCell{pos: pos, score: score})
		}
	}
	sortByScore(candidates)

	selected := make([]Position, 0, g.numSensors)
	for len(selected) < g.numSensors && len(candidates) > 0 {
		best := candidates[0]
		candidates = candidates[1:]
		if !separatedFrom(best.pos, selected, g.radius) {
			continue
		}
		selected = append(selected, best.pos)

		rescored := false
		for i := range candidates {
			if candidates[i].score != 0 && best.pos.DistanceTo(candidates[i].pos) < g.radius {
				candidates[i].score = 0
				rescored = true
			}
		}
		if rescored {
			sortByScore(candidates)
		}
	}
	return selected
}

// sortByScore orders candidates by score descending. The sort is stable, so
// equal scores keep their current relative order.
func sortByScore(cells []scoredCell) {
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].score > cells[j].score })
}

package sim

import "math/rand"

// epsilonRevisitPenalty halves the value of a cell that hosted a sensor in
// the previous step. Milder than the greedy penalty: exploration already
// moves this fleet around.
const epsilonRevisitPenalty = 0.5

// EpsilonGreedy scores every cell by a weighted blend of burn probability
// and fire intensity, then picks sensors one at a time: with probability
// Epsilon it explores a uniformly random valid cell, otherwise it exploits
// the highest-valued one. Exploitation uses a strict maximum over the pool
// in row-major order, so ties go to the top-left-most cell.
//
// After each pick every cell closer than SensorRadius to the chosen one
// (the chosen cell included) leaves the pool, which guarantees distinct,
// separated sensors. A step may end short of NumSensors once no valid cell
// remains.
type EpsilonGreedy struct {
	numSensors int
	radius     float64
	epsilon    float64
	alpha      float64
	beta       float64
	rng        *rand.Rand
}

// NewEpsilonGreedy creates an epsilon-greedy placement strategy.
// alpha weights burn probability, beta weights fire intensity.
func NewEpsilonGreedy(numSensors int, radius, epsilon, alpha, beta float64, rng *rand.Rand) *EpsilonGreedy {
	return &EpsilonGreedy{
		numSensors: numSensors,
		radius:     radius,
		epsilon:    epsilon,
		alpha:      alpha,
		beta:       beta,
		rng:        rng,
	}
}

// Place implements PlacementStrategy for EpsilonGreedy.
func (e *EpsilonGreedy) Place(fire, bp *Grid, step int, prev []Position) []Position {
	prevSet := positionSet(prev)
	available := make([]scoredCell, 0, bp.Rows()*bp.Cols())
	for r := 0; r < bp.Rows(); r++ {
		for c := 0; c < bp.Cols(); c++ {
			pos := Position{Row: r, Col: c}
			value := e.alpha*bp.At(r, c) + e.beta*fire.At(r, c)
			if prevSet[pos] {
				value *= epsilonRevisitPenalty
			}
			available = append(available, scoredCell{pos: pos, score: value})
		}
	}

	selected := make([]Position, 0, e.numSensors)
	for len(selected) < e.numSensors && len(available) > 0 {
		valid := validCandidates(available, selected, e.radius)
		if len(valid) == 0 {
			break
		}

		var chosen scoredCell
		if e.rng.Float64() < e.epsilon {
			chosen = valid[e.rng.Intn(len(valid))]
		} else {
			chosen = valid[0]
			for _, cand := range valid[1:] {
				if cand.score > chosen.score {
					chosen = cand
				}
			}
		}
		selected = append(selected, chosen.pos)

		// Prune everything inside the radius, the chosen cell included.
		kept := available[:0]
		for _, cand := range available {
			if chosen.pos.DistanceTo(cand.pos) >= e.radius {
				kept = append(kept, cand)
			}
		}
		available = kept
	}
	return selected
}

// validCandidates filters to cells at least radius away from every already
// selected position.
func validCandidates(cells []scoredCell, selected []Position, radius float64) []scoredCell {
	valid := make([]scoredCell, 0, len(cells))
	for _, cand := range cells {
		if separatedFrom(cand.pos, selected, radius) {
			valid = append(valid, cand)
		}
	}
	return valid
}

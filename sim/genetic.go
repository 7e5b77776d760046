package sim

import (
	"math"
	"math/rand"
)

// maxFreshDraws bounds random sampling for a free cell before falling back
// to a row-major scan.
const maxFreshDraws = 64

// GeneticParams bundles the evolutionary-search knobs for the genetic
// placement strategy.
type GeneticParams struct {
	PopulationSize int
	NumGenerations int
	MutationRate   float64
	Alpha          float64
	Beta           float64
}

// Genetic evolves whole candidate placements instead of picking sensors one
// at a time. Fitness rewards the blended cell value under every sensor and
// subtracts a linear penalty for each pair closer than SensorRadius, so
// separation is encouraged rather than enforced: a returned placement may
// violate the minimum distance. It is always pairwise distinct, because the
// best candidate is deduplicated before it is returned.
//
// Evolution is generational: tournament selection (size 3, sampled with
// replacement) fills a mating pool, adjacent pool entries produce two
// children each by single-point crossover, and every gene mutates
// independently with probability MutationRate. The best candidate ever
// evaluated is remembered across generations and is what Place returns,
// with ties keeping the earliest.
type Genetic struct {
	numSensors int
	radius     float64
	params     GeneticParams
	rng        *rand.Rand
}

// NewGenetic creates a genetic placement strategy.
func NewGenetic(numSensors int, radius float64, params GeneticParams, rng *rand.Rand) *Genetic {
	return &Genetic{numSensors: numSensors, radius: radius, params: params, rng: rng}
}

// Place implements PlacementStrategy for Genetic.
func (g *Genetic) Place(fire, bp *Grid, step int, prev []Position) []Position {
	rows, cols := bp.Rows(), bp.Cols()

	population := make([][]Position, g.params.PopulationSize)
	for i := range population {
		population[i] = g.randomCandidate(rows, cols)
	}

	var best []Position
	bestFitness := math.Inf(-1)

	for gen := 0; gen < g.params.NumGenerations; gen++ {
		fitnesses := make([]float64, len(population))
		for i, cand := range population {
			fitnesses[i] = g.fitness(cand, fire, bp)
			if fitnesses[i] > bestFitness {
				bestFitness = fitnesses[i]
				best = cand
			}
		}

		// Tournament selection, size 3, sampled with replacement.
		pool := make([][]Position, len(population))
		for i := range pool {
			winner := g.rng.Intn(len(population))
			for k := 0; k < 2; k++ {
				challenger := g.rng.Intn(len(population))
				if fitnesses[challenger] > fitnesses[winner] {
					winner = challenger
				}
			}
			pool[i] = population[winner]
		}

		// Adjacent pairing with wraparound; each pair yields two children.
		// An odd population overshoots by one child and is truncated.
		next := make([][]Position, 0, len(pool)+1)
		for i := 0; i < len(pool); i += 2 {
			p1 := pool[i]
			p2 := pool[(i+1)%len(pool)]
			next = append(next, g.mutate(g.crossover(p1, p2, rows, cols), rows, cols))
			next = append(next, g.mutate(g.crossover(p2, p1, rows, cols), rows, cols))
		}
		population = next[:g.params.PopulationSize]
	}

	return g.repairDistinct(best, rows, cols)
}

// fitness scores a candidate: the sum of alpha*bp + beta*fire over its
// positions, minus radius-dist for every unordered pair closer than the
// sensor radius.
func (g *Genetic) fitness(cand []Position, fire, bp *Grid) float64 {
	value := 0.0
	for _, pos := range cand {
		value += g.params.Alpha*bp.At(pos.Row, pos.Col) + g.params.Beta*fire.At(pos.Row, pos.Col)
	}
	penalty := 0.0
	for i := 0; i < len(cand); i++ {
		for j := i + 1; j < len(cand); j++ {
			if d := cand[i].DistanceTo(cand[j]); d < g.radius {
				penalty += g.radius - d
			}
		}
	}
	return value - penalty
}

// crossover recombines two parents at a single random cut point, then walks
// the child left to right replacing duplicate genes with fresh random
// positions. The replacement is drawn blind, so the child may still carry a
// duplicate; repairDistinct settles that at the return boundary. The final
// padding loop only runs if the child somehow came up short.
func (g *Genetic) crossover(p1, p2 []Position, rows, cols int) []Position {
	if g.numSensors < 2 {
		// No interior cut point exists; inherit the first parent.
		child := make([]Position, len(p1))
		copy(child, p1)
		return child
	}
	cut := 1 + g.rng.Intn(g.numSensors-1)
	child := make([]Position, 0, g.numSensors)
	child = append(child, p1[:cut]...)
	child = append(child, p2[cut:]...)

	repaired := make([]Position, 0, g.numSensors)
	seen := make(map[Position]bool, g.numSensors)
	for _, pos := range child {
		if seen[pos] {
			pos = g.randomPosition(rows, cols)
		}
		repaired = append(repaired, pos)
		seen[pos] = true
	}
	for len(repaired) < g.numSensors {
		pos := g.randomPosition(rows, cols)
		if seen[pos] {
			continue
		}
		repaired = append(repaired, pos)
		seen[pos] = true
	}
	return repaired
}

// mutate rerolls each gene independently with probability MutationRate.
// The candidate is owned by the caller (fresh from crossover), so mutation
// happens in place.
func (g *Genetic) mutate(cand []Position, rows, cols int) []Position {
	for i := range cand {
		if g.rng.Float64() < g.params.MutationRate {
			cand[i] = g.randomPosition(rows, cols)
		}
	}
	return cand
}

func (g *Genetic) randomCandidate(rows, cols int) []Position {
	cand := make([]Position, g.numSensors)
	for i := range cand {
		cand[i] = g.randomPosition(rows, cols)
	}
	return cand
}

func (g *Genetic) randomPosition(rows, cols int) Position {
	return Position{Row: g.rng.Intn(rows), Col: g.rng.Intn(cols)}
}

// repairDistinct replaces duplicate positions with unused cells so the
// returned placement honors the pairwise-distinct contract even when the
// in-loop repair let a collision through. If the grid has fewer cells than
// sensors the placement comes up short rather than repeating cells.
func (g *Genetic) repairDistinct(cand []Position, rows, cols int) []Position {
	if cand == nil {
		return nil
	}
	out := make([]Position, 0, len(cand))
	seen := make(map[Position]bool, len(cand))
	for _, pos := range cand {
		if seen[pos] {
			fresh, ok := g.freshPosition(seen, rows, cols)
			if !ok {
				continue
			}
			pos = fresh
		}
		out = append(out, pos)
		seen[pos] = true
	}
	return out
}

// freshPosition draws random positions until one lands outside seen,
// falling back to a row-major scan after maxFreshDraws misses. Returns
// false only when the grid is exhausted.
func (g *Genetic) freshPosition(seen map[Position]bool, rows, cols int) (Position, bool) {
	if len(seen) >= rows*cols {
		return Position{}, false
	}
	for attempts := 0; attempts < maxFreshDraws; attempts++ {
		pos := g.randomPosition(rows, cols)
		if !seen[pos] {
			return pos, true
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := Position{Row: r, Col: c}
			if !seen[pos] {
				return pos, true
			}
		}
	}
	return Position{}, false
}

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEpsilonGreedy_PureExploit verifies epsilon 0 always takes the
// highest-valued cell, with row-major tie breaking afterwards.
func TestEpsilonGreedy_PureExploit(t *testing.T) {
	// GIVEN a field with a single hot cell in the middle
	bp := gridFromRows(t, [][]float64{
		{0, 0, 0},
		{0, 1.0, 0},
		{0, 0, 0},
	})
	fire := uniformGrid(3, 3, 0)

	// WHEN placing two sensors with epsilon 0 and radius 1
	strategy := NewEpsilonGreedy(2, 1, 0, 1.0, 0.0, newRandFromSeed(1))
	placed := strategy.Place(fire, bp, 0, nil)

	// THEN the hot cell wins, then the first remaining cell in row-major
	// order (everything else scores 0)
	assert.Equal(t, []Position{{Row: 1, Col: 1}, {Row: 0, Col: 0}}, placed)
}

// TestEpsilonGreedy_BlendsFireIntensity verifies the alpha/beta weighting:
// with beta dominant, a burning cell outranks a high-probability one.
func TestEpsilonGreedy_BlendsFireIntensity(t *testing.T) {
	bp := gridFromRows(t, [][]float64{
		{0.9, 0},
		{0, 0},
	})
	fire := gridFromRows(t, [][]float64{
		{0, 0},
		{0, 1.0},
	})

	// alpha 0.3, beta 0.7: (0,0) scores 0.27, (1,1) scores 0.7
	strategy := NewEpsilonGreedy(1, 1, 0, 0.3, 0.7, newRandFromSeed(1))
	placed := strategy.Place(fire, bp, 0, nil)

	assert.Equal(t, []Position{{Row: 1, Col: 1}}, placed)
}

// TestEpsilonGreedy_StopsWhenNoValidCellRemains verifies the early break
// once every cell sits inside the radius of a chosen sensor.
func TestEpsilonGreedy_StopsWhenNoValidCellRemains(t *testing.T) {
	bp := gridFromRows(t, [][]float64{
		{0, 0, 0},
		{0, 1.0, 0},
		{0, 0, 0},
	})
	fire := uniformGrid(3, 3, 0)

	// WHEN the radius swallows the whole 3x3 grid after one pick
	strategy := NewEpsilonGreedy(3, 1.5, 0, 1.0, 0.0, newRandFromSeed(1))
	placed := strategy.Place(fire, bp, 0, nil)

	// THEN only the center is placed: every other cell is within 1.415
	assert.Equal(t, []Position{{Row: 1, Col: 1}}, placed)
}

// TestEpsilonGreedy_RevisitPenaltyHalvesValue verifies the previous-step
// damping tips the choice to a fresh cell.
func TestEpsilonGreedy_RevisitPenaltyHalvesValue(t *testing.T) {
	bp := gridFromRows(t, [][]float64{
		{0.6, 0, 0},
		{0, 1.0, 0},
		{0, 0, 0},
	})
	fire := uniformGrid(3, 3, 0)
	strategy := NewEpsilonGreedy(1, 1, 0, 1.0, 0.0, newRandFromSeed(1))

	// GIVEN no previous placement, the hot center wins outright
	assert.Equal(t, []Position{{Row: 1, Col: 1}}, strategy.Place(fire, bp, 0, nil))

	// WHEN the center hosted a sensor last step (1.0 * 0.5 = 0.5 < 0.6)
	placed := strategy.Place(fire, bp, 1, []Position{{Row: 1, Col: 1}})

	// THEN the undamped corner wins
	assert.Equal(t, []Position{{Row: 0, Col: 0}}, placed)
}

// TestEpsilonGreedy_AlwaysExplore verifies epsilon 1 still honors the
// separation and bounds contract while drawing uniformly.
func TestEpsilonGreedy_AlwaysExplore(t *testing.T) {
	const (
		rows, cols = 8, 8
		numSensors = 4
		radius     = 2.0
	)
	bp := RandomGrid(rows, cols, newRandFromSeed(17))
	fire := RandomGrid(rows, cols, newRandFromSeed(19))

	strategy := NewEpsilonGreedy(numSensors, radius, 1.0, 0.7, 0.3, newRandFromSeed(23))
	placed := strategy.Place(fire, bp, 0, nil)

	assertPlacementWellFormed(t, placed, numSensors, rows, cols)
	assertSeparated(t, placed, radius)
	assert.NotEmpty(t, placed)
}

// TestEpsilonGreedy_ExplorationIsSeeded verifies two strategies with the
// same seed explore identically.
func TestEpsilonGreedy_ExplorationIsSeeded(t *testing.T) {
	bp := RandomGrid(10, 10, newRandFromSeed(29))
	fire := RandomGrid(10, 10, newRandFromSeed(31))

	run := func() []Position {
		strategy := NewEpsilonGreedy(5, 1.5, 1.0, 0.5, 0.5, newRandFromSeed(77))
		return strategy.Place(fire, bp, 0, nil)
	}

	assert.Equal(t, run(), run())
}

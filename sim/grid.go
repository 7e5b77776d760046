package sim

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Grid is a fixed-shape 2-D field of float64 values stored row-major.
// It backs both fire-intensity maps and burn-probability maps. Values are
// unconstrained here; producers document their own ranges.
type Grid struct {
	rows int
	cols int
	data []float64
}

// NewGrid allocates a zero-filled rows x cols grid. The shape must be
// positive; constructing a grid from untrusted input goes through
// NewGridFromRows, which reports errors instead.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("sim: invalid grid shape %dx%d", rows, cols))
	}
	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// NewGridFromRows builds a grid from row slices, rejecting empty and ragged
// input.
func NewGridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid has no cells")
	}
	cols := len(rows[0])
	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, want %d", r, len(row), cols)
		}
		copy(g.data[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// RandomGrid fills a rows x cols grid with independent uniform values in
// [0, 1) drawn from rng.
func RandomGrid(rows, cols int, rng *rand.Rand) *Grid {
	g := NewGrid(rows, cols)
	for i := range g.data {
		g.data[i] = rng.Float64()
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the value at (r, c).
func (g *Grid) At(r, c int) float64 { return g.data[r*g.cols+c] }

// Set stores v at (r, c).
func (g *Grid) Set(r, c int, v float64) { g.data[r*g.cols+c] = v }

// Data exposes the row-major backing slice. Callers must not resize it.
func (g *Grid) Data() []float64 { return g.data }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.data, g.data)
	return c
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Scale multiplies every cell by f in place.
func (g *Grid) Scale(f float64) {
	floats.Scale(f, g.data)
}

// SameShape reports whether g and o have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return g.rows == o.rows && g.cols == o.cols
}

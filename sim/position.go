package sim

import "math"

// Position is a grid coordinate. Row 0 is the top row, Col 0 the leftmost
// column.
type Position struct {
	Row int
	Col int
}

// DistanceTo returns the Euclidean distance between two positions.
func (p Position) DistanceTo(q Position) float64 {
	dr := float64(p.Row - q.Row)
	dc := float64(p.Col - q.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// InBounds reports whether the position lies within a rows x cols grid.
func (p Position) InBounds(rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// separatedFrom reports whether p keeps at least radius distance to every
// position in placed.
func separatedFrom(p Position, placed []Position, radius float64) bool {
	for _, q := range placed {
		if p.DistanceTo(q) < radius {
			return false
		}
	}
	return true
}

// positionSet builds a membership set over a placement. A nil or empty
// placement yields a nil map, which reads as all-false.
func positionSet(ps []Position) map[Position]bool {
	if len(ps) == 0 {
		return nil
	}
	set := make(map[Position]bool, len(ps))
	for _, p := range ps {
		set[p] = true
	}
	return set
}

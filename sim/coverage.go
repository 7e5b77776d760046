package sim

// Coverage returns the fraction of burning cells (fire value >= threshold)
// lying within radius (inclusive) of at least one sensor. A step with no
// burning cells is vacuously covered and scores 1.0. Comparison uses
// squared distances, so no square roots are taken.
func Coverage(fire *Grid, sensors []Position, radius, threshold float64) float64 {
	radiusSq := radius * radius
	burning, detected := 0, 0
	for r := 0; r < fire.Rows(); r++ {
		for c := 0; c < fire.Cols(); c++ {
			if fire.At(r, c) < threshold {
				continue
			}
			burning++
			for _, pos := range sensors {
				dr := float64(r - pos.Row)
				dc := float64(c - pos.Col)
				if dr*dr+dc*dc <= radiusSq {
					detected++
					break
				}
			}
		}
	}
	if burning == 0 {
		return 1.0
	}
	return float64(detected) / float64(burning)
}

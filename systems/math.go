package systems

import "math"

// abs32 returns the absolute value of x.
func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// ScorePenaltyForTurn converts a rotation into the per-tick score penalty.
// A full turn costs one point.
func ScorePenaltyForTurn(delta float32) float32 {
	return abs32(delta) / float32(2*math.Pi)
}

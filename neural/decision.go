package neural

// ArgMax returns the index of the largest value, the first on ties.
// An empty slice returns 0.
func ArgMax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}

// SteeringDecision maps steering outputs to a turn direction:
// index 0 gives -1, index 1 holds at 0, index 2 gives +1.
func SteeringDecision(outputs []float64) int {
	return ArgMax(outputs) - 1
}

// FireDecision reports whether the fire network wants to shoot (index 0 wins).
func FireDecision(outputs []float64) bool {
	return ArgMax(outputs) == 0
}

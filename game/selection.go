package game

import "sort"

// Pairing names a candidate whose networks are replaced and the donor whose
// networks replace them.
type Pairing struct {
	Replace int
	Donor   int
}

// LowestIndices returns the indices of the n lowest scores in ascending score
// order. Ties keep index order.
func LowestIndices(scores []float32, n int) []int {
	ranked := rankAscending(scores)
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// Pairings ranks the population and pairs the worst floor(N/2) candidates with
// the remaining ones: the worst with the best, the second worst with the
// second best, and so on. Ties keep index order on both sides.
func Pairings(scores []float32) []Pairing {
	half := len(scores) / 2
	worst := LowestIndices(scores, half)

	isWorst := make([]bool, len(scores))
	for _, w := range worst {
		isWorst[w] = true
	}
	donors := make([]int, 0, len(scores)-half)
	for i := range scores {
		if !isWorst[i] {
			donors = append(donors, i)
		}
	}
	sort.SliceStable(donors, func(a, b int) bool {
		return scores[donors[a]] > scores[donors[b]]
	})

	pairs := make([]Pairing, 0, half)
	for i, w := range worst {
		pairs = append(pairs, Pairing{Replace: w, Donor: donors[i]})
	}
	return pairs
}

func rankAscending(scores []float32) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})
	return idx
}

package cfr

import (
	"gonum.org/v1/gonum/floats"
)

// RegretMatching converts one cumulative-regret vector per action into the
// current strategy: each hand plays actions in proportion to their positive
// regret. A hand with no positive regret plays uniformly at random.
//
// The input is not modified.
func RegretMatching(regrets [][]float64) [][]float64 {
	if len(regrets) == 0 {
		return nil
	}

	nHands := len(regrets[0])
	positive := make([][]float64, len(regrets))
	total := make([]float64, nHands)
	for a, r := range regrets {
		positive[a] = make([]float64, nHands)
		copy(positive[a], r)
		makePositive(positive[a])
		floats.Add(total, positive[a])
	}

	uniform := 1.0 / float64(len(regrets))
	strategy := make([][]float64, len(regrets))
	for a, p := range positive {
		strategy[a] = divOrDefault(p, total, uniform)
	}

	return strategy
}

func makePositive(v []float64) {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0.0
		}
	}
}

package cfr

import (
	"gonum.org/v1/gonum/floats"
)

// StrategyTable maps each non-terminal public history to an action-major
// matrix of per-hand values: table[h][action][hand].
//
// The same shape holds cumulative regrets, cumulative strategy sums and
// (normalized) average strategies.
type StrategyTable map[History][][]float64

// NewStrategyTable enumerates every non-terminal history reachable from root
// and allocates a zeroed entry for it.
func NewStrategyTable[N Node[N]](root N, nHands int) StrategyTable {
	table := make(StrategyTable)
	Visit(root, func(node N) bool {
		if node.IsTerminal() {
			return false
		}

		h := node.PublicHistory()
		nActions := node.NumActions()
		if nActions <= 0 {
			contractViolation(h, "non-terminal node has %d actions", nActions)
		}

		table[h] = zeros(nActions, nHands)
		return true
	})

	return table
}

// Get returns the entry for the given history.
// It panics with a *ContractError if the history is not in the table.
func (t StrategyTable) Get(h History) [][]float64 {
	entry, ok := t[h]
	if !ok {
		contractViolation(h, "history not found in strategy table")
	}

	return entry
}

// ActionProbability returns the value stored for (h, action, hand).
func (t StrategyTable) ActionProbability(h History, action, hand int) float64 {
	return t.Get(h)[action][hand]
}

// checkActions panics if the entry for node does not match its action count.
func (t StrategyTable) checkActions(h History, nActions int) [][]float64 {
	entry := t.Get(h)
	if len(entry) != nActions {
		contractViolation(h, "table has n_actions=%v but node has n_actions=%v",
			len(entry), nActions)
	}

	return entry
}

// Normalized returns a new table in which every entry is divided, per hand,
// by its sum over actions. Hands whose sum is zero (never reached) get zero
// probability for every action: unlike RegretMatching there is no uniform
// fallback here.
func (t StrategyTable) Normalized() StrategyTable {
	result := make(StrategyTable, len(t))
	for h, entry := range t {
		if len(entry) == 0 {
			result[h] = nil
			continue
		}

		total := make([]float64, len(entry[0]))
		for _, v := range entry {
			floats.Add(total, v)
		}

		normalized := make([][]float64, len(entry))
		for a, v := range entry {
			normalized[a] = divOrDefault(v, total, 0.0)
		}

		result[h] = normalized
	}

	return result
}

func zeros(nActions, nHands int) [][]float64 {
	result := make([][]float64, nActions)
	for a := range result {
		result[a] = make([]float64, nHands)
	}

	return result
}

// divOrDefault returns a new slice with num[i] / denom[i], or def where denom[i] is zero.
func divOrDefault(num, denom []float64, def float64) []float64 {
	result := make([]float64, len(num))
	for i, d := range denom {
		if d == 0 {
			result[i] = def
		} else {
			result[i] = num[i] / d
		}
	}

	return result
}

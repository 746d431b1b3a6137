package cfr

import (
	"gonum.org/v1/gonum/floats"
)

// ExpectedValue returns player's expected payoff when both players follow strategy.
func ExpectedValue[N Node[N], G Game[N]](game G, player int, strategy StrategyTable) float64 {
	ones := onesVec(game.NumPrivateHands())
	return expectedValue(game, game.Root(), player, ones, ones, strategy)
}

func expectedValue[N Node[N], G Game[N]](game G, node N, player int, pi, pmi []float64, strategy StrategyTable) float64 {
	if node.IsTerminal() {
		return floats.Dot(game.Evaluate(node, player, pmi), pi)
	}

	probs := strategy.checkActions(node.PublicHistory(), node.NumActions())
	ev := 0.0
	for i, p := range probs {
		child := node.Play(i)
		if node.CurrentPlayer() == player {
			childPi := make([]float64, len(pi))
			floats.MulTo(childPi, pi, p)
			ev += expectedValue(game, child, player, childPi, pmi, strategy)
		} else {
			childPmi := make([]float64, len(pmi))
			floats.MulTo(childPmi, pmi, p)
			ev += expectedValue(game, child, player, pi, childPmi, strategy)
		}
	}

	return ev
}

// BestResponseValues returns, per private hand, the counterfactual value a
// best-responding player obtains against the opponent's part of strategy.
func BestResponseValues[N Node[N], G Game[N]](game G, player int, strategy StrategyTable) []float64 {
	return bestResponse(game, game.Root(), player, onesVec(game.NumPrivateHands()), strategy)
}

func bestResponse[N Node[N], G Game[N]](game G, node N, player int, pmi []float64, strategy StrategyTable) []float64 {
	if node.IsTerminal() {
		return game.Evaluate(node, player, pmi)
	}

	nActions := node.NumActions()
	if nActions <= 0 {
		contractViolation(node.PublicHistory(), "non-terminal node has %d actions", nActions)
	}

	if node.CurrentPlayer() == player {
		// Pick the best action separately for every hand.
		result := bestResponse(game, node.Play(0), player, pmi, strategy)
		for i := 1; i < nActions; i++ {
			v := bestResponse(game, node.Play(i), player, pmi, strategy)
			for j, x := range v {
				if x > result[j] {
					result[j] = x
				}
			}
		}

		return result
	}

	probs := strategy.checkActions(node.PublicHistory(), nActions)
	result := make([]float64, len(pmi))
	for i, p := range probs {
		childPmi := make([]float64, len(pmi))
		floats.MulTo(childPmi, pmi, p)
		floats.Add(result, bestResponse(game, node.Play(i), player, childPmi, strategy))
	}

	return result
}

// Exploitability returns the total value both players could gain by
// switching to a best response against strategy. It is zero exactly at
// a Nash equilibrium and positive otherwise.
func Exploitability[N Node[N], G Game[N]](game G, strategy StrategyTable) float64 {
	br0 := BestResponseValues[N](game, 0, strategy)
	br1 := BestResponseValues[N](game, 1, strategy)
	return floats.Sum(br0) + floats.Sum(br1)
}

func onesVec(n int) []float64 {
	v := make([]float64, n)
	floats.AddConst(1.0, v)
	return v
}

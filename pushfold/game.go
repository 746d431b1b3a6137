// Package pushfold implements heads-up push/fold no-limit hold'em for
// vector-form CFR.
//
// The small blind (player 0, 0.5bb) either folds or pushes all-in; facing a
// push the big blind (player 1, 1bb) either folds or calls. Both players
// start with the same effective stack, and a call goes straight to a
// showdown valued by the preflop equity table. All values are in big blinds.
package pushfold

import (
	"fmt"

	"github.com/timpalpant/go-dcfr"
	"github.com/timpalpant/go-dcfr/equity"
)

const (
	Fold = 0
	Push = 1 // Push, or call when facing a push.
)

// Probability of each ordered deal of two disjoint hands.
const dealProbability = 1.0 / (equity.NumHands * (50 * 49 / 2))

// Game implements cfr.Game for push/fold hold'em.
type Game struct {
	table          *equity.Table
	effectiveStack float64
}

// New returns a game valued by the given equity table. effectiveStack is the
// smaller of the two starting stacks, in big blinds.
func New(table *equity.Table, effectiveStack float64) *Game {
	return &Game{
		table:          table,
		effectiveStack: effectiveStack,
	}
}

// EffectiveStack returns the effective stack in big blinds.
func (g *Game) EffectiveStack() float64 {
	return g.effectiveStack
}

// Root implements cfr.Game.
func (g *Game) Root() Node {
	return Node{}
}

// NumPrivateHands implements cfr.Game.
func (g *Game) NumPrivateHands() int {
	return equity.NumHands
}

// Evaluate implements cfr.Game.
func (g *Game) Evaluate(node Node, player int, pmi []float64) []float64 {
	if last, _ := node.history.Last(); last == Fold {
		return foldValues(node.foldPayoff(player), pmi)
	}

	return g.showdownValues(pmi)
}

// foldValues returns payoff times the total reach of the opponent hands
// compatible with each of our hands.
//
// By inclusion-exclusion, the opponent hands sharing no card with {c1, c2}
// have reach sum(pmi) - ex[c1] - ex[c2] + pmi[hand], where ex[c] is the
// reach of all hands containing card c.
func foldValues(payoff float64, pmi []float64) []float64 {
	var total float64
	var ex [equity.NumCards]float64
	for k, p := range pmi {
		c1, c2 := equity.HandCards(k)
		ex[c1] += p
		ex[c2] += p
		total += p
	}

	payoff *= dealProbability
	result := make([]float64, len(pmi))
	for k, p := range pmi {
		c1, c2 := equity.HandCards(k)
		result[k] = payoff * (total - ex[c1] - ex[c2] + p)
	}

	return result
}

// showdownValues returns the all-in values of each hand against pmi.
// A hand that wins w/2 of the boards against an opponent wins the
// effective stack (w - (2*NumBoards - w)) / (2*NumBoards) on average.
// The value is the same for both players since each reads its own row.
func (g *Game) showdownValues(pmi []float64) []float64 {
	const scale = dealProbability * 0.5 / equity.NumBoards
	result := make([]float64, len(pmi))
	for k := range result {
		c1, c2 := equity.HandCards(k)
		row := g.table.Row(k)
		var cfValue float64
		for j, p := range pmi {
			if p == 0 {
				continue
			}

			d1, d2 := equity.HandCards(j)
			if c1 == d1 || c1 == d2 || c2 == d1 || c2 == d2 {
				continue
			}

			win := float64(row[j])
			cfValue += g.effectiveStack * (2*win - 2*equity.NumBoards) * p
		}

		result[k] = scale * cfValue
	}

	return result
}

// Node implements cfr.Node for push/fold hold'em.
type Node struct {
	history cfr.History
}

// String implements fmt.Stringer.
func (n Node) String() string {
	return fmt.Sprintf("Player %v's turn. History: %v", n.CurrentPlayer(), n.history)
}

// PublicHistory implements cfr.Node.
func (n Node) PublicHistory() cfr.History {
	return n.history
}

// IsTerminal implements cfr.Node.
// Only the root and the big blind facing a push are decision nodes.
func (n Node) IsTerminal() bool {
	switch n.history {
	case cfr.NewHistory(), cfr.NewHistory(Push):
		return false
	default:
		return true
	}
}

// CurrentPlayer implements cfr.Node.
func (n Node) CurrentPlayer() int {
	return n.history.Len() % 2
}

// NumActions implements cfr.Node.
func (n Node) NumActions() int {
	return 2
}

// Play implements cfr.Node.
func (n Node) Play(action int) Node {
	return Node{history: n.history.Append(action)}
}

// foldPayoff returns player's winnings when the hand ended with a fold.
func (n Node) foldPayoff(player int) float64 {
	// The small blind folded and loses it.
	payoff := -0.5
	if n.history.Len() == 2 {
		// The big blind folded to a push.
		payoff = 1.0
	}

	if player == 1 {
		return -payoff
	}

	return payoff
}

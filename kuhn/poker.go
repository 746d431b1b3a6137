// Package kuhn implements Kuhn Poker for vector-form CFR: each player holds
// one of three cards, and the deal is folded into terminal evaluation.
package kuhn

import (
	"fmt"

	"github.com/timpalpant/go-dcfr"
)

const (
	Check = 0 // Check, or fold when facing a bet.
	Bet   = 1 // Bet, or call when facing a bet.
)

type Card int

const (
	Jack Card = iota
	Queen
	King
)

const numCards = 3

// Probability of each ordered deal of two distinct cards.
const dealProbability = 1.0 / (numCards * (numCards - 1))

var cardStr = [...]string{
	"J",
	"Q",
	"K",
}

func (c Card) String() string {
	return cardStr[c]
}

// Game implements cfr.Game for Kuhn Poker.
type Game struct{}

func NewGame() *Game {
	return &Game{}
}

// Root implements cfr.Game.
func (g *Game) Root() Node {
	return Node{}
}

// NumPrivateHands implements cfr.Game.
func (g *Game) NumPrivateHands() int {
	return numCards
}

// Evaluate implements cfr.Game.
func (g *Game) Evaluate(node Node, player int, pmi []float64) []float64 {
	cfValue := make([]float64, numCards)
	for my := Jack; my <= King; my++ {
		for opp := Jack; opp <= King; opp++ {
			if my == opp {
				continue // Both players can't be dealt the same card.
			}

			cfValue[my] += node.payoff(player, my, opp) * pmi[opp] * dealProbability
		}
	}

	return cfValue
}

// Node implements cfr.Node for Kuhn Poker.
type Node struct {
	history cfr.History
}

// String implements fmt.Stringer.
func (k Node) String() string {
	return fmt.Sprintf("Player %v's turn. History: %v", k.CurrentPlayer(), k.history)
}

// PublicHistory implements cfr.Node.
func (k Node) PublicHistory() cfr.History {
	return k.history
}

// IsTerminal implements cfr.Node.
func (k Node) IsTerminal() bool {
	switch k.history.Len() {
	case 2:
		return k.history != cfr.NewHistory(Check, Bet)
	case 3:
		return true
	default:
		return false
	}
}

// CurrentPlayer implements cfr.Node.
// By convention, terminal nodes are labeled with the player whose
// turn it would be (i.e. not the last acting player).
func (k Node) CurrentPlayer() int {
	return k.history.Len() % 2
}

// NumActions implements cfr.Node.
func (k Node) NumActions() int {
	return 2
}

// Play implements cfr.Node.
func (k Node) Play(action int) Node {
	return Node{history: k.history.Append(action)}
}

func (k Node) payoff(player int, my, opp Card) float64 {
	last, _ := k.history.Last()
	switch {
	case k.history == cfr.NewHistory(Check, Check):
		// Showdown with no bets.
		if my > opp {
			return 1.0
		}
		return -1.0
	case last == Check:
		// Last player folded. The current player wins.
		if k.CurrentPlayer() == player {
			return 1.0
		}
		return -1.0
	}

	// Showdown with 1 bet.
	if my > opp {
		return 2.0
	}

	return -2.0
}

package cfr

import (
	"fmt"
)

// Node is the interface for a position in an extensive-form game tree.
//
// A Node is identified by its public history alone: the private hands of
// both players are implicit, and all per-hand quantities are carried as
// vectors indexed by private hand.
type Node[N any] interface {
	// PublicHistory returns the sequence of actions visible to both players.
	PublicHistory() History
	// IsTerminal returns true if this node is an end-game node.
	IsTerminal() bool
	// CurrentPlayer returns the acting player (0 or 1).
	// It may only be called for non-terminal nodes.
	CurrentPlayer() int
	// NumActions returns the number of legal actions at this node.
	// It does not depend on either player's private hand and must be at
	// least 1 for every non-terminal node.
	NumActions() int
	// Play returns the child reached by taking the given action.
	Play(action int) N
}

// Game is the interface every game solved by the Minimizer must implement.
type Game[N Node[N]] interface {
	// Root returns the initial node (empty public history).
	Root() N
	// NumPrivateHands returns the fixed cardinality of the private-hand space.
	NumPrivateHands() int
	// Evaluate returns, for every private hand of player, the counterfactual
	// value of the terminal node given the opponent's reach probabilities pmi
	// (excluding the initial deal, which Evaluate accounts for itself).
	//
	// Opponent hands that share a card with the evaluated hand must
	// contribute nothing. Evaluate must not retain or modify pmi.
	// It must only be called for terminal nodes.
	Evaluate(node N, player int, pmi []float64) []float64
}

// ContractError describes a Game or Node implementation that violated the
// contract above, such as a traversal reaching a history the table pre-pass
// never saw. It is raised with panic: there is no sensible way to continue.
type ContractError struct {
	History History
	Reason  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("game contract violation at history %v: %s", e.History, e.Reason)
}

func contractViolation(h History, format string, args ...interface{}) {
	panic(&ContractError{History: h, Reason: fmt.Sprintf(format, args...)})
}

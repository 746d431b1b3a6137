package cfr

// choiceGame is a one-move game used to test the engine in isolation:
// player 0 picks an action and receives payoffs[action] (player 1 receives
// the negation). There is a single private hand.
type choiceGame struct {
	payoffs []float64
}

type choiceNode struct {
	h        History
	nActions int
}

func (g *choiceGame) Root() choiceNode {
	return choiceNode{nActions: len(g.payoffs)}
}

func (g *choiceGame) NumPrivateHands() int { return 1 }

func (g *choiceGame) Evaluate(node choiceNode, player int, pmi []float64) []float64 {
	a, _ := node.h.Last()
	v := g.payoffs[a] * pmi[0]
	if player == 1 {
		v = -v
	}

	return []float64{v}
}

func (n choiceNode) PublicHistory() History { return n.h }
func (n choiceNode) IsTerminal() bool       { return n.h.Len() == 1 }
func (n choiceNode) CurrentPlayer() int     { return 0 }
func (n choiceNode) NumActions() int        { return n.nActions }
func (n choiceNode) Play(action int) choiceNode {
	return choiceNode{h: n.h.Append(action), nActions: n.nActions}
}

package kuhn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/go-dcfr"
	"github.com/timpalpant/go-dcfr/tree"
)

func TestPoker_GameTree(t *testing.T) {
	root := NewGame().Root()

	nNodes := tree.CountNodes(root)
	if nNodes != 9 {
		t.Errorf("expected %d nodes, got %d", 9, nNodes)
	}

	nTerminal := tree.CountTerminalNodes(root)
	if nTerminal != 5 {
		t.Errorf("expected %d terminal nodes, got %d", 5, nTerminal)
	}

	if depth := tree.MaxDepth(root); depth != 3 {
		t.Errorf("expected max depth %d, got %d", 3, depth)
	}
}

func TestPoker_Histories(t *testing.T) {
	root := NewGame().Root()
	players := make(map[cfr.History]int)
	tree.VisitHistories(root, func(player int, h cfr.History) {
		players[h] = player
	})

	assert.Equal(t, map[cfr.History]int{
		cfr.NewHistory():           0,
		cfr.NewHistory(Check):      1,
		cfr.NewHistory(Bet):        1,
		cfr.NewHistory(Check, Bet): 0,
	}, players)
}

func TestPoker_Evaluate(t *testing.T) {
	game := NewGame()
	ones := []float64{1, 1, 1}

	// Check-check: the higher card wins 1.
	node := game.Root().Play(Check).Play(Check)
	require.True(t, node.IsTerminal())
	v := game.Evaluate(node, 0, ones)
	assert.InDeltaSlice(t, []float64{-2.0 / 6, 0, 2.0 / 6}, v, 1e-12)

	// Bet-fold: player 0 wins 1 whatever the cards.
	node = game.Root().Play(Bet).Play(Check)
	v = game.Evaluate(node, 0, ones)
	assert.InDeltaSlice(t, []float64{2.0 / 6, 2.0 / 6, 2.0 / 6}, v, 1e-12)
	v = game.Evaluate(node, 1, ones)
	assert.InDeltaSlice(t, []float64{-2.0 / 6, -2.0 / 6, -2.0 / 6}, v, 1e-12)

	// Check-bet-call: showdown for 2.
	node = game.Root().Play(Check).Play(Bet).Play(Bet)
	v = game.Evaluate(node, 1, ones)
	assert.InDeltaSlice(t, []float64{-4.0 / 6, 0, 4.0 / 6}, v, 1e-12)
}

func TestPoker_EvaluateIgnoresSameCard(t *testing.T) {
	game := NewGame()
	node := game.Root().Play(Bet).Play(Bet)

	// Opponent only ever reaches holding a Queen.
	v := game.Evaluate(node, 0, []float64{0, 1, 0})
	assert.InDelta(t, -2.0/6, v[Jack], 1e-12)
	assert.Equal(t, 0.0, v[Queen])
	assert.InDelta(t, 2.0/6, v[King], 1e-12)
}

func TestPoker_DiscountedCFR(t *testing.T) {
	game := NewGame()
	strategy := cfr.New[Node](game, cfr.DefaultDiscountParams()).Compute(10000)

	ev := cfr.ExpectedValue[Node](game, 0, strategy)
	t.Logf("Expected game value: %.4f", ev)
	assert.InDelta(t, -1.0/18, ev, 1e-3)

	exploitability := cfr.Exploitability[Node](game, strategy)
	t.Logf("Exploitability: %.3e", exploitability)
	assert.GreaterOrEqual(t, exploitability, -1e-12)
	assert.Less(t, exploitability, 1e-3)

	tree.VisitHistories(game.Root(), func(player int, h cfr.History) {
		strat := strategy.Get(h)
		for card := Jack; card <= King; card++ {
			t.Logf("[player %d] %6v %v: check=%.2f bet=%.2f", player, h, card,
				strat[Check][card], strat[Bet][card])
		}
	})

	// Player 0 bluffs the Jack with some alpha in [0, 1/3]
	// and bets the King with 3 * alpha.
	root := strategy.Get(cfr.NewHistory())
	alpha := root[Bet][Jack]
	assert.GreaterOrEqual(t, alpha, 0.0)
	assert.LessOrEqual(t, alpha, 1.0/3+1e-2)
	assert.InDelta(t, 3*alpha, root[Bet][King], 0.1)

	// Facing a bet, player 1 always calls with the King and never with the Jack.
	facingBet := strategy.Get(cfr.NewHistory(Bet))
	assert.Greater(t, facingBet[Bet][King], 0.95)
	assert.Less(t, facingBet[Bet][Jack], 0.05)
}

func TestPoker_UniformStrategyIsExploitable(t *testing.T) {
	game := NewGame()
	uniform := make(cfr.StrategyTable)
	tree.VisitHistories(game.Root(), func(player int, h cfr.History) {
		uniform[h] = [][]float64{{0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}}
	})

	exploitability := cfr.Exploitability[Node](game, uniform)
	if exploitability <= 0.1 || math.IsNaN(exploitability) {
		t.Errorf("expected uniform play to be exploitable, got %v", exploitability)
	}
}

package pushfold

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/timpalpant/go-dcfr"
	"github.com/timpalpant/go-dcfr/equity"
	"github.com/timpalpant/go-dcfr/tree"
)

// syntheticTable returns a table in which hand i beats hand j on every
// board if beats(i, j), ties if neither beats the other.
func syntheticTable(beats func(i, j int) bool) *equity.Table {
	t := equity.NewTable()
	for i := 0; i < equity.NumHands; i++ {
		for j := 0; j < equity.NumHands; j++ {
			switch {
			case equity.Overlaps(i, j):
			case beats(i, j):
				t.Set(i, j, 2*equity.NumBoards)
			case beats(j, i):
			default:
				t.Set(i, j, equity.NumBoards)
			}
		}
	}

	return t
}

func allTies(i, j int) bool { return false }

func higherIndexWins(i, j int) bool { return i > j }

func randomReach(seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	pmi := make([]float64, equity.NumHands)
	for k := range pmi {
		pmi[k] = rng.Float64()
	}

	return pmi
}

func TestGameTree(t *testing.T) {
	root := New(nil, 10).Root()
	assert.Equal(t, 5, tree.CountNodes(root))
	assert.Equal(t, 3, tree.CountTerminalNodes(root))
	assert.Equal(t, 2, tree.CountHistories(root))
	assert.Equal(t, 2, tree.MaxDepth(root))

	assert.Equal(t, 0, root.CurrentPlayer())
	assert.Equal(t, 1, root.Play(Push).CurrentPlayer())
	assert.True(t, root.Play(Fold).IsTerminal())
	assert.False(t, root.Play(Push).IsTerminal())
	assert.True(t, root.Play(Push).Play(Push).IsTerminal())
}

func TestFoldValuesMatchBruteForce(t *testing.T) {
	pmi := randomReach(1)
	game := New(nil, 10)
	testCases := []struct {
		history cfr.History
		player  int
		payoff  float64
	}{
		{cfr.NewHistory(Fold), 0, -0.5},
		{cfr.NewHistory(Fold), 1, 0.5},
		{cfr.NewHistory(Push, Fold), 0, 1},
		{cfr.NewHistory(Push, Fold), 1, -1},
	}

	for _, tc := range testCases {
		node := Node{history: tc.history}
		got := game.Evaluate(node, tc.player, pmi)
		require.Len(t, got, equity.NumHands)
		for _, k := range []int{0, 1, 77, 600, equity.NumHands - 1} {
			want := 0.0
			for j, p := range pmi {
				if !equity.Overlaps(k, j) {
					want += tc.payoff * p * dealProbability
				}
			}

			assert.InDelta(t, want, got[k], 1e-15, "history %v player %d hand %d",
				tc.history, tc.player, k)
		}
	}
}

func TestShowdownAllTies(t *testing.T) {
	game := New(syntheticTable(allTies), 10)
	showdown := Node{history: cfr.NewHistory(Push, Push)}
	for player := 0; player < 2; player++ {
		for _, v := range game.Evaluate(showdown, player, randomReach(2)) {
			assert.InDelta(t, 0.0, v, 1e-15)
		}
	}
}

func TestShowdownValues(t *testing.T) {
	const stack = 20.0
	game := New(syntheticTable(higherIndexWins), stack)
	showdown := Node{history: cfr.NewHistory(Push, Push)}
	pmi := randomReach(3)
	got := game.Evaluate(showdown, 0, pmi)

	for _, k := range []int{0, 500, equity.NumHands - 1} {
		want := 0.0
		for j, p := range pmi {
			switch {
			case equity.Overlaps(k, j):
			case k > j:
				want += stack * p * dealProbability
			default:
				want -= stack * p * dealProbability
			}
		}

		assert.InDelta(t, want, got[k], 1e-12, "hand %d", k)
	}

	// The player argument does not matter at showdown.
	assert.Equal(t, got, game.Evaluate(showdown, 1, pmi))
}

func TestShowdownIsZeroSum(t *testing.T) {
	game := New(syntheticTable(higherIndexWins), 10)
	showdown := Node{history: cfr.NewHistory(Push, Push)}
	ones := make([]float64, equity.NumHands)
	floats.AddConst(1, ones)

	v := game.Evaluate(showdown, 0, ones)
	assert.InDelta(t, 0.0, floats.Sum(v), 1e-12)
}

func TestSolveAllTies(t *testing.T) {
	game := New(syntheticTable(allTies), 10)
	strategy := cfr.New[Node](game, cfr.DefaultDiscountParams()).Compute(30)

	push := ActionChart(strategy, PusherHistory, Push)
	call := ActionChart(strategy, CallerHistory, Push)
	assert.Greater(t, push.Overall(), 0.99)
	assert.Greater(t, call.Overall(), 0.99)

	assert.InDelta(t, 0.0, cfr.ExpectedValue[Node](game, 0, strategy), 1e-3)
	assert.Less(t, cfr.Exploitability[Node](game, strategy), 1e-2)
}

func TestSolveStrictRanking(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping solve in short mode")
	}

	// Every hand has a strict rank, so only part of the range can profitably
	// push for 10bb and only part of that can call.
	game := New(syntheticTable(higherIndexWins), 10)
	strategy := cfr.New[Node](game, cfr.DefaultDiscountParams()).Compute(300)

	push := ActionChart(strategy, PusherHistory, Push)
	call := ActionChart(strategy, CallerHistory, Push)
	for _, c := range []*Chart{push, call} {
		assert.Greater(t, c.Overall(), 0.0)
		assert.Less(t, c.Overall(), 1.0)
	}
	assert.Less(t, call.Overall(), push.Overall())

	top := equity.NumHands - 1
	assert.Greater(t, strategy.Get(PusherHistory)[Push][top], 0.999)
	assert.Greater(t, strategy.Get(CallerHistory)[Push][top], 0.999)
	assert.Less(t, strategy.Get(PusherHistory)[Push][0], 0.5)

	assert.Less(t, cfr.Exploitability[Node](game, strategy), 1e-3)
}

func TestSolveEquityTable(t *testing.T) {
	path := os.Getenv("EQUITY_TABLE")
	if path == "" || testing.Short() {
		t.Skip("EQUITY_TABLE not set")
	}

	table, err := equity.NewLoader(path, true).Get()
	require.NoError(t, err)

	game := New(table, 10)
	strategy := cfr.New[Node](game, cfr.DefaultDiscountParams()).Compute(1000)
	assert.Less(t, cfr.Exploitability[Node](game, strategy), 1e-3)

	push := ActionChart(strategy, PusherHistory, Push)
	call := ActionChart(strategy, CallerHistory, Push)
	for _, c := range []*Chart{push, call} {
		assert.Greater(t, c.Overall(), 0.0)
		assert.Less(t, c.Overall(), 1.0)
		assert.Greater(t, c.Get(Cell(equity.Ace, equity.Ace)), 0.999)
	}

	// Pushing more often with a better kicker.
	for _, suited := range []bool{true, false} {
		prev := 0.0
		for low := equity.Two; low < equity.Ace; low++ {
			p := push.Get(equity.HandClass{High: equity.Ace, Low: low, Suited: suited})
			assert.GreaterOrEqual(t, p, prev-1e-3, "A%v suited=%v", low, suited)
			prev = p
		}
	}
}

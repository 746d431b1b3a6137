package cfr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/go-dcfr"
	"github.com/timpalpant/go-dcfr/kuhn"
)

func TestComputeIsDeterministic(t *testing.T) {
	game := kuhn.NewGame()
	a := cfr.New[kuhn.Node](game, cfr.DefaultDiscountParams()).Compute(200)
	b := cfr.New[kuhn.Node](game, cfr.DefaultDiscountParams()).Compute(200)
	assert.Equal(t, a, b)
}

func TestComputeResetsState(t *testing.T) {
	game := kuhn.NewGame()
	m := cfr.New[kuhn.Node](game, cfr.DefaultDiscountParams())
	first := m.Compute(50)
	m.Compute(500)
	again := m.Compute(50)

	assert.Equal(t, 50, m.Iterations())
	assert.Equal(t, first, again)
}

func TestAverageStrategyIsDistribution(t *testing.T) {
	game := kuhn.NewGame()
	strategy := cfr.New[kuhn.Node](game, cfr.DefaultDiscountParams()).Compute(100)

	require.Len(t, strategy, 4)
	for h, entry := range strategy {
		require.Len(t, entry, 2, "history %v", h)
		for hand := 0; hand < game.NumPrivateHands(); hand++ {
			total := entry[0][hand] + entry[1][hand]
			assert.True(t, total == 0 || math.Abs(total-1) < 1e-9,
				"history %v hand %d: total probability %v", h, hand, total)
		}
	}
}

func TestCurrentStrategyIsDistribution(t *testing.T) {
	game := kuhn.NewGame()
	m := cfr.New[kuhn.Node](game, cfr.DefaultDiscountParams())
	strategy := m.Compute(10)

	for h := range strategy {
		current := m.CurrentStrategy(h)
		for hand := 0; hand < game.NumPrivateHands(); hand++ {
			assert.InDelta(t, 1.0, current[0][hand]+current[1][hand], 1e-9)
		}
	}
}

func TestComputeZeroIterations(t *testing.T) {
	game := kuhn.NewGame()
	strategy := cfr.New[kuhn.Node](game, cfr.DefaultDiscountParams()).Compute(0)

	require.Len(t, strategy, 4)
	for _, entry := range strategy {
		for _, p := range entry {
			assert.Equal(t, []float64{0, 0, 0}, p)
		}
	}
}

func TestExploitabilityDecreases(t *testing.T) {
	game := kuhn.NewGame()
	params := cfr.DefaultDiscountParams()

	prev := math.Inf(1)
	for _, n := range []int{10, 100, 1000} {
		strategy := cfr.New[kuhn.Node](game, params).Compute(n)
		e := cfr.Exploitability[kuhn.Node](game, strategy)
		assert.GreaterOrEqual(t, e, -1e-12)
		assert.Less(t, e, prev, "iterations=%d", n)
		prev = e
	}
}

package cfr

import (
	"time"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
)

// Minimizer implements Discounted CFR with full tree traversal, where reach
// probabilities and counterfactual values are vectors indexed by private hand.
type Minimizer[N Node[N], G Game[N]] struct {
	game   G
	params DiscountParams
	nHands int
	iter   int

	// Map of public history -> action -> hand.
	cumRegret   StrategyTable
	cumStrategy StrategyTable

	// Discount factors for the current iteration.
	discountPos float64
	discountNeg float64
	discountSum float64

	slicePool *floatSlicePool
}

// New creates a Minimizer for the given game. The node type must be given
// explicitly, e.g. cfr.New[kuhn.Node](game, params).
func New[N Node[N], G Game[N]](game G, params DiscountParams) *Minimizer[N, G] {
	return &Minimizer[N, G]{
		game:      game,
		params:    params,
		nHands:    game.NumPrivateHands(),
		slicePool: &floatSlicePool{},
	}
}

// Compute runs nIter iterations of self-play from freshly initialized tables
// and returns the average strategy. Any state from a previous call is discarded.
func (m *Minimizer[N, G]) Compute(nIter int) StrategyTable {
	root := m.game.Root()
	m.reset(root)

	ones := onesVec(m.nHands)

	logEvery := nIter / 10
	if logEvery == 0 {
		logEvery = 1
	}

	start := time.Now()
	for t := 0; t < nIter; t++ {
		m.discountPos, m.discountNeg, m.discountSum = m.params.GetDiscountFactors(t)
		for player := 0; player < 2; player++ {
			m.runHelper(root, player, ones, ones)
		}

		m.iter++
		if m.iter%logEvery == 0 {
			glog.V(1).Infof("[iter=%d] %v elapsed", m.iter, time.Since(start))
		}
	}

	return m.AverageStrategy()
}

// Iterations returns the number of completed iterations in the current run.
func (m *Minimizer[N, G]) Iterations() int {
	return m.iter
}

// AverageStrategy returns the time-averaged strategy accumulated so far.
// Hands that never reach a history have all-zero action probabilities there.
func (m *Minimizer[N, G]) AverageStrategy() StrategyTable {
	return m.cumStrategy.Normalized()
}

// CurrentStrategy returns the regret-matching strategy at history h.
func (m *Minimizer[N, G]) CurrentStrategy(h History) [][]float64 {
	return RegretMatching(m.cumRegret.Get(h))
}

func (m *Minimizer[N, G]) reset(root N) {
	m.iter = 0
	m.cumRegret = NewStrategyTable(root, m.nHands)
	m.cumStrategy = NewStrategyTable(root, m.nHands)
	glog.V(2).Infof("Initialized tables with %d public histories x %d private hands",
		len(m.cumRegret), m.nHands)
}

// runHelper returns the counterfactual values of player at node.
func (m *Minimizer[N, G]) runHelper(node N, player int, pi, pmi []float64) []float64 {
	if node.IsTerminal() {
		return m.game.Evaluate(node, player, pmi)
	}

	h := node.PublicHistory()
	regrets := m.cumRegret.checkActions(h, node.NumActions())
	strategy := RegretMatching(regrets)
	if node.CurrentPlayer() == player {
		return m.handleUpdatingPlayer(node, h, player, strategy, pi, pmi)
	}

	return m.handleOpponent(node, player, strategy, pi, pmi)
}

func (m *Minimizer[N, G]) handleUpdatingPlayer(node N, h History, player int, strategy [][]float64, pi, pmi []float64) []float64 {
	cfValue := make([]float64, m.nHands)
	actionValues := make([][]float64, len(strategy))
	for i, p := range strategy {
		childPi := m.slicePool.alloc(m.nHands)
		floats.MulTo(childPi, pi, p)
		actionValues[i] = m.runHelper(node.Play(i), player, childPi, pmi)
		m.slicePool.free(childPi)

		for j, v := range actionValues[i] {
			cfValue[j] += p[j] * v
		}
	}

	regrets := m.cumRegret.Get(h)
	strategySum := m.cumStrategy.Get(h)
	for i, r := range regrets {
		for j, x := range r {
			if x >= 0 {
				r[j] = x * m.discountPos
			} else {
				r[j] = x * m.discountNeg
			}
		}

		floats.Add(r, actionValues[i])
		floats.Sub(r, cfValue)

		s := strategySum[i]
		for j, p := range strategy[i] {
			s[j] += m.discountSum * p * pi[j]
		}
	}

	return cfValue
}

// handleOpponent propagates the opponent's reach through each action.
// The values are already expressed per hand of the updating player, so
// children are summed without weighting.
func (m *Minimizer[N, G]) handleOpponent(node N, player int, strategy [][]float64, pi, pmi []float64) []float64 {
	cfValue := make([]float64, m.nHands)
	for i, p := range strategy {
		childPmi := m.slicePool.alloc(m.nHands)
		floats.MulTo(childPmi, pmi, p)
		floats.Add(cfValue, m.runHelper(node.Play(i), player, pi, childPmi))
		m.slicePool.free(childPmi)
	}

	return cfValue
}

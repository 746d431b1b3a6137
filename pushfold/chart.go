package pushfold

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/timpalpant/go-dcfr"
	"github.com/timpalpant/go-dcfr/equity"
)

var (
	// PusherHistory is where the small blind decides.
	PusherHistory = cfr.NewHistory()
	// CallerHistory is where the big blind faces a push.
	CallerHistory = cfr.NewHistory(Push)
)

// Chart summarizes a per-hand action frequency over the 169 starting hand
// classes.
//
// In the usual 13x13 layout, row and column ranks run from ace down to
// deuce; suited hands lie above the diagonal and offsuit hands below it.
type Chart struct {
	freq    map[equity.HandClass]float64
	overall float64
}

// NewChart averages probs (indexed by hand) within each hand class.
func NewChart(probs []float64) *Chart {
	sum := make(map[equity.HandClass]float64, 169)
	for k, p := range probs {
		sum[equity.Class(k)] += p
	}

	for hc := range sum {
		sum[hc] /= float64(hc.Combos())
	}

	return &Chart{
		freq:    sum,
		overall: floats.Sum(probs) / equity.NumHands,
	}
}

// ActionChart returns the chart of how often action is taken at h.
func ActionChart(strategy cfr.StrategyTable, h cfr.History, action int) *Chart {
	return NewChart(strategy.Get(h)[action])
}

// Overall returns the frequency over all 1326 hands.
func (c *Chart) Overall() float64 {
	return c.overall
}

// Get returns the average frequency of a hand class.
func (c *Chart) Get(hc equity.HandClass) float64 {
	return c.freq[hc]
}

// Cell returns the hand class shown at (row, col).
func Cell(row, col equity.Rank) equity.HandClass {
	switch {
	case row == col:
		return equity.HandClass{High: row, Low: col}
	case col < row:
		return equity.HandClass{High: row, Low: col, Suited: true}
	default:
		return equity.HandClass{High: col, Low: row}
	}
}

// FormatFrequency renders a frequency in a fixed-width six-character cell.
func FormatFrequency(p float64) string {
	switch {
	case p >= 0.9995:
		return " 100.%"
	case p < 0.0005:
		return "   -  "
	default:
		return fmt.Sprintf(" %4.1f%%", 100*p)
	}
}

package cfr

import (
	"math"
)

// DiscountParams configure the per-iteration discounting of Discounted CFR.
// See: https://arxiv.org/pdf/1809.04040.pdf
type DiscountParams struct {
	Alpha float64 // Discount exponent for positive cumulative regret.
	Beta  float64 // Discount exponent for negative cumulative regret.
	Gamma float64 // Exponent of the weight on each iteration's strategy.
}

// DefaultDiscountParams returns the DCFR schedule recommended by Brown & Sandholm:
//   we found that setting α=3/2, β=0, and γ=2
//   led to performance that was consistently stronger than CFR+
func DefaultDiscountParams() DiscountParams {
	return DiscountParams{
		Alpha: 1.5,
		Beta:  0.0,
		Gamma: 2.0,
	}
}

// GetDiscountFactors returns the factors applied during (0-indexed) iteration t:
// positive and negative scale the existing cumulative regret according to its
// sign, and sum weights the current strategy's contribution to the average.
func (p DiscountParams) GetDiscountFactors(t int) (positive, negative, sum float64) {
	if t == 0 {
		// Nothing has been accumulated yet.
		return 0.0, 0.0, 1.0
	}

	// t^alpha / (t^alpha + 1)
	x := math.Pow(float64(t), p.Alpha)
	positive = x / (x + 1.0)

	// t^beta / (t^beta + 1)
	y := math.Pow(float64(t), p.Beta)
	negative = y / (y + 1.0)

	// (t+1)^gamma
	sum = math.Pow(float64(t+1), p.Gamma)
	return
}

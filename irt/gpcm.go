package irt

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CategoryProbs returns the probability of each of the m response
// categories for the given item at latent trait theta, under the
// generalized partial credit law
//
//	P(k) ∝ exp( Σ_{c=1..k} α_j (θ − b_{j,c}) ),  k = 1..m,
//
// where b_j is the item's boundary vector with a leading 0 prepended
// to the (m−1) stored boundaries. The cumulative log-scores are
// normalized with log-sum-exp, so extreme θ or α values cannot
// overflow. Rasch, 2PL, and PCM are the fixed-α and m=2 cases of the
// same law; for 3PL banks the guessing asymptote is blended in after
// normalization.
//
// The returned slice indexes categories 0-based: entry k holds the
// probability of category k+1.
func (b *ItemBank) CategoryProbs(item int, theta float64) []float64 {
	alpha := b.Alphas[item]
	row := b.Betas[item]
	m := b.categories

	logu := make([]float64, m)
	cum := alpha * theta // c = 1 term, first boundary fixed at 0
	logu[0] = cum
	for k := 1; k < m; k++ {
		cum += alpha * (theta - row[k-1])
		logu[k] = cum
	}

	lse := floats.LogSumExp(logu)
	p := make([]float64, m)
	for k := range p {
		p[k] = math.Exp(logu[k] - lse)
	}

	if b.Guessing != nil {
		// 3PL: success probability floors at the guessing asymptote.
		correct := b.Guessing[item] + (1-b.Guessing[item])*p[1]
		p[1] = correct
		p[0] = 1 - correct
	}
	return p
}

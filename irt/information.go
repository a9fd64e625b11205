package irt

import "gonum.org/v1/gonum/floats"

// ExpectedScore returns the item characteristic curve ordinate at
// theta: the expected score of the item with categories counted as
// 0..m−1 points.
func (b *ItemBank) ExpectedScore(item int, theta float64) float64 {
	p := b.CategoryProbs(item, theta)
	e := 0.0
	for k, pk := range p {
		e += float64(k) * pk
	}
	return e
}

// ItemInformation returns the Fisher information the item carries
// about theta. For partial-credit-family items this is the score
// variance scaled by α²; for 3PL items the guessing floor discounts
// the information below the asymptote.
func (b *ItemBank) ItemInformation(item int, theta float64) float64 {
	alpha := b.Alphas[item]
	if b.Guessing != nil {
		c := b.Guessing[item]
		p := b.SuccessProb(item, theta)
		if p == 0 || p == 1 {
			return 0
		}
		d := (p - c) / (1 - c)
		return alpha * alpha * d * d * (1 - p) / p
	}
	p := b.CategoryProbs(item, theta)
	mean, meanSq := 0.0, 0.0
	for k, pk := range p {
		mean += float64(k) * pk
		meanSq += float64(k*k) * pk
	}
	return alpha * alpha * (meanSq - mean*mean)
}

// TestInformation sums item information across the bank.
func (b *ItemBank) TestInformation(theta float64) float64 {
	total := 0.0
	for j := range b.Betas {
		total += b.ItemInformation(j, theta)
	}
	return total
}

// ThetaGrid returns n evenly spaced trait values spanning [lo, hi],
// the usual abscissa for characteristic and information curves.
func ThetaGrid(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// ProbCurves evaluates the item's category probabilities over a grid;
// row i holds the m-vector at grid[i]. This is the data behind
// category characteristic curve plots.
func (b *ItemBank) ProbCurves(item int, grid []float64) [][]float64 {
	curves := make([][]float64, len(grid))
	for i, theta := range grid {
		curves[i] = b.CategoryProbs(item, theta)
	}
	return curves
}

// InformationCurve evaluates test information over a grid.
func (b *ItemBank) InformationCurve(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, theta := range grid {
		out[i] = b.TestInformation(theta)
	}
	return out
}

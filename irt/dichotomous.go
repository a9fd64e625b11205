package irt

import "math"

// Logistic is the standard logistic function 1 / (1 + exp(−x)).
func Logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SuccessProb returns the probability of the higher of the two
// categories for a dichotomous item, i.e. P(correct). For a 2PL bank
// this equals Logistic(α(θ − b)); Rasch fixes α = 1 and 3PL adds the
// guessing floor c + (1−c)·Logistic(α(θ − b)). Meaningful only for
// dichotomous banks; on a polytomous bank it returns the probability
// of category 2.
func (b *ItemBank) SuccessProb(item int, theta float64) float64 {
	return b.CategoryProbs(item, theta)[1]
}

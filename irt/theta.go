package irt

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ThetaSampler generates latent trait values for simulated respondents.
type ThetaSampler interface {
	// Sample returns one latent trait draw.
	Sample(rng *rand.Rand) float64
}

// NormalThetaSampler draws latent traits from Normal(Mean, StdDev),
// the generating population used throughout the model examples.
type NormalThetaSampler struct {
	Mean   float64
	StdDev float64
}

func (s NormalThetaSampler) Sample(rng *rand.Rand) float64 {
	return distuv.Normal{Mu: s.Mean, Sigma: s.StdDev, Src: rng}.Rand()
}

// SampleThetas draws n latent trait values from the sampler.
func SampleThetas(s ThetaSampler, n int, rng *rand.Rand) []float64 {
	thetas := make([]float64, n)
	for i := range thetas {
		thetas[i] = s.Sample(rng)
	}
	return thetas
}

package irt

import (
	"math/rand/v2"
	"sync"

	"github.com/sirupsen/logrus"
)

// Simulator draws categorical responses for a fixed item bank. Every
// respondent row is generated from its own PCG stream keyed (Seed, row
// index), so output is bit-identical for a given seed no matter how
// many workers run the fan-out.
type Simulator struct {
	Bank    *ItemBank
	Seed    uint64
	Workers int // number of goroutines across respondents; <= 1 runs serial
}

// NewSimulator returns a Simulator over a validated bank.
func NewSimulator(bank *ItemBank, seed uint64, workers int) *Simulator {
	if workers < 1 {
		workers = 1
	}
	return &Simulator{Bank: bank, Seed: seed, Workers: workers}
}

// Simulate produces one response table with a row per latent trait
// value, categories in [1, m]. The computation is independent per
// (respondent, item) cell; rows are sharded across Workers goroutines.
func (s *Simulator) Simulate(thetas []float64) *ResponseTable {
	n := len(thetas)
	items := s.Bank.Items()
	logrus.Debugf("simulating %d respondents x %d items (%s, m=%d, workers=%d)",
		n, items, s.Bank.Kind, s.Bank.Categories(), s.Workers)

	data := make([][]int, n)
	for i := range data {
		data[i] = make([]int, items)
	}

	if s.Workers == 1 || n < 2 {
		for i, theta := range thetas {
			s.simulateRow(i, theta, data[i])
		}
		return &ResponseTable{Data: data, Categories: s.Bank.Categories()}
	}

	var wg sync.WaitGroup
	for w := 0; w < s.Workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < n; i += s.Workers {
				s.simulateRow(i, thetas[i], data[i])
			}
		}(w)
	}
	wg.Wait()
	return &ResponseTable{Data: data, Categories: s.Bank.Categories()}
}

// simulateRow fills one respondent's responses from that row's stream.
func (s *Simulator) simulateRow(i int, theta float64, out []int) {
	rng := rand.New(rand.NewPCG(s.Seed, uint64(i)))
	for j := range out {
		out[j] = drawCategory(s.Bank.CategoryProbs(j, theta), rng)
	}
}

// drawCategory samples a 1-based category index from a probability
// vector by walking the cumulative distribution.
func drawCategory(p []float64, rng *rand.Rand) int {
	u := rng.Float64()
	cum := 0.0
	for k, pk := range p {
		cum += pk
		if u < cum {
			return k + 1
		}
	}
	// Rounding can leave cum a hair under 1; the draw belongs to the
	// last category.
	return len(p)
}

// SimulateResponses is the one-call form: build a GPCM bank from raw
// parameter tables and simulate one dataset serially. The only error
// condition is a parameter-shape mismatch.
func SimulateResponses(thetas []float64, betas [][]float64, alphas []float64, seed uint64) (*ResponseTable, error) {
	bank, err := NewItemBank(ModelGPCM, alphas, betas, nil)
	if err != nil {
		return nil, err
	}
	return NewSimulator(bank, seed, 1).Simulate(thetas), nil
}

package irt

import (
	"fmt"
	"math"
)

// ModelKind selects which parametric IRT model an ItemBank represents.
type ModelKind string

const (
	ModelRasch ModelKind = "rasch" // dichotomous, discrimination fixed at 1
	Model2PL   ModelKind = "2pl"   // dichotomous, free discrimination
	Model3PL   ModelKind = "3pl"   // dichotomous, free discrimination + guessing
	ModelPCM   ModelKind = "pcm"   // polytomous, discrimination fixed at 1
	ModelGPCM  ModelKind = "gpcm"  // polytomous, free discrimination
)

// ParseModelKind converts a CLI/YAML model string to a ModelKind.
func ParseModelKind(s string) (ModelKind, error) {
	switch ModelKind(s) {
	case ModelRasch, Model2PL, Model3PL, ModelPCM, ModelGPCM:
		return ModelKind(s), nil
	}
	return "", fmt.Errorf("%w: %q (want rasch, 2pl, 3pl, pcm, or gpcm)", ErrUnknownModel, s)
}

// ItemBank holds the generating parameters for a fixed set of items.
// All items share the same category count m = len(Betas[j]) + 1; the
// boundary table is rectangular and ragged input is rejected.
type ItemBank struct {
	Kind   ModelKind
	Alphas []float64   // per-item discrimination
	Betas  [][]float64 // items × (m-1) category boundary parameters

	// Guessing is the per-item lower asymptote, populated only for
	// Model3PL (zeros when not supplied). Nil for all other kinds.
	Guessing []float64

	categories int
}

// NewItemBank validates the parameter shapes and values and returns a
// bank ready for simulation and curve evaluation.
//
// For ModelRasch and ModelPCM, alphas may be nil; discrimination is
// fixed at 1 either way. For Model3PL, guessing may be nil (no
// guessing). A discrimination of exactly 0 is permitted and yields a
// uniform category distribution for that item.
func NewItemBank(kind ModelKind, alphas []float64, betas [][]float64, guessing []float64) (*ItemBank, error) {
	if _, err := ParseModelKind(string(kind)); err != nil {
		return nil, err
	}
	items := len(betas)
	if items == 0 {
		return nil, fmt.Errorf("%w: empty boundary table", ErrInvalidDimensions)
	}
	width := len(betas[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: item 0 has no boundary parameters", ErrInvalidDimensions)
	}
	for j, row := range betas {
		if len(row) != width {
			return nil, fmt.Errorf("%w: item %d has %d boundaries, item 0 has %d (ragged tables unsupported)",
				ErrInvalidDimensions, j, len(row), width)
		}
		for c, b := range row {
			if math.IsNaN(b) || math.IsInf(b, 0) {
				return nil, fmt.Errorf("%w: item %d boundary %d is %v", ErrInvalidParameter, j, c, b)
			}
		}
	}

	dichotomous := kind == ModelRasch || kind == Model2PL || kind == Model3PL
	if dichotomous && width != 1 {
		return nil, fmt.Errorf("%w: %s items are dichotomous but boundary table has %d columns",
			ErrInvalidDimensions, kind, width)
	}

	fixedAlpha := kind == ModelRasch || kind == ModelPCM
	if alphas == nil && fixedAlpha {
		alphas = make([]float64, items)
		for j := range alphas {
			alphas[j] = 1
		}
	}
	if len(alphas) != items {
		return nil, fmt.Errorf("%w: %d discriminations for %d items", ErrInvalidDimensions, len(alphas), items)
	}
	checked := make([]float64, items)
	copy(checked, alphas)
	for j, a := range checked {
		if fixedAlpha {
			checked[j] = 1
			continue
		}
		if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
			return nil, fmt.Errorf("%w: item %d discrimination %v", ErrInvalidParameter, j, a)
		}
	}

	var g []float64
	switch {
	case kind == Model3PL:
		g = make([]float64, items)
		if guessing != nil {
			if len(guessing) != items {
				return nil, fmt.Errorf("%w: %d guessing parameters for %d items", ErrInvalidDimensions, len(guessing), items)
			}
			copy(g, guessing)
		}
		for j, c := range g {
			if math.IsNaN(c) || c < 0 || c >= 1 {
				return nil, fmt.Errorf("%w: item %d guessing %v outside [0, 1)", ErrInvalidParameter, j, c)
			}
		}
	case guessing != nil:
		return nil, fmt.Errorf("%w: guessing parameters are only valid for the 3pl model", ErrInvalidParameter)
	}

	return &ItemBank{
		Kind:       kind,
		Alphas:     checked,
		Betas:      betas,
		Guessing:   g,
		categories: width + 1,
	}, nil
}

// Items returns the number of items in the bank.
func (b *ItemBank) Items() int { return len(b.Betas) }

// Categories returns the shared category count m.
func (b *ItemBank) Categories() int { return b.categories }

package irt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemBank_ValidGPCM(t *testing.T) {
	bank, err := NewItemBank(ModelGPCM,
		[]float64{1.3, 0.8},
		[][]float64{{-1, 0, 1}, {-0.5, 0.5, 1.5}},
		nil)
	require.NoError(t, err)
	assert.Equal(t, 2, bank.Items())
	assert.Equal(t, 4, bank.Categories())
}

func TestNewItemBank_AlphaCountMismatch(t *testing.T) {
	_, err := NewItemBank(ModelGPCM,
		[]float64{1.0, 1.0},
		[][]float64{{-1, 0, 1}, {0, 1}, {-1, 1, 2}},
		nil)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewItemBank_RaggedBoundaryTable(t *testing.T) {
	_, err := NewItemBank(ModelGPCM,
		[]float64{1.0, 1.0},
		[][]float64{{-1, 0, 1}, {0, 1}},
		nil)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewItemBank_EmptyBoundaryTable(t *testing.T) {
	_, err := NewItemBank(ModelGPCM, nil, nil, nil)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewItemBank(ModelGPCM, []float64{1}, [][]float64{{}}, nil)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewItemBank_DichotomousRejectsWideTable(t *testing.T) {
	_, err := NewItemBank(Model2PL, []float64{1.0}, [][]float64{{-1, 0, 1}}, nil)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewItemBank_NegativeDiscrimination(t *testing.T) {
	_, err := NewItemBank(Model2PL, []float64{-0.5}, [][]float64{{0}}, nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewItemBank_GuessingOutsideUnitInterval(t *testing.T) {
	_, err := NewItemBank(Model3PL, []float64{1.0}, [][]float64{{0}}, []float64{1.0})
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewItemBank(Model3PL, []float64{1.0}, [][]float64{{0}}, []float64{-0.1})
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewItemBank_GuessingOnlyValidFor3PL(t *testing.T) {
	_, err := NewItemBank(Model2PL, []float64{1.0}, [][]float64{{0}}, []float64{0.2})
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewItemBank_RaschForcesUnitDiscrimination(t *testing.T) {
	bank, err := NewItemBank(ModelRasch, []float64{2.5, 0.3}, [][]float64{{-1}, {1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, bank.Alphas)

	// nil alphas are also accepted for fixed-discrimination kinds
	bank, err = NewItemBank(ModelPCM, nil, [][]float64{{-1, 0, 1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, bank.Alphas)
}

func TestParseModelKind(t *testing.T) {
	for _, s := range []string{"rasch", "2pl", "3pl", "pcm", "gpcm"} {
		kind, err := ParseModelKind(s)
		require.NoError(t, err)
		assert.Equal(t, ModelKind(s), kind)
	}
	_, err := ParseModelKind("graded")
	require.ErrorIs(t, err, ErrUnknownModel)
}

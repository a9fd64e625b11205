package irt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *ResponseTable {
	return &ResponseTable{
		Data: [][]int{
			{1, 4, 2},
			{3, 2, 2},
			{4, 4, 4},
		},
		Categories: 4,
	}
}

func TestResponseTable_Shape(t *testing.T) {
	table := sampleTable()
	assert.Equal(t, 3, table.Respondents())
	assert.Equal(t, 3, table.Items())

	empty := &ResponseTable{Categories: 4}
	assert.Equal(t, 0, empty.Respondents())
	assert.Equal(t, 0, empty.Items())
}

func TestResponseTable_ZeroIndexed(t *testing.T) {
	shifted := sampleTable().ZeroIndexed()
	assert.Equal(t, [][]int{{0, 3, 1}, {2, 1, 1}, {3, 3, 3}}, shifted.Data)
	assert.Equal(t, 4, shifted.Categories)

	// the original is untouched
	assert.Equal(t, [][]int{{1, 4, 2}, {3, 2, 2}, {4, 4, 4}}, sampleTable().Data)
}

func TestResponseTable_RawScores(t *testing.T) {
	// category k scores k-1 points: rows score 4, 4, 9
	assert.Equal(t, []float64{4, 4, 9}, sampleTable().RawScores())
}

func TestResponseTable_Summarize(t *testing.T) {
	s := sampleTable().Summarize()
	assert.InDelta(t, 17.0/3.0, s.Mean, 1e-12)
	assert.Equal(t, 4.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.Greater(t, s.StdDev, 0.0)

	assert.Equal(t, ScoreSummary{}, (&ResponseTable{}).Summarize())
}

func TestResponseTable_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteCSV(&buf))
	assert.Equal(t, "item_1,item_2,item_3\n1,4,2\n3,2,2\n4,4,4\n", buf.String())
}

package irt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ResponseTable is a simulated dataset: one row per respondent, one
// column per item, each cell a category index. Fresh tables from the
// simulator hold categories in [1, m]; ZeroIndexed gives the [0, m−1]
// convention some fitting libraries expect.
type ResponseTable struct {
	Data       [][]int
	Categories int
}

// Respondents returns the row count.
func (t *ResponseTable) Respondents() int { return len(t.Data) }

// Items returns the column count.
func (t *ResponseTable) Items() int {
	if len(t.Data) == 0 {
		return 0
	}
	return len(t.Data[0])
}

// ZeroIndexed returns a copy of the table with every category shifted
// down by one, mapping [1, m] onto [0, m−1].
func (t *ResponseTable) ZeroIndexed() *ResponseTable {
	shifted := make([][]int, len(t.Data))
	for i, row := range t.Data {
		s := make([]int, len(row))
		for j, v := range row {
			s[j] = v - 1
		}
		shifted[i] = s
	}
	return &ResponseTable{Data: shifted, Categories: t.Categories}
}

// RawScores returns each respondent's total score, counting category k
// as k−1 points so a table of all-lowest responses scores 0.
func (t *ResponseTable) RawScores() []float64 {
	scores := make([]float64, len(t.Data))
	for i, row := range t.Data {
		total := 0
		for _, v := range row {
			total += v - 1
		}
		scores[i] = float64(total)
	}
	return scores
}

// ScoreSummary describes the raw-score distribution of a table.
type ScoreSummary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the raw-score distribution summary.
func (t *ResponseTable) Summarize() ScoreSummary {
	scores := t.RawScores()
	if len(scores) == 0 {
		return ScoreSummary{}
	}
	return ScoreSummary{
		Mean:   stat.Mean(scores, nil),
		StdDev: stat.StdDev(scores, nil),
		Min:    floats.Min(scores),
		Max:    floats.Max(scores),
	}
}

// WriteCSV emits the table with an item_1..item_J header row.
func (t *ResponseTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, t.Items())
	for j := range header {
		header[j] = fmt.Sprintf("item_%d", j+1)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, t.Items())
	for _, row := range t.Data {
		for j, v := range row {
			record[j] = strconv.Itoa(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

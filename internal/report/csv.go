// Package report serializes analysis results to CSV and reads them
// back. The CSV files are the only artifact connecting the analyze and
// plot invocations.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/runnerr0/sentistream/internal/aggregate"
	"github.com/runnerr0/sentistream/internal/sentiment"
)

var (
	commentsHeader = []string{"id", "comment", "timestamp", "score", "label"}
	tokensHeader   = []string{"token", "surface", "count", "score", "percent"}
)

// WriteComments writes one row per scored comment, preserving input
// order. The containing directory is created if absent; an existing
// file is overwritten.
func WriteComments(path string, results []sentiment.Result) error {
	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, commentsHeader)
	for _, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Text,
			r.Timestamp,
			formatScore(r.Score),
			string(r.Label),
		})
	}
	return writeCSV(path, rows)
}

// ReadComments reads a comments CSV back into results. A header
// mismatch or malformed row is an error, not a skip.
func ReadComments(path string) ([]sentiment.Result, error) {
	rows, err := readCSV(path, commentsHeader)
	if err != nil {
		return nil, err
	}

	results := make([]sentiment.Result, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: parsing id: %w", path, i+2, err)
		}
		score, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: parsing score: %w", path, i+2, err)
		}
		label, err := sentiment.ParseLabel(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		results = append(results, sentiment.Result{ID: id, Text: row[1], Timestamp: row[2], Score: score, Label: label})
	}
	return results, nil
}

// WriteTokens writes the full token vocabulary, one row per token, in
// the order given (percent descending for the standard pipeline).
func WriteTokens(path string, aggs []aggregate.TokenAggregate) error {
	rows := make([][]string, 0, len(aggs)+1)
	rows = append(rows, tokensHeader)
	for _, a := range aggs {
		rows = append(rows, []string{
			a.Token,
			a.Surface,
			strconv.Itoa(a.Count),
			formatScore(a.Score),
			formatScore(a.Percent),
		})
	}
	return writeCSV(path, rows)
}

// ReadTokens reads a tokens CSV back into aggregates, preserving the
// stored order.
func ReadTokens(path string) ([]aggregate.TokenAggregate, error) {
	rows, err := readCSV(path, tokensHeader)
	if err != nil {
		return nil, err
	}

	aggs := make([]aggregate.TokenAggregate, 0, len(rows))
	for i, row := range rows {
		count, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: parsing count: %w", path, i+2, err)
		}
		score, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: parsing score: %w", path, i+2, err)
		}
		percent, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: parsing percent: %w", path, i+2, err)
		}
		aggs = append(aggs, aggregate.TokenAggregate{
			Token:   row[0],
			Surface: row[1],
			Count:   count,
			Score:   score,
			Percent: percent,
		})
	}
	return aggs, nil
}

func writeCSV(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// readCSV reads all data rows of a CSV file after verifying its header.
func readCSV(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("reading %s: file is empty", path)
	}

	if len(all[0]) != len(header) {
		return nil, fmt.Errorf("reading %s: unexpected header %v", path, all[0])
	}
	for i, col := range header {
		if all[0][i] != col {
			return nil, fmt.Errorf("reading %s: unexpected header %v", path, all[0])
		}
	}

	return all[1:], nil
}

// formatScore renders a float with the shortest exact representation,
// keeping CSV output byte-stable across runs.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

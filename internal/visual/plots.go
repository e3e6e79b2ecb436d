// Package visual renders the two trend charts: mean sentiment per
// chunk of the comment stream, and top-token contribution shares.
package visual

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/runnerr0/sentistream/internal/aggregate"
)

// ErrNoData is returned when there is nothing to plot. Callers treat
// it as a skip, not a failure.
var ErrNoData = errors.New("no data to plot")

// SaveCommentTrend renders the mean-sentiment-per-chunk line chart to
// path, creating the containing directory if absent.
func SaveCommentTrend(chunks []aggregate.ChunkAggregate, path string) error {
	if len(chunks) == 0 {
		return ErrNoData
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Sentiment Trend of Comments"
	p.X.Label.Text = "Chunk"
	p.Y.Label.Text = "Mean Sentiment Score"
	p.Y.Min, p.Y.Max = -1, 1

	pts := make(plotter.XYs, len(chunks))
	for i, c := range chunks {
		pts[i] = plotter.XY{X: float64(c.Index), Y: c.Mean}
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("building comment trend plot: %w", err)
	}
	p.Add(plotter.NewGrid(), line, points)

	if err := p.Save(14*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("saving comment trend plot: %w", err)
	}
	return nil
}

// SaveTokenTrend renders the top-token contribution bar chart to path,
// labeled with surface forms, creating the containing directory if
// absent.
func SaveTokenTrend(tokens []aggregate.TokenAggregate, path string) error {
	if len(tokens) == 0 || allSharesZero(tokens) {
		return ErrNoData
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Sentiment Trend of Tokens"
	p.X.Label.Text = "Token"
	p.Y.Label.Text = "Contribution Share (%)"

	values := make(plotter.Values, len(tokens))
	labels := make([]string, len(tokens))
	for i, t := range tokens {
		values[i] = t.Percent
		labels[i] = t.Surface
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("building token trend plot: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	// Slant the labels so dense vocabularies stay readable.
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.XAlign = -1
	p.X.Tick.Label.YAlign = -0.5

	if err := p.Save(14*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("saving token trend plot: %w", err)
	}
	return nil
}

// allSharesZero reports a vocabulary with no contribution to chart,
// the all-neutral-corpus case.
func allSharesZero(tokens []aggregate.TokenAggregate) bool {
	for _, t := range tokens {
		if t.Percent != 0 {
			return false
		}
	}
	return true
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating plot directory: %w", err)
	}
	return nil
}

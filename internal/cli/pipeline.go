package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runnerr0/sentistream/internal/aggregate"
	"github.com/runnerr0/sentistream/internal/config"
	"github.com/runnerr0/sentistream/internal/ingest"
	"github.com/runnerr0/sentistream/internal/prep"
	"github.com/runnerr0/sentistream/internal/report"
	"github.com/runnerr0/sentistream/internal/sentiment"
	"github.com/runnerr0/sentistream/internal/visual"
)

// analysis is the in-memory outcome of one analyze pass over a stream.
type analysis struct {
	Results []sentiment.Result
	Tokens  []aggregate.TokenAggregate // full vocabulary, percent descending
	Skipped int

	CommentsCSV string
	TokensCSV   string
	ParamsFile  string
}

// analyzeStream runs reader, preprocessor, scorer, aggregator, and CSV
// writer over one input file, recording the visual parameters alongside
// the CSVs so plot picks them up. The scorer is passed in so the
// lexicon precondition is checked before the stream is touched.
func analyzeStream(cfg *config.Config, scorer *sentiment.Scorer, input, csvDir string, chunks int, percent float64) (*analysis, error) {
	records, skipped, err := ingest.NewReader(input).Read()
	if err != nil {
		return nil, err
	}

	pre := prep.New(cfg.Prep.NegationWindow, cfg.Prep.ExtraStopwords, cfg.Prep.KeepWords)
	comments := pre.ProcessAll(records)

	results := scorer.ScoreAll(comments)
	surfaces := prep.BuildSurfaceMap(comments)
	tokens := aggregate.Tokens(comments, results, scorer, surfaces)

	out := &analysis{
		Results:     results,
		Tokens:      tokens,
		Skipped:     skipped,
		CommentsCSV: filepath.Join(csvDir, cfg.Output.CommentsCSV),
		TokensCSV:   filepath.Join(csvDir, cfg.Output.TokensCSV),
		ParamsFile:  filepath.Join(csvDir, cfg.Output.ParamsFile),
	}

	if err := report.WriteComments(out.CommentsCSV, results); err != nil {
		return nil, err
	}
	if err := report.WriteTokens(out.TokensCSV, tokens); err != nil {
		return nil, err
	}
	if err := report.WriteParams(out.ParamsFile, report.RunParams{CommentChunks: chunks, TokensPercent: percent}); err != nil {
		return nil, err
	}

	return out, nil
}

// renderPlots writes the two trend charts and returns the paths of the
// images actually written. Empty series are skipped with a notice, not
// an error.
func renderPlots(cfg *config.Config, scores []float64, tokens []aggregate.TokenAggregate, plotDir string, chunks int, percent float64) ([]string, error) {
	var written []string

	commentPath := filepath.Join(plotDir, cfg.Output.CommentsPlot)
	err := visual.SaveCommentTrend(aggregate.Chunks(scores, chunks), commentPath)
	switch {
	case errors.Is(err, visual.ErrNoData):
		fmt.Fprintln(os.Stderr, "warning: no comment data; skipping comment trend plot")
	case err != nil:
		return written, err
	default:
		written = append(written, commentPath)
	}

	tokenPath := filepath.Join(plotDir, cfg.Output.TokensPlot)
	err = visual.SaveTokenTrend(aggregate.TopPercent(tokens, percent), tokenPath)
	switch {
	case errors.Is(err, visual.ErrNoData):
		fmt.Fprintln(os.Stderr, "warning: no token data; skipping token trend plot")
	case err != nil:
		return written, err
	default:
		written = append(written, tokenPath)
	}

	return written, nil
}

// labelCounts tallies results per label for summaries.
func labelCounts(results []sentiment.Result) (positive, neutral, negative int) {
	for _, r := range results {
		switch r.Label {
		case sentiment.LabelPositive:
			positive++
		case sentiment.LabelNegative:
			negative++
		default:
			neutral++
		}
	}
	return positive, neutral, negative
}

// scoresOf extracts the ordered compound score series.
func scoresOf(results []sentiment.Result) []float64 {
	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Score
	}
	return scores
}

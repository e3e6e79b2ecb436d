package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runnerr0/sentistream/internal/config"
	"github.com/runnerr0/sentistream/internal/report"
)

// plotJSON is the JSON output structure for the plot command.
type plotJSON struct {
	Records       int      `json:"records"`
	Vocabulary    int      `json:"vocabulary"`
	CommentChunks int      `json:"visual_comments_chunks"`
	TokensPercent float64  `json:"visual_tokens_percent"`
	PlotFiles     []string `json:"plot_files"`
}

// Execute implements the go-flags Commander interface for PlotCommand.
func (c *PlotCommand) Execute(args []string) error {
	if c.InputCSVDir == "" {
		return fmt.Errorf("--input-csv-dir is required")
	}
	if c.OutputPlotDir == "" {
		return fmt.Errorf("--output-plot-dir is required")
	}

	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	return c.executeWithConfig(cfg)
}

// executeWithConfig renders plots from CSV results on disk (used by tests).
// The lexicon is not needed here: the CSV files carry everything.
// Explicit flags win, then the parameters recorded by analyze, then the
// config defaults.
func (c *PlotCommand) executeWithConfig(cfg *config.Config) error {
	chunks, percent := c.CommentChunks, c.TokensPercent
	if params, err := report.ReadParams(filepath.Join(c.InputCSVDir, cfg.Output.ParamsFile)); err == nil {
		if chunks <= 0 {
			chunks = params.CommentChunks
		}
		if percent <= 0 {
			percent = params.TokensPercent
		}
	}
	chunks, percent = resolveVisual(cfg, chunks, percent)

	results, err := report.ReadComments(filepath.Join(c.InputCSVDir, cfg.Output.CommentsCSV))
	if err != nil {
		return err
	}
	tokens, err := report.ReadTokens(filepath.Join(c.InputCSVDir, cfg.Output.TokensCSV))
	if err != nil {
		return err
	}

	written, err := renderPlots(cfg, scoresOf(results), tokens, c.OutputPlotDir, chunks, percent)
	if err != nil {
		return err
	}

	if c.globals != nil && c.globals.JSON {
		out := plotJSON{
			Records:       len(results),
			Vocabulary:    len(tokens),
			CommentChunks: chunks,
			TokensPercent: percent,
			PlotFiles:     written,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Sentiment Visualization")
	fmt.Println("=======================")
	fmt.Printf("Records:    %s\n", formatNumber(len(results)))
	fmt.Printf("Vocabulary: %s tokens\n", formatNumber(len(tokens)))
	fmt.Printf("Chunks:     %d\n", chunks)
	fmt.Printf("Top tokens: %.0f%%\n", percent*100)
	fmt.Println()
	if len(written) == 0 {
		fmt.Println("No plots written (empty input).")
		return nil
	}
	fmt.Println("Plot files:")
	for _, p := range written {
		fmt.Printf("  %s\n", p)
	}

	return nil
}

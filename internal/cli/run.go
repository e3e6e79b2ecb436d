package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/sentistream/internal/config"
)

// runJSON is the JSON output structure for the run command.
type runJSON struct {
	Input     string   `json:"input"`
	Records   int      `json:"records"`
	Skipped   int      `json:"skipped"`
	Positive  int      `json:"positive"`
	Neutral   int      `json:"neutral"`
	Negative  int      `json:"negative"`
	CSVFiles  []string `json:"csv_files"`
	PlotFiles []string `json:"plot_files"`
}

// Execute implements the go-flags Commander interface for RunCommand.
func (c *RunCommand) Execute(args []string) error {
	if err := validateStreamPath(c.InputStream); err != nil {
		return err
	}
	if c.OutputCSVDir == "" {
		return fmt.Errorf("--output-csv-dir is required")
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

// executeWithConfig runs the full pipeline against a provided config (used by tests).
func (c *RunCommand) executeWithConfig(cfg *config.Config) error {
	scorer, err := openScorer(cfg)
	if err != nil {
		return err
	}

	chunks, percent := resolveVisual(cfg, c.CommentChunks, c.TokensPercent)
	res, err := analyzeStream(cfg, scorer, c.InputStream, c.OutputCSVDir, chunks, percent)
	if err != nil {
		return err
	}

	written, err := renderPlots(cfg, scoresOf(res.Results), res.Tokens, c.OutputPlotDir, chunks, percent)
	if err != nil {
		return err
	}

	positive, neutral, negative := labelCounts(res.Results)

	if c.globals != nil && c.globals.JSON {
		out := runJSON{
			Input:     c.InputStream,
			Records:   len(res.Results),
			Skipped:   res.Skipped,
			Positive:  positive,
			Neutral:   neutral,
			Negative:  negative,
			CSVFiles:  []string{res.CommentsCSV, res.TokensCSV},
			PlotFiles: written,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Sentiment analysis pipeline completed successfully.")
	fmt.Println()
	if res.Skipped > 0 {
		fmt.Printf("Records:  %s (%s skipped)\n", formatNumber(len(res.Results)), formatNumber(res.Skipped))
	} else {
		fmt.Printf("Records:  %s\n", formatNumber(len(res.Results)))
	}
	fmt.Printf("Labels:   %s positive / %s neutral / %s negative\n",
		formatNumber(positive), formatNumber(neutral), formatNumber(negative))
	fmt.Println()
	fmt.Println("CSV files:")
	fmt.Printf("  %s\n", res.CommentsCSV)
	fmt.Printf("  %s\n", res.TokensCSV)
	if len(written) > 0 {
		fmt.Println("Plot files:")
		for _, p := range written {
			fmt.Printf("  %s\n", p)
		}
	}

	return nil
}

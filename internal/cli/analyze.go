package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/sentistream/internal/config"
)

// analyzeJSON is the JSON output structure for the analyze command.
type analyzeJSON struct {
	Input      string   `json:"input"`
	Records    int      `json:"records"`
	Skipped    int      `json:"skipped"`
	Positive   int      `json:"positive"`
	Neutral    int      `json:"neutral"`
	Negative   int      `json:"negative"`
	Vocabulary int      `json:"vocabulary"`
	CSVFiles   []string `json:"csv_files"`
}

// Execute implements the go-flags Commander interface for AnalyzeCommand.
func (c *AnalyzeCommand) Execute(args []string) error {
	if err := validateStreamPath(c.InputStream); err != nil {
		return err
	}
	if c.OutputCSVDir == "" {
		return fmt.Errorf("--output-csv-dir is required")
	}

	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	return c.executeWithConfig(cfg)
}

// executeWithConfig runs the analyze stage against a provided config (used by tests).
func (c *AnalyzeCommand) executeWithConfig(cfg *config.Config) error {
	scorer, err := openScorer(cfg)
	if err != nil {
		return err
	}

	chunks, percent := resolveVisual(cfg, c.CommentChunks, c.TokensPercent)
	res, err := analyzeStream(cfg, scorer, c.InputStream, c.OutputCSVDir, chunks, percent)
	if err != nil {
		return err
	}

	positive, neutral, negative := labelCounts(res.Results)

	if c.globals != nil && c.globals.JSON {
		out := analyzeJSON{
			Input:      c.InputStream,
			Records:    len(res.Results),
			Skipped:    res.Skipped,
			Positive:   positive,
			Neutral:    neutral,
			Negative:   negative,
			Vocabulary: len(res.Tokens),
			CSVFiles:   []string{res.CommentsCSV, res.TokensCSV},
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Sentiment Analysis")
	fmt.Println("==================")
	fmt.Printf("Input:      %s\n", c.InputStream)
	if res.Skipped > 0 {
		fmt.Printf("Records:    %s (%s skipped)\n", formatNumber(len(res.Results)), formatNumber(res.Skipped))
	} else {
		fmt.Printf("Records:    %s\n", formatNumber(len(res.Results)))
	}
	fmt.Printf("Positive:   %s\n", formatNumber(positive))
	fmt.Printf("Neutral:    %s\n", formatNumber(neutral))
	fmt.Printf("Negative:   %s\n", formatNumber(negative))
	fmt.Printf("Vocabulary: %s tokens\n", formatNumber(len(res.Tokens)))
	fmt.Println()
	fmt.Println("CSV files:")
	fmt.Printf("  %s\n", res.CommentsCSV)
	fmt.Printf("  %s\n", res.TokensCSV)

	return nil
}

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/runnerr0/sentistream/internal/config"
	"github.com/runnerr0/sentistream/internal/sentiment"
)

// loadConfig resolves the config for a command: the --config path when
// given, otherwise the default location (created with defaults on
// first use).
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.LoadOrCreateAt(globals.Config)
	}
	return config.LoadOrCreate()
}

// validateStreamPath checks the --input-stream flag value.
func validateStreamPath(path string) error {
	if path == "" {
		return fmt.Errorf("--input-stream is required")
	}
	if filepath.Ext(path) != ".jsonl" {
		return fmt.Errorf("--input-stream must be a .jsonl file, got %q", path)
	}
	return nil
}

// openScorer loads the lexicon named by the config and builds the
// scorer. A missing or unreadable lexicon is a fatal precondition,
// surfaced before any stream processing begins.
func openScorer(cfg *config.Config) (*sentiment.Scorer, error) {
	lexPath, err := config.ExpandPath(cfg.Lexicon.Path)
	if err != nil {
		return nil, err
	}

	emojiPath := ""
	if cfg.Lexicon.EmojiPath != "" {
		emojiPath, err = config.ExpandPath(cfg.Lexicon.EmojiPath)
		if err != nil {
			return nil, err
		}
	}

	analyzer, err := sentiment.NewAnalyzer(lexPath, emojiPath)
	if err != nil {
		return nil, fmt.Errorf("sentiment lexicon unavailable (download it once before running): %w", err)
	}

	return sentiment.NewScorer(
		analyzer,
		cfg.Scoring.PositiveThreshold,
		cfg.Scoring.NegativeThreshold,
		cfg.Scoring.AverageSentences,
	), nil
}

// resolveVisual fills unset visual flags from config defaults.
func resolveVisual(cfg *config.Config, chunks int, percent float64) (int, float64) {
	if chunks <= 0 {
		chunks = cfg.Visual.CommentChunks
	}
	if percent <= 0 {
		percent = cfg.Visual.TokensPercent
	}
	return chunks, percent
}

// formatNumber formats an int with comma separators.
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
		if len(s) > remainder {
			result.WriteString(",")
		}
	}
	for i := remainder; i < len(s); i += 3 {
		if i > remainder {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

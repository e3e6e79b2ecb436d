package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/sentistream/internal/config"
	"github.com/runnerr0/sentistream/internal/sentiment"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version           string  `json:"version"`
	LexiconPath       string  `json:"lexicon_path"`
	LexiconInstalled  bool    `json:"lexicon_installed"`
	LexiconWords      int     `json:"lexicon_words,omitempty"`
	EmojiLexiconPath  string  `json:"emoji_lexicon_path,omitempty"`
	EmojiLexiconWords int     `json:"emoji_lexicon_words,omitempty"`
	PositiveThreshold float64 `json:"positive_threshold"`
	NegativeThreshold float64 `json:"negative_threshold"`
	AverageSentences  bool    `json:"average_sentences"`
	CommentChunks     int     `json:"visual_comments_chunks"`
	TokensPercent     float64 `json:"visual_tokens_percent"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	return c.executeWithConfig(cfg)
}

// executeWithConfig runs status against a provided config (used by tests).
func (c *StatusCommand) executeWithConfig(cfg *config.Config) error {
	lexPath, err := config.ExpandPath(cfg.Lexicon.Path)
	if err != nil {
		return err
	}

	installed := false
	words := 0
	emojiWords := 0
	if _, err := os.Stat(lexPath); err == nil {
		emojiPath := ""
		if cfg.Lexicon.EmojiPath != "" {
			emojiPath, err = config.ExpandPath(cfg.Lexicon.EmojiPath)
			if err != nil {
				return err
			}
		}
		if analyzer, err := sentiment.NewAnalyzer(lexPath, emojiPath); err == nil {
			installed = true
			words = analyzer.LexiconSize()
			emojiWords = analyzer.EmojiLexiconSize()
		}
	}

	if c.globals != nil && c.globals.JSON {
		out := statusJSON{
			Version:           c.version,
			LexiconPath:       lexPath,
			LexiconInstalled:  installed,
			LexiconWords:      words,
			EmojiLexiconPath:  cfg.Lexicon.EmojiPath,
			EmojiLexiconWords: emojiWords,
			PositiveThreshold: cfg.Scoring.PositiveThreshold,
			NegativeThreshold: cfg.Scoring.NegativeThreshold,
			AverageSentences:  cfg.Scoring.AverageSentences,
			CommentChunks:     cfg.Visual.CommentChunks,
			TokensPercent:     cfg.Visual.TokensPercent,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Sentistream Status")
	fmt.Println("==================")
	fmt.Printf("Version:     %s\n", c.version)
	if installed {
		fmt.Printf("Lexicon:     %s (%s words)\n", lexPath, formatNumber(words))
	} else {
		fmt.Printf("Lexicon:     %s (not installed)\n", lexPath)
	}
	if cfg.Lexicon.EmojiPath != "" {
		fmt.Printf("Emoji:       %s (%s entries)\n", cfg.Lexicon.EmojiPath, formatNumber(emojiWords))
	}
	fmt.Printf("Thresholds:  positive >= %+.2f, negative <= %+.2f\n",
		cfg.Scoring.PositiveThreshold, cfg.Scoring.NegativeThreshold)
	fmt.Printf("Averaging:   per-sentence = %v\n", cfg.Scoring.AverageSentences)
	fmt.Printf("Chunks:      %d\n", cfg.Visual.CommentChunks)
	fmt.Printf("Top tokens:  %.0f%%\n", cfg.Visual.TokensPercent*100)

	return nil
}

package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Path:      "~/.config/sentistream/vader_lexicon.txt",
			EmojiPath: "",
		},
		Scoring: ScoringConfig{
			PositiveThreshold: 0.05,
			NegativeThreshold: -0.05,
			AverageSentences:  true,
		},
		Prep: PrepConfig{
			NegationWindow: 3,
			ExtraStopwords: []string{},
			KeepWords:      []string{},
		},
		Visual: VisualConfig{
			CommentChunks: 20,
			TokensPercent: 0.20,
		},
		Output: OutputConfig{
			CommentsCSV:  "comments_sentiment_trend.csv",
			TokensCSV:    "tokens_sentiment_trend.csv",
			CommentsPlot: "comments_sentiment_trend.png",
			TokensPlot:   "tokens_sentiment_trend.png",
			ParamsFile:   "run_params.yaml",
		},
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/sentistream/config.yaml"

// Config holds all sentistream configuration.
type Config struct {
	Lexicon LexiconConfig `yaml:"lexicon"`
	Scoring ScoringConfig `yaml:"scoring"`
	Prep    PrepConfig    `yaml:"prep"`
	Visual  VisualConfig  `yaml:"visual"`
	Output  OutputConfig  `yaml:"output"`
}

// LexiconConfig locates the pre-trained VADER corpus files. The lexicon
// must be downloaded once before the pipeline runs; its absence is fatal.
type LexiconConfig struct {
	Path      string `yaml:"path"`
	EmojiPath string `yaml:"emoji_path"`
}

type ScoringConfig struct {
	PositiveThreshold float64 `yaml:"positive_threshold"`
	NegativeThreshold float64 `yaml:"negative_threshold"`
	AverageSentences  bool    `yaml:"average_sentences"`
}

type PrepConfig struct {
	NegationWindow int      `yaml:"negation_window"`
	ExtraStopwords []string `yaml:"extra_stopwords"`
	KeepWords      []string `yaml:"keep_words"`
}

type VisualConfig struct {
	CommentChunks int     `yaml:"comment_chunks"`
	TokensPercent float64 `yaml:"tokens_percent"`
}

type OutputConfig struct {
	CommentsCSV  string `yaml:"comments_csv"`
	TokensCSV    string `yaml:"tokens_csv"`
	CommentsPlot string `yaml:"comments_plot"`
	TokensPlot   string `yaml:"tokens_plot"`
	ParamsFile   string `yaml:"params_file"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := ExpandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		cfg.applyEnv()
		return cfg, nil
	}

	return Load(path)
}

// applyEnv overrides config values from SENTISTREAM_* environment
// variables, loading a .env file first when one is present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("SENTISTREAM_LEXICON"); v != "" {
		c.Lexicon.Path = v
	}
	if v := os.Getenv("SENTISTREAM_EMOJI_LEXICON"); v != "" {
		c.Lexicon.EmojiPath = v
	}
	if v := os.Getenv("SENTISTREAM_COMMENT_CHUNKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Visual.CommentChunks = n
		}
	}
	if v := os.Getenv("SENTISTREAM_TOKENS_PERCENT"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil && p > 0 {
			c.Visual.TokensPercent = p
		}
	}
}

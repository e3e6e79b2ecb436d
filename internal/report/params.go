package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RunParams records the visual parameters an analyze pass ran with, so
// a later plot invocation over the same CSV directory reuses them by
// default.
type RunParams struct {
	CommentChunks int     `yaml:"comment_chunks"`
	TokensPercent float64 `yaml:"tokens_percent"`
}

// WriteParams writes the run parameters next to the CSV results,
// creating the containing directory if absent.
func WriteParams(path string, p RunParams) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling run parameters: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadParams reads run parameters back from a CSV directory.
func ReadParams(path string) (RunParams, error) {
	var p RunParams

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runnerr0/sentistream/internal/config"
)

// threeCommentStream is the canonical tiny fixture: one comment per
// polarity class.
const threeCommentStream = `{"text":"I love this","timestamp":"2024-01-01T10:00:00Z"}
{"text":"I hate this"}
{"text":"meh"}
`

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// writeLexicon writes a small tab-separated sentiment lexicon and
// returns its path.
func writeLexicon(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vader_lexicon.txt")
	data := "love\t3.2\t0.5\t[3, 3, 3]\n" +
		"hate\t-2.7\t0.7\t[-3, -3, -2]\n" +
		"good\t1.9\t0.9\t[2, 2, 2]\n" +
		"bad\t-2.5\t0.6\t[-3, -2, -2]\n" +
		"great\t3.1\t0.8\t[3, 3, 3]\n" +
		"terrible\t-2.1\t0.6\t[-2, -2, -2]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

// writeStream writes a .jsonl comment stream and returns its path.
func writeStream(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stream.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// testConfig returns a default config pointed at a test lexicon.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Lexicon.Path = writeLexicon(t)
	return cfg
}

// analyzeFixture runs the analyze stage over a stream and returns the
// CSV output directory.
func analyzeFixture(t *testing.T, cfg *config.Config, stream string) string {
	t.Helper()
	csvDir := t.TempDir()
	cmd := &AnalyzeCommand{
		InputStream:  writeStream(t, stream),
		OutputCSVDir: csvDir,
		globals:      &GlobalFlags{},
		version:      "test",
	}
	captureOutput(t, func() {
		require.NoError(t, cmd.executeWithConfig(cfg))
	})
	return csvDir
}

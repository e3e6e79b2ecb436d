package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_LexiconInstalled(t *testing.T) {
	cfg := testConfig(t)

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "dev"}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithConfig(cfg))
	})

	assert.Contains(t, output, "Sentistream Status")
	assert.Contains(t, output, "dev")
	assert.Contains(t, output, "6 words")
	assert.Contains(t, output, "Thresholds:")
	assert.Contains(t, output, "Chunks:      20")
	assert.Contains(t, output, "Top tokens:  20%")
	assert.NotContains(t, output, "not installed")
}

func TestStatus_LexiconMissing(t *testing.T) {
	cfg := testConfig(t)
	cfg.Lexicon.Path = filepath.Join(t.TempDir(), "absent.txt")

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "dev"}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithConfig(cfg))
	})

	assert.Contains(t, output, "not installed")
}

func TestStatus_JSONOutput(t *testing.T) {
	cfg := testConfig(t)

	cmd := &StatusCommand{globals: &GlobalFlags{JSON: true}, version: "1.0.0"}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithConfig(cfg))
	})

	var out statusJSON
	require.NoError(t, json.Unmarshal([]byte(output), &out))
	assert.Equal(t, "1.0.0", out.Version)
	assert.True(t, out.LexiconInstalled)
	assert.Equal(t, 6, out.LexiconWords)
	assert.Equal(t, 0.05, out.PositiveThreshold)
	assert.Equal(t, 20, out.CommentChunks)
}

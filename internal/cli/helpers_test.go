package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/sentistream/internal/sentiment"
)

func TestValidateStreamPath(t *testing.T) {
	assert.NoError(t, validateStreamPath("comments.jsonl"))
	assert.NoError(t, validateStreamPath("/data/in/stream.jsonl"))

	err := validateStreamPath("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	err = validateStreamPath("comments.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".jsonl")
}

func TestResolveVisual(t *testing.T) {
	cfg := testConfig(t)

	chunks, percent := resolveVisual(cfg, 0, 0)
	assert.Equal(t, 20, chunks)
	assert.Equal(t, 0.20, percent)

	chunks, percent = resolveVisual(cfg, 5, 0.5)
	assert.Equal(t, 5, chunks)
	assert.Equal(t, 0.5, percent)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1,000", formatNumber(1000))
	assert.Equal(t, "1,234,567", formatNumber(1234567))
}

func TestLabelCounts(t *testing.T) {
	results := []sentiment.Result{
		{Label: sentiment.LabelPositive},
		{Label: sentiment.LabelPositive},
		{Label: sentiment.LabelNeutral},
		{Label: sentiment.LabelNegative},
	}

	positive, neutral, negative := labelCounts(results)
	assert.Equal(t, 2, positive)
	assert.Equal(t, 1, neutral)
	assert.Equal(t, 1, negative)
}

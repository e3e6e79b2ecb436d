package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/sentistream/internal/aggregate"
	"github.com/runnerr0/sentistream/internal/sentiment"
)

func TestWriteReadComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.csv")
	results := []sentiment.Result{
		{ID: 1, Text: "I love this", Timestamp: "2024-01-01T10:00:00Z", Score: 0.6369, Label: sentiment.LabelPositive},
		{ID: 2, Text: "commas, \"quotes\", and\nnewlines", Score: -0.5719, Label: sentiment.LabelNegative},
		{ID: 3, Text: "meh", Timestamp: "2024-01-03", Score: 0, Label: sentiment.LabelNeutral},
	}

	require.NoError(t, WriteComments(path, results))

	got, err := ReadComments(path)
	require.NoError(t, err)
	assert.Equal(t, results, got)
}

func TestWriteCommentsCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "comments.csv")

	require.NoError(t, WriteComments(path, nil))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteCommentsEmptyIsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.csv")

	require.NoError(t, WriteComments(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,comment,timestamp,score,label\n", string(data))

	got, err := ReadComments(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteCommentsIsByteStable(t *testing.T) {
	dir := t.TempDir()
	results := []sentiment.Result{
		{ID: 1, Text: "stable", Score: 0.12345678901234567, Label: sentiment.LabelPositive},
		{ID: 2, Text: "still stable", Score: -1.0 / 3.0, Label: sentiment.LabelNegative},
	}

	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.csv")
	require.NoError(t, WriteComments(first, results))
	require.NoError(t, WriteComments(second, results))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriteReadTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.csv")
	aggs := []aggregate.TokenAggregate{
		{Token: "good", Surface: "good", Count: 3, Score: 0.4404, Percent: 75},
		{Token: "NEG_good", Surface: "not good", Count: 1, Score: -0.3259, Percent: 25},
	}

	require.NoError(t, WriteTokens(path, aggs))

	got, err := ReadTokens(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Total is not persisted; everything else round-trips in order.
	assert.Equal(t, "good", got[0].Token)
	assert.Equal(t, "not good", got[1].Surface)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, 0.4404, got[0].Score)
	assert.Equal(t, 25.0, got[1].Percent)
	assert.Zero(t, got[0].Total)
}

func TestReadCommentsHeaderMismatchFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.csv")
	require.NoError(t, os.WriteFile(path, []byte("wrong,header\n1,2\n"), 0644))

	_, err := ReadComments(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected header")
}

func TestReadCommentsMalformedRowFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.csv")
	data := "id,comment,timestamp,score,label\nnot-an-id,text,,0.5,positive\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := ReadComments(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing id")
}

func TestReadCommentsUnknownLabelFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.csv")
	data := "id,comment,timestamp,score,label\n1,text,,0.5,ecstatic\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := ReadComments(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sentiment label")
}

func TestReadTokensMissingFileFails(t *testing.T) {
	_, err := ReadTokens(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestReadCommentsEmptyFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := ReadComments(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file is empty")
}

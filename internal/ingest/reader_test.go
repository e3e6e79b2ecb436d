package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStream(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stream.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadValidStream(t *testing.T) {
	path := writeStream(t, `{"text":"I love this","timestamp":"2024-01-01T10:00:00Z"}
{"text":"I hate this"}
{"text":"meh"}
`)

	records, skipped, err := NewReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, 0, skipped)
	require.Len(t, records, 3)
	assert.Equal(t, CommentRecord{ID: 1, Text: "I love this", Timestamp: "2024-01-01T10:00:00Z"}, records[0])
	assert.Equal(t, 2, records[1].ID)
	assert.Equal(t, "meh", records[2].Text)
}

func TestReadSkipsMalformedLines(t *testing.T) {
	path := writeStream(t, `{"text":"first"}
{not json at all
{"text":"third"}
`)

	var warnings bytes.Buffer
	r := NewReader(path)
	r.Warn = &warnings

	records, skipped, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, 1, skipped)
	require.Len(t, records, 2)
	// IDs follow the source line numbers, not the surviving count.
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 3, records[1].ID)
	assert.Contains(t, warnings.String(), "line 2")
	assert.Contains(t, warnings.String(), "malformed")
}

func TestReadSkipsRecordsWithoutText(t *testing.T) {
	path := writeStream(t, `{"text":"kept"}
{"timestamp":"2024-01-01"}
{"text":"   "}
`)

	var warnings bytes.Buffer
	r := NewReader(path)
	r.Warn = &warnings

	records, skipped, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, 2, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].Text)
	assert.Contains(t, warnings.String(), "without text field")
}

func TestReadIgnoresBlankLines(t *testing.T) {
	path := writeStream(t, "{\"text\":\"one\"}\n\n\n{\"text\":\"two\"}\n")

	var warnings bytes.Buffer
	r := NewReader(path)
	r.Warn = &warnings

	records, skipped, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, 0, skipped)
	assert.Len(t, records, 2)
	assert.Empty(t, warnings.String())
}

func TestReadEmptyFile(t *testing.T) {
	path := writeStream(t, "")

	records, skipped, err := NewReader(path).Read()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, skipped)
}

func TestReadMissingFileFails(t *testing.T) {
	_, _, err := NewReader(filepath.Join(t.TempDir(), "absent.jsonl")).Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening input stream")
}

func TestReadIsRestartable(t *testing.T) {
	path := writeStream(t, `{"text":"same"}
{"text":"again"}
`)

	r := NewReader(path)
	first, _, err := r.Read()
	require.NoError(t, err)
	second, _, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

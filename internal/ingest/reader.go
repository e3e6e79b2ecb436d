package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// CommentRecord is one comment read from the input stream. ID is the
// 1-based line number in the source file and never changes afterward.
type CommentRecord struct {
	ID        int
	Text      string
	Timestamp string
}

// streamLine is the wire shape of one JSONL line.
type streamLine struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Reader reads an ordered sequence of CommentRecords from a
// line-delimited JSON file. A malformed line or a line without a text
// field is skipped with a warning; only an unopenable file is fatal.
type Reader struct {
	Path string
	Warn io.Writer // destination for per-line warnings; defaults to os.Stderr
}

// NewReader returns a Reader for the given stream file path.
func NewReader(path string) *Reader {
	return &Reader{Path: path, Warn: os.Stderr}
}

// Read parses the whole stream and returns the records in input order
// together with the number of skipped lines.
func (r *Reader) Read() ([]CommentRecord, int, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening input stream: %w", err)
	}
	defer f.Close()

	warn := r.Warn
	if warn == nil {
		warn = os.Stderr
	}

	var records []CommentRecord
	skipped := 0
	lineNo := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry streamLine
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			fmt.Fprintf(warn, "warning: line %d: skipping malformed record: %v\n", lineNo, err)
			skipped++
			continue
		}
		if strings.TrimSpace(entry.Text) == "" {
			fmt.Fprintf(warn, "warning: line %d: skipping record without text field\n", lineNo)
			skipped++
			continue
		}

		records = append(records, CommentRecord{
			ID:        lineNo,
			Text:      entry.Text,
			Timestamp: entry.Timestamp,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("reading input stream: %w", err)
	}

	return records, skipped, nil
}

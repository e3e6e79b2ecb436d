// Package prep turns raw comment text into normalized token lists:
// sentence splitting, word tokenization, stopword removal, negation
// compacting, and stemming with a stem-to-surface mapping for display.
package prep

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"

	"github.com/runnerr0/sentistream/internal/ingest"
)

// NegPrefix marks a token that fell inside a negation window.
const NegPrefix = "NEG_"

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	wordPattern   = regexp.MustCompile(`[a-z0-9]+(?:'[a-z]+)?`)
)

// Comment is one record after preprocessing. Tokens are lowercased,
// stopword-filtered, negation-compacted stems; Surfaces pairs each
// token 1:1 with the surface form it was stemmed from.
type Comment struct {
	Record    ingest.CommentRecord
	Sentences []string
	Tokens    []string
	Surfaces  []string
}

// Preprocessor is a deterministic text normalizer. The zero value is
// not usable; construct with New.
type Preprocessor struct {
	stopwords      map[string]bool
	negationWindow int
}

// New returns a Preprocessor with the given negation window and
// stopword overrides. window <= 0 disables negation compacting.
func New(window int, extraStopwords, keepWords []string) *Preprocessor {
	return &Preprocessor{
		stopwords:      buildStopwords(extraStopwords, keepWords),
		negationWindow: window,
	}
}

// Process normalizes one record. Same text always yields the same
// result; empty or all-stopword text yields an empty token list.
func (p *Preprocessor) Process(rec ingest.CommentRecord) Comment {
	c := Comment{Record: rec, Sentences: SplitSentences(rec.Text)}

	for _, sent := range c.Sentences {
		window := 0
		for _, word := range tokenizeWords(sent) {
			if negationTokens[word] {
				window = p.negationWindow
				c.Tokens = append(c.Tokens, word)
				c.Surfaces = append(c.Surfaces, word)
				continue
			}
			if p.stopwords[word] {
				if window > 0 {
					window--
				}
				continue
			}

			token := english.Stem(word, false)
			if token == "" {
				continue
			}
			if window > 0 {
				token = NegPrefix + token
				window--
			}
			c.Tokens = append(c.Tokens, token)
			c.Surfaces = append(c.Surfaces, word)
		}
	}

	return c
}

// ProcessAll normalizes a batch of records, preserving order.
func (p *Preprocessor) ProcessAll(records []ingest.CommentRecord) []Comment {
	comments := make([]Comment, len(records))
	for i, rec := range records {
		comments[i] = p.Process(rec)
	}
	return comments
}

// SplitSentences splits text on terminal punctuation runs, dropping
// empty fragments.
func SplitSentences(text string) []string {
	var out []string
	for _, part := range sentenceSplit.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// tokenizeWords lowercases a sentence and extracts word tokens,
// keeping contractions ("don't") intact and dropping punctuation.
func tokenizeWords(sentence string) []string {
	return wordPattern.FindAllString(strings.ToLower(sentence), -1)
}

// SurfaceMap resolves a stemmed token back to the first surface form
// it was produced from, for human-readable output.
type SurfaceMap map[string]string

// BuildSurfaceMap collects the stem-to-surface mapping over a batch of
// processed comments. First surface form seen wins.
func BuildSurfaceMap(comments []Comment) SurfaceMap {
	m := make(SurfaceMap)
	for _, c := range comments {
		for i, token := range c.Tokens {
			key := strings.TrimPrefix(token, NegPrefix)
			if key == "" {
				continue
			}
			if _, ok := m[key]; !ok {
				m[key] = c.Surfaces[i]
			}
		}
	}
	return m
}

// Surface returns the display form of a token. Negation-compacted
// tokens are rendered with the given prefix ("not good").
func (m SurfaceMap) Surface(token, negativePrefix string) string {
	negated := strings.HasPrefix(token, NegPrefix)
	key := strings.TrimPrefix(token, NegPrefix)

	surface, ok := m[key]
	if !ok {
		surface = key
	}
	if negated && negativePrefix != "" {
		return negativePrefix + " " + surface
	}
	return surface
}

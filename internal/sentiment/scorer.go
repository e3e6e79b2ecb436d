package sentiment

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/runnerr0/sentistream/internal/prep"
)

// Label is the discrete sentiment class derived from a compound score.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// ParseLabel converts a stored string back into a Label.
func ParseLabel(s string) (Label, error) {
	switch l := Label(s); l {
	case LabelPositive, LabelNeutral, LabelNegative:
		return l, nil
	}
	return "", fmt.Errorf("unknown sentiment label %q", s)
}

// Result is the scored outcome for one comment, 1:1 with its record.
// Never mutated after creation.
type Result struct {
	ID        int
	Text      string
	Timestamp string
	Score     float64
	Label     Label
}

// Scorer maps comments to compound scores and labels using a loaded
// Analyzer and fixed thresholds.
type Scorer struct {
	Analyzer          *Analyzer
	PositiveThreshold float64
	NegativeThreshold float64
	AverageSentences  bool
}

// NewScorer builds a Scorer. When average is set, a comment scores the
// mean of its per-sentence compounds instead of the whole-text compound.
func NewScorer(a *Analyzer, posThreshold, negThreshold float64, average bool) *Scorer {
	return &Scorer{
		Analyzer:          a,
		PositiveThreshold: posThreshold,
		NegativeThreshold: negThreshold,
		AverageSentences:  average,
	}
}

// Score computes the compound score and label for one comment.
func (s *Scorer) Score(c prep.Comment) Result {
	var score float64
	if s.AverageSentences {
		if len(c.Sentences) > 0 {
			compounds := make([]float64, len(c.Sentences))
			for i, sent := range c.Sentences {
				compounds[i] = s.Analyzer.Compound(sent)
			}
			score = stat.Mean(compounds, nil)
		}
	} else {
		score = s.Analyzer.Compound(c.Record.Text)
	}

	return Result{
		ID:        c.Record.ID,
		Text:      c.Record.Text,
		Timestamp: c.Record.Timestamp,
		Score:     score,
		Label:     s.LabelFor(score),
	}
}

// ScoreAll scores a batch of comments, preserving order.
func (s *Scorer) ScoreAll(comments []prep.Comment) []Result {
	results := make([]Result, len(comments))
	for i, c := range comments {
		results[i] = s.Score(c)
	}
	return results
}

// LabelFor thresholds a compound score into a Label.
func (s *Scorer) LabelFor(score float64) Label {
	switch {
	case score >= s.PositiveThreshold:
		return LabelPositive
	case score <= s.NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// TokenScore scores a stemmed token through its surface form. Tokens
// that fell inside a negation window score the underlying surface and
// flip by NegScalar.
func (s *Scorer) TokenScore(token string, surfaces prep.SurfaceMap) float64 {
	surface := surfaces.Surface(token, "")
	score := s.Analyzer.Compound(surface)
	if strings.HasPrefix(token, prep.NegPrefix) {
		score *= NegScalar
	}
	return score
}

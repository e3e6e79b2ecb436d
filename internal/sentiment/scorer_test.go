package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/sentistream/internal/ingest"
	"github.com/runnerr0/sentistream/internal/prep"
)

func testScorer(t *testing.T, average bool) *Scorer {
	t.Helper()
	a, err := NewAnalyzer(testLexicon(t), "")
	require.NoError(t, err)
	return NewScorer(a, 0.05, -0.05, average)
}

func TestScoreLabelsExample(t *testing.T) {
	s := testScorer(t, true)
	p := prep.New(3, nil, nil)

	records := []ingest.CommentRecord{
		{ID: 1, Text: "I love this"},
		{ID: 2, Text: "I hate this"},
		{ID: 3, Text: "meh"},
	}
	results := s.ScoreAll(p.ProcessAll(records))

	require.Len(t, results, 3)
	assert.Equal(t, LabelPositive, results[0].Label)
	assert.Equal(t, LabelNegative, results[1].Label)
	assert.Equal(t, LabelNeutral, results[2].Label)
	assert.Zero(t, results[2].Score)
	assert.Equal(t, 1, results[0].ID)
	assert.Equal(t, "I love this", results[0].Text)
}

func TestScoreAveragesSentences(t *testing.T) {
	s := testScorer(t, true)
	p := prep.New(3, nil, nil)

	r := s.Score(p.Process(ingest.CommentRecord{ID: 1, Text: "I love this. I hate this."}))

	// Mean of 0.637 and -0.572.
	assert.InDelta(t, 0.0325, r.Score, 0.001)
	assert.Equal(t, LabelNeutral, r.Label)
}

func TestScoreWholeTextWhenAveragingDisabled(t *testing.T) {
	s := testScorer(t, false)
	p := prep.New(3, nil, nil)

	r := s.Score(p.Process(ingest.CommentRecord{ID: 1, Text: "I love this. I hate this."}))

	// 3.2 - 2.7 summed over the whole text before normalizing.
	assert.InDelta(t, 0.128, r.Score, 0.001)
	assert.Equal(t, LabelPositive, r.Label)
}

func TestScoreEmptyComment(t *testing.T) {
	s := testScorer(t, true)
	p := prep.New(3, nil, nil)

	r := s.Score(p.Process(ingest.CommentRecord{ID: 7, Text: ""}))

	assert.Zero(t, r.Score)
	assert.Equal(t, LabelNeutral, r.Label)
}

func TestLabelForThresholds(t *testing.T) {
	s := testScorer(t, true)

	assert.Equal(t, LabelPositive, s.LabelFor(0.05))
	assert.Equal(t, LabelNeutral, s.LabelFor(0.049))
	assert.Equal(t, LabelNeutral, s.LabelFor(0))
	assert.Equal(t, LabelNeutral, s.LabelFor(-0.049))
	assert.Equal(t, LabelNegative, s.LabelFor(-0.05))
}

func TestTokenScoreNegatedFlips(t *testing.T) {
	s := testScorer(t, true)
	surfaces := prep.SurfaceMap{"good": "good"}

	plain := s.TokenScore("good", surfaces)
	negated := s.TokenScore("NEG_good", surfaces)

	assert.InDelta(t, 0.440, plain, 0.001)
	assert.InDelta(t, plain*NegScalar, negated, 1e-9)
}

func TestTokenScoreUnknownToken(t *testing.T) {
	s := testScorer(t, true)

	assert.Zero(t, s.TokenScore("widget", prep.SurfaceMap{}))
}

func TestParseLabel(t *testing.T) {
	for _, want := range []Label{LabelPositive, LabelNeutral, LabelNegative} {
		got, err := ParseLabel(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLabel("ambivalent")
	require.Error(t, err)
}

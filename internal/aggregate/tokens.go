package aggregate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/runnerr0/sentistream/internal/prep"
	"github.com/runnerr0/sentistream/internal/sentiment"
)

// TokenAggregate is the accumulated sentiment contribution of one
// token across the corpus. Total sums the compound score of every
// comment the token appears in; Score is the token's own lexicon
// valence through its surface form; Percent is the token's share of
// the total absolute contribution. Shares sum to 100 over the full
// vocabulary, except when every comment scored zero: then there is no
// contribution to apportion and every share stays 0.
type TokenAggregate struct {
	Token   string
	Surface string
	Count   int
	Total   float64
	Score   float64
	Percent float64
}

// Tokens accumulates per-token contributions over scored comments.
// comments and results must be aligned 1:1 in input order. The slice
// comes back ordered by percent descending, token ascending.
func Tokens(comments []prep.Comment, results []sentiment.Result, scorer *sentiment.Scorer, surfaces prep.SurfaceMap) []TokenAggregate {
	byToken := make(map[string]*TokenAggregate)

	for i, c := range comments {
		score := results[i].Score
		for _, token := range c.Tokens {
			agg, ok := byToken[token]
			if !ok {
				agg = &TokenAggregate{Token: token}
				byToken[token] = agg
			}
			agg.Count++
			agg.Total += score
		}
	}

	out := make([]TokenAggregate, 0, len(byToken))
	for _, agg := range byToken {
		agg.Surface = surfaces.Surface(agg.Token, "not")
		agg.Score = scorer.TokenScore(agg.Token, surfaces)
		out = append(out, *agg)
	}

	// Sum in token order so percentages are bit-stable across runs.
	sort.Slice(out, func(i, j int) bool { return out[i].Token < out[j].Token })
	totals := make([]float64, len(out))
	for i := range out {
		totals[i] = math.Abs(out[i].Total)
	}

	if denom := floats.Sum(totals); denom > 0 {
		for i := range out {
			out[i].Percent = math.Abs(out[i].Total) / denom * 100
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Token < out[j].Token
	})

	return out
}

// TopPercent returns the leading share of an ordered aggregate slice:
// ceil(p * len) entries for p in (0, 1]. This is a display truncation
// only; percentages are not recomputed.
func TopPercent(aggs []TokenAggregate, p float64) []TokenAggregate {
	if len(aggs) == 0 || p <= 0 {
		return nil
	}
	if p > 1 {
		p = 1
	}
	n := int(math.Ceil(p * float64(len(aggs))))
	if n > len(aggs) {
		n = len(aggs)
	}
	return aggs[:n]
}

// Package aggregate derives trend series from scored comments: mean
// sentiment per contiguous chunk of the stream, and per-token
// contribution shares across the whole corpus.
package aggregate

import (
	"gonum.org/v1/gonum/stat"
)

// ChunkAggregate is the mean sentiment of one contiguous chunk of the
// ordered comment sequence. Recomputed each run; its only identity is
// its index.
type ChunkAggregate struct {
	Index int
	Mean  float64
	Count int
}

// Chunks splits scores into n contiguous chunks preserving input order
// and returns the mean score of each. Chunk sizes differ by at most
// one; earlier chunks absorb the remainder. When n exceeds the number
// of scores, every score becomes its own chunk. Empty input or a
// non-positive n yields nil.
func Chunks(scores []float64, n int) []ChunkAggregate {
	if n <= 0 || len(scores) == 0 {
		return nil
	}
	if n > len(scores) {
		n = len(scores)
	}

	base := len(scores) / n
	remainder := len(scores) % n

	out := make([]ChunkAggregate, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < remainder {
			size++
		}
		chunk := scores[start : start+size]
		out = append(out, ChunkAggregate{
			Index: i,
			Mean:  stat.Mean(chunk, nil),
			Count: size,
		})
		start += size
	}
	return out
}

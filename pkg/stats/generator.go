package stats

import (
	"math/rand/v2"
)

// Generator is a source of uniformly distributed indexes.
// A Generator is owned by a single pipeline run and need not be safe for concurrent use.
type Generator interface {
	// NextInRange returns a value in [0, n). n is always positive.
	NextInRange(n int) int
}

// RandGenerator draws indexes from a PCG source. It is not cryptographically secure.
type RandGenerator struct {
	rng *rand.Rand
}

// NewRandGenerator returns a RandGenerator with a fresh random seed.
func NewRandGenerator() *RandGenerator {
	return NewSeededGenerator(rand.Uint64(), rand.Uint64())
}

// NewSeededGenerator returns a RandGenerator whose sequence is fully determined by the seeds.
func NewSeededGenerator(seed1, seed2 uint64) *RandGenerator {
	return &RandGenerator{rng: rand.New(rand.NewPCG(seed1, seed2))} //nolint:gosec
}

// NextInRange implements Generator.
func (g *RandGenerator) NextInRange(n int) int {
	return g.rng.IntN(n)
}

// SequenceGenerator replays a fixed list of indexes, cycling when exhausted.
// Each index is reduced modulo the requested range.
type SequenceGenerator struct {
	indexes []int
	pos     int
}

// NewSequenceGenerator returns a generator replaying indexes.
func NewSequenceGenerator(indexes ...int) *SequenceGenerator {
	return &SequenceGenerator{indexes: indexes}
}

// NextInRange implements Generator.
func (g *SequenceGenerator) NextInRange(n int) int {
	if len(g.indexes) == 0 {
		return 0
	}

	idx := g.indexes[g.pos%len(g.indexes)]
	g.pos++

	idx %= n
	if idx < 0 {
		idx += n
	}

	return idx
}

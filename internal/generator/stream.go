package generator

import (
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// streamIncrement is the fixed PCG stream selector shared by every Stream.
const streamIncrement = 0x9e3779b97f4a7c15

// Stream is a reproducible sequence of floats in [0, 1) derived from a seed string.
// A Stream is not safe for concurrent use.
type Stream struct {
	rng *rand.Rand
}

// NewStream returns the stream for seed. Two streams built from the same seed
// yield identical sequences.
func NewStream(seed string) *Stream {
	return &Stream{rng: rand.New(rand.NewPCG(xxhash.Sum64String(seed), streamIncrement))}
}

// Float64 returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	return s.rng.Float64()
}

// Intn returns floor(Float64() * n), consuming exactly one value.
func (s *Stream) Intn(n int) int {
	return int(math.Floor(s.Float64() * float64(n)))
}

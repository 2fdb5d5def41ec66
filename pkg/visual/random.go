package visual

import (
	"math/rand/v2"
	"sync"
)

// RandomSource supplies the edge-inclusion draws for concept maps.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

type systemSource struct{}

func (systemSource) Float64() float64 {
	return rand.Float64()
}

// SystemSource draws from the runtime's global generator.
func SystemSource() RandomSource {
	return systemSource{}
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// NewSeededSource returns a reproducible source that is safe for concurrent use.
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

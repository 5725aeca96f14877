package namer

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Selector draws one element from a non-empty candidate list.
// Implementations must be safe for concurrent use.
type Selector interface {
	Pick(candidates []string) string
}

// randomSelector draws uniformly using a mutex-guarded PCG generator.
type randomSelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector returns a Selector seeded from the current time.
// It is not cryptographically secure.
func NewSelector() Selector {
	now := uint64(time.Now().UnixNano())
	return &randomSelector{rnd: rand.New(rand.NewPCG(now, rand.Uint64()))}
}

// NewSeededSelector returns a deterministic Selector. Two selectors with the
// same seed produce the same sequence of draws.
func NewSeededSelector(seed uint64) Selector {
	return &randomSelector{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick returns a uniformly random element. candidates must not be empty.
func (s *randomSelector) Pick(candidates []string) string {
	s.mu.Lock()
	i := s.rnd.IntN(len(candidates))
	s.mu.Unlock()
	return candidates[i]
}

// Package simulate fabricates structurally realistic workflow responses in place
// of the live intelligence backend. All randomness flows through an injected
// Source so results are reproducible under a fixed seed; every derived label,
// band and rating is a pure function of the drawn scores.
package simulate

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Source is a seedable random source safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source seeded with the given value. A zero seed selects a
// time-based seed.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64Between draws a uniform float64 in [min, max).
func (s *Source) Float64Between(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Float64()*(max-min)
}

// IntBetween draws a uniform int in [min, max], bounds inclusive.
func (s *Source) IntBetween(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Intn(max-min+1)
}

// Pick returns one of the given options uniformly.
func (s *Source) Pick(options ...string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rng.Intn(len(options))]
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

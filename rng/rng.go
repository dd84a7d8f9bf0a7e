// Package rng provides deterministic, named random streams.
//
// A stream's identity is (seed, name) and nothing else: two streams
// derived with the same pair always produce the same draw sequence,
// no matter how other streams are derived or consumed around them.
// This is what makes a whole arrangement reproducible from one seed
// while letting each generator own its randomness.
package rng

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
)

// Stream is a lazy deterministic sequence of pseudo-random draws.
type Stream struct {
	name string
	r    *rand.Rand
}

// Derive creates the stream identified by (seed, name).
func Derive(seed int64, name string) *Stream {
	h := fnv.New64a()
	h.Write([]byte(name))
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	h.Write(b[:])
	return &Stream{
		name: name,
		r:    rand.New(rand.NewSource(int64(h.Sum64()))),
	}
}

// Name returns the stream name.
func (s *Stream) Name() string { return s.name }

// Float64 draws from [0, 1).
func (s *Stream) Float64() float64 { return s.r.Float64() }

// IntN draws from [0, n). n must be > 0.
func (s *Stream) IntN(n int) int { return s.r.Intn(n) }

// Range draws from [lo, hi] inclusive.
func (s *Stream) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Jitter draws from [-n, n] inclusive.
func (s *Stream) Jitter(n int) int {
	return s.Range(-n, n)
}

// Chance reports true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Pick returns a uniformly chosen element. Panics on an empty slice;
// callers are expected to have applied their fallback first.
func (s *Stream) Pick(options []string) string {
	return options[s.r.Intn(len(options))]
}

// Weighted returns an element chosen proportionally to its weight.
// Non-positive weights are treated as zero; if all weights are zero
// the first option is returned.
func (s *Stream) Weighted(options []string, weights []float64) string {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return options[0]
	}
	target := s.r.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if target < w {
			return options[i]
		}
		target -= w
	}
	return options[len(options)-1]
}

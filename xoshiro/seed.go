package xoshiro

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// splitMix64 is the SplitMix64 generator, used only to expand a single seed
// word into a full state.
func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return z ^ z>>31
}

// murmurMix64 is the murmur finalizer, used to scramble raw seed material
// whose entropy sits in the low bits.
func murmurMix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// SeedUint64 fills the state from a single seed value: quick and repeatable,
// though a full-entropy seed is better. The value is murmur-scrambled and
// expanded with SplitMix64, and the draw repeats in the (astronomically
// unlikely) case that every expanded word comes out zero.
func (s *State[W]) SeedUint64(v uint64) {
	sm := murmurMix64(v)
	words := make([]W, len(s.words))
	for {
		zero := true
		for i := range words {
			words[i] = W(splitMix64(&sm))
			if words[i] != 0 {
				zero = false
			}
		}
		if !zero {
			break
		}
	}
	s.reseed(words)
}

// SeedRandom fills the full state from OS entropy.
func (s *State[W]) SeedRandom() error {
	buf := make([]byte, len(s.words)*int(wordBits[W]())/8)
	for {
		if _, err := crand.Read(buf); err != nil {
			return err
		}
		words, zero := bytesToWords[W](buf, len(s.words))
		if !zero {
			s.reseed(words)
			return nil
		}
	}
}

// SeedString derives the full state from an arbitrary string using the
// BLAKE3 extendable output, so states of any size get independently mixed
// words. Identical strings yield identical states.
func (s *State[W]) SeedString(str string) {
	h := blake3.New()
	_, _ = h.Write([]byte(str))
	d := h.Digest()

	buf := make([]byte, len(s.words)*int(wordBits[W]())/8)
	for {
		_, _ = d.Read(buf)
		words, zero := bytesToWords[W](buf, len(s.words))
		if !zero {
			s.reseed(words)
			return
		}
	}
}

func bytesToWords[W Word](buf []byte, n int) ([]W, bool) {
	words := make([]W, n)
	zero := true
	if wordBits[W]() == 32 {
		for i := range words {
			words[i] = W(binary.LittleEndian.Uint32(buf[4*i:]))
		}
	} else {
		for i := range words {
			words[i] = W(binary.LittleEndian.Uint64(buf[8*i:]))
		}
	}
	for _, w := range words {
		if w != 0 {
			zero = false
			break
		}
	}
	return words, zero
}

// SeedUint64 seeds the generator's state from a single value.
func (g *Generator[W]) SeedUint64(v uint64) { g.state.SeedUint64(v) }

// SeedRandom seeds the generator's state from OS entropy.
func (g *Generator[W]) SeedRandom() error { return g.state.SeedRandom() }

// SeedString seeds the generator's state from an arbitrary string.
func (g *Generator[W]) SeedString(str string) { g.state.SeedString(str) }

// Seed copies exactly N words into the generator's state.
// The words must not all be zero.
func (g *Generator[W]) Seed(words []W) error { return g.state.Seed(words) }

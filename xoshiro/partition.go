package xoshiro

import "math/bits"

// Partition cuts a generator's period of 2^n steps into equal,
// non-overlapping sub-streams and hands them out one at a time. Each
// sub-stream can be given to a separate worker with no shared mutable data
// and no risk of overlap.
type Partition[W Word] struct {
	frontier *State[W]
	jump     JumpPolynomial[W]
	k        uint
}

// NewPartition returns a Partition of the stream starting at s into at
// least nPartitions sub-streams. The count is rounded up to the next power
// of two 2^k, so every sub-stream is exactly 2^(n-k) steps long; the jump
// polynomial for that distance is computed once and cached. A zero
// nPartitions is treated as one.
//
// The parent state is copied; s itself is not consumed.
func NewPartition[W Word](s *State[W], nPartitions uint64) (*Partition[W], error) {
	if nPartitions == 0 {
		nPartitions = 1
	}

	// Smallest k with 2^k >= nPartitions. The sub-stream length 2^(n-k)
	// overflows any machine integer, so it stays in exponent form.
	k := uint(bits.Len64(nPartitions - 1))

	jp, err := JumpCoefficients[W](s.p, uint64(s.p.Bits())-uint64(k), true)
	if err != nil {
		return nil, err
	}

	return &Partition[W]{
		frontier: s.Clone(),
		jump:     jp,
		k:        k,
	}, nil
}

// Count returns the actual number of sub-streams, rounded up to a power of
// two. Callers may keep calling Next past this count; sub-streams simply
// continue around the period in stream order.
func (pt *Partition[W]) Count() uint64 { return 1 << pt.k }

// Next returns a copy of the current frontier state, then advances the
// frontier in place by one sub-stream length using the cached jump
// polynomial. Successive calls yield equal-length, strictly non-overlapping
// sub-streams in stream order.
func (pt *Partition[W]) Next() *State[W] {
	out := pt.frontier.Clone()
	jumpState(pt.frontier, pt.jump.words)
	return out
}

// Package xoshiro implements the xoshiro and xoroshiro families of
// pseudorandom number generators together with the GF(2) machinery needed to
// jump a generator an arbitrary distance ahead in its stream.
//
// A generator's state transition is a fixed linear operator over the state's
// bit vector. Because of that, advancing by J steps is the same as evaluating
// the polynomial x^J mod c(x) at the transition operator, where c(x) is the
// operator's characteristic polynomial. Reduce computes that polynomial by
// repeated squaring over GF(2), Jump applies it to a concrete state with one
// native step per bit, and Partition uses the pair to cut a stream of period
// 2^n into equal non-overlapping sub-streams for parallel use.
package xoshiro

import "math/bits"

// Word constrains the unsigned types a state can be packed into.
type Word interface {
	~uint32 | ~uint64
}

// wordBits returns the width of W in bits.
func wordBits[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// rotl rotates x left by k bits.
func rotl[W Word](x W, k uint) W {
	n := wordBits[W]()
	k %= n
	return x<<k | x>>((n-k)%n)
}

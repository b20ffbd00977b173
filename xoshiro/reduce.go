package xoshiro

import "math/bits"

// riffleWord spreads the bits of src apart with a zero inserted between each
// pair. With an 8-bit word src = abcdefgh, lo = a0b0c0d0 and hi = e0f0g0h0
// (low bit first). Squaring a polynomial over GF(2) is exactly this spread,
// because all cross terms vanish mod 2.
func riffleWord[W Word](src W) (lo, hi W) {
	n := wordBits[W]()
	ones := ^W(0)

	lo = src & (ones >> (n / 2))
	hi = src >> (n / 2)

	for i := n / 4; i > 0; i /= 2 {
		msk := ones / (W(1)<<i | 1)
		lo = (lo ^ lo<<i) & msk
		hi = (hi ^ hi<<i) & msk
	}
	return lo, hi
}

// riffle spreads the coefficients of src across the contiguous pair [lo|hi].
// It works through src in reverse index order, which makes it safe to pass
// src itself as lo.
func riffle[W Word](src, lo, hi []W) {
	n := len(src)
	for i := n - 1; i >= 0; i-- {
		x, y := riffleWord(src[i])
		switch {
		case 2*i+1 > n:
			hi[2*i-n] = x
			hi[2*i+1-n] = y
		case 2*i+1 == n:
			// Straddle: x is the last word of lo, y the first of hi.
			lo[n-1] = x
			hi[0] = y
		default:
			lo[2*i] = x
			lo[2*i+1] = y
		}
	}
}

// Reduce computes r(x) = x^J mod c(x) over GF(2), where c(x) = x^n + p(x) is
// monic of degree n and p holds the n low coefficients packed into words. If
// jIsPow2 is set, J is an exponent and the computed power is x^(2^J) mod
// c(x), which admits jump distances far beyond the range of a uint64. The
// result is packed the same way as p and always has degree < n.
//
// Precondition: n must be an exact multiple of the word width — every bit of
// every word of p is taken to be a meaningful coefficient. States in this
// package satisfy that by construction.
func Reduce[W Word](p []W, j uint64, jIsPow2 bool) []W {
	nWords := len(p)
	bpw := wordBits[W]()
	n := uint64(nWords) * uint64(bpw)

	test := func(poly []W, i uint64) bool {
		return poly[i/uint64(bpw)]&(W(1)<<(uint(i)%bpw)) != 0
	}
	set := func(poly []W, i uint64) {
		poly[i/uint64(bpw)] |= W(1) << (uint(i) % bpw)
	}
	monic := func(poly []W) bool {
		return poly[nWords-1]&(W(1)<<(bpw-1)) != 0
	}
	add := func(dst, src []W) {
		for i := range dst {
			dst[i] ^= src[i]
		}
	}
	shift := func(poly []W) {
		for i := nWords - 1; i > 0; i-- {
			poly[i] = poly[i]<<1 | poly[i-1]>>(bpw-1)
		}
		poly[0] <<= 1
	}

	// timesX performs poly(x) <- x*poly(x) mod c(x) for degree(poly) < n:
	// shift every coefficient up one place and fold p back in whenever the
	// vacated top coefficient was set. This is the single "reduce a degree-n
	// polynomial back under n" primitive everything below reuses.
	timesX := func(poly []W) {
		addP := monic(poly)
		shift(poly)
		if addP {
			add(poly, p)
		}
	}

	// Precompute x^(n+i) mod c(x) for i = 0..n-1, starting from the known
	// x^n mod c(x) = p(x).
	powers := make([][]W, n)
	powers[0] = append([]W(nil), p...)
	for i := uint64(1); i < n; i++ {
		powers[i] = append([]W(nil), powers[i-1]...)
		timesX(powers[i])
	}

	firstSet := func(poly []W) (uint64, bool) {
		for i, w := range poly {
			if w != 0 {
				return uint64(i)*uint64(bpw) + uint64(bits.TrailingZeros64(uint64(w))), true
			}
		}
		return 0, false
	}
	finalSet := func(poly []W) uint64 {
		for i := nWords - 1; i >= 0; i-- {
			if poly[i] != 0 {
				return uint64(i)*uint64(bpw) + uint64(bits.Len64(uint64(poly[i]))-1)
			}
		}
		return 0
	}

	// square performs poly(x) <- poly(x)^2 mod c(x). The riffle leaves the
	// low n coefficients in place and the high part (degree >= n) in hi;
	// the high part is folded back in with the power table. Interleaving
	// only ever sets bits at even offsets within hi, so only every second
	// position needs inspection.
	hi := make([]W, nWords)
	square := func(poly []W) {
		riffle(poly, poly, hi)
		if first, ok := firstSet(hi); ok {
			final := finalSet(hi)
			for i := first; i <= final; i += 2 {
				if test(hi, i) {
					add(poly, powers[i])
				}
			}
		}
	}

	r := make([]W, nWords)

	// J as 2^J: J squaring steps starting from r(x) = x.
	if jIsPow2 {
		set(r, 1)
		for k := uint64(0); k < j; k++ {
			square(r)
		}
		return r
	}

	// J < n: x^J mod c(x) = x^J, a single coefficient.
	if j < n {
		set(r, j)
		return r
	}

	// J == n: x^n mod c(x) = p(x) by definition of c(x).
	if j == n {
		copy(r, p)
		return r
	}

	// J > n: square-and-multiply over the bits of J from the highest set bit
	// down. r(x) = x handles the leading bit.
	set(r, 1)
	for bit := uint64(1) << (bits.Len64(j) - 2); bit != 0; bit >>= 1 {
		square(r)
		if j&bit != 0 {
			timesX(r)
		}
	}
	return r
}

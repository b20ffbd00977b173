package xoshiro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func characteristic32(t *testing.T, p Params) []uint32 {
	t.Helper()
	cs, err := CharacteristicCoefficients[uint32](p)
	require.NoError(t, err)
	return cs
}

func characteristic64(t *testing.T, p Params) []uint64 {
	t.Helper()
	cs, err := CharacteristicCoefficients[uint64](p)
	require.NoError(t, err)
	return cs
}

// For J below the degree no reduction happens at all: x^J mod c(x) = x^J.
func TestReduceBelowDegree(t *testing.T) {
	p := characteristic32(t, Xoroshiro64)

	r := Reduce(p, 0, false)
	require.Equal(t, []uint32{1, 0}, r)

	r = Reduce(p, 5, false)
	require.Equal(t, []uint32{1 << 5, 0}, r)

	r = Reduce(p, 63, false)
	require.Equal(t, []uint32{0, 1 << 31}, r)
}

// At the degree the answer is p(x) itself, by definition of c(x).
func TestReduceAtDegree(t *testing.T) {
	p := characteristic32(t, Xoroshiro64)
	require.Equal(t, p, Reduce(p, 64, false))

	p64 := characteristic64(t, Xoshiro256)
	require.Equal(t, p64, Reduce(p64, 256, false))
}

// The literal square-and-multiply path and the repeated-squaring pow2 path
// are independent computations of the same value whenever 2^J fits a uint64.
func TestReduceLiteralMatchesPow2(t *testing.T) {
	p := characteristic32(t, Xoroshiro64)
	for _, j := range []uint64{7, 10, 20, 30} {
		require.Equal(t, Reduce(p, j, true), Reduce(p, uint64(1)<<j, false), "2^%d", j)
	}

	p64 := characteristic64(t, Xoroshiro128)
	for _, j := range []uint64{7, 10, 20, 30} {
		require.Equal(t, Reduce(p64, j, true), Reduce(p64, uint64(1)<<j, false), "2^%d", j)
	}
}

// x^(2^0) = x: the pow2 path with a zero exponent performs no squarings and
// must come out as a plain single step.
func TestReducePow2Zero(t *testing.T) {
	p := characteristic32(t, Xoroshiro64)
	require.Equal(t, Reduce(p, 1, false), Reduce(p, 0, true))
}

// The result is always packed into exactly N words, i.e. degree < n, no
// matter how large the requested exponent is.
func TestReduceDegreeBound(t *testing.T) {
	p := characteristic64(t, Xoshiro256)
	for _, tt := range []struct {
		j    uint64
		pow2 bool
	}{
		{0, false},
		{255, false},
		{256, false},
		{257, false},
		{1_000_000, false},
		{1<<64 - 1, false},
		{100, true},
		{255, true},
	} {
		r := Reduce(p, tt.j, tt.pow2)
		require.Len(t, r, len(p))
	}
}

func TestRiffleWord(t *testing.T) {
	lo, hi := riffleWord(uint32(0xffffffff))
	require.Equal(t, uint32(0x55555555), lo)
	require.Equal(t, uint32(0x55555555), hi)

	lo, hi = riffleWord(uint32(0b10110001))
	require.Equal(t, uint32(0b0100_0101_0000_0001), lo)
	require.Equal(t, uint32(0), hi)

	lo64, hi64 := riffleWord(uint64(1)<<32 | 1)
	require.Equal(t, uint64(1), lo64)
	require.Equal(t, uint64(1), hi64)
}

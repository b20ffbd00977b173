package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jumprand/jumprand/xoshiro"
)

// Derivation must agree with the compiled tables wherever both exist; the
// core serves these parameterizations from its table, so the lookup result
// is the independent reference.
func TestDerivedMatchesTable(t *testing.T) {
	for _, p := range []xoshiro.Params{xoshiro.Xoroshiro64, xoshiro.Xoshiro128} {
		want, err := xoshiro.CharacteristicCoefficients[uint32](p)
		require.NoError(t, err)
		got, err := CharacteristicCoefficients[uint32](p)
		require.NoError(t, err)
		require.Equal(t, packed32(want), got, p.String())
	}

	for _, p := range []xoshiro.Params{xoshiro.Xoroshiro128, xoshiro.Xoshiro256} {
		want, err := xoshiro.CharacteristicCoefficients[uint64](p)
		require.NoError(t, err)
		got, err := CharacteristicCoefficients[uint64](p)
		require.NoError(t, err)
		require.Equal(t, want, got, p.String())
	}
}

func packed32(words []uint32) []uint64 {
	out := make([]uint64, len(words))
	for i, w := range words {
		out[i] = uint64(w)
	}
	return out
}

// The 2016-vintage xoroshiro128 shift triple has no table entry, so the core
// must fall through to the registered derivation. The derived polynomial is
// validated end to end: a jump built on it has to land exactly where naive
// stepping lands.
func TestDerivedServesUntabledParams(t *testing.T) {
	p := xoshiro.Params{
		Family:   xoshiro.FamilyXoroshiro,
		WordBits: 64,
		Words:    2,
		A:        55,
		B:        14,
		C:        36,
	}

	coeffs, err := xoshiro.CharacteristicCoefficients[uint64](p)
	require.NoError(t, err)
	require.Len(t, coeffs, 2)
	require.NotEqual(t, []uint64{0, 0}, coeffs)

	requireJumpMatchesStepping(t, p, []uint64{0x0123456789abcdef, 0xfedcba9876543210}, 100)
}

// Custom parameterizations need not have a primitive polynomial, and the
// orbit of any single basis vector may span less than the whole state space.
// Derivation must still produce a degree-n annihilating polynomial that
// jumps correctly, not reject the parameterization.
func TestDerivedNonPrimitiveParams(t *testing.T) {
	p := xoshiro.Params{
		Family:   xoshiro.FamilyXoroshiro,
		WordBits: 32,
		Words:    4,
		A:        11,
		B:        7,
		C:        13,
	}

	coeffs, err := CharacteristicCoefficients[uint32](p)
	require.NoError(t, err)
	require.Len(t, coeffs, 4)

	jp, err := xoshiro.JumpCoefficients[uint32](p, 12345, false)
	require.NoError(t, err)

	jumped, err := xoshiro.NewState[uint32](p)
	require.NoError(t, err)
	jumped.SeedUint64(0xabad1dea)

	walked := jumped.Clone()
	for i := 0; i < 12345; i++ {
		walked.Step()
	}

	require.NoError(t, xoshiro.Jump(jumped, jp))
	require.Equal(t, walked.Words(), jumped.Words())
}

// Zero shift amounts collapse the xoroshiro pair update to the invertible
// shear (s0, s1) -> (s0, s0^s1), whose minimal polynomial has tiny degree.
// This exercises the padding to degree n with a huge x^(n-m) factor.
func TestDerivedDegenerateShifts(t *testing.T) {
	p := xoshiro.Params{
		Family:   xoshiro.FamilyXoroshiro,
		WordBits: 64,
		Words:    2,
		A:        0,
		B:        0,
		C:        0,
	}

	_, err := CharacteristicCoefficients[uint64](p)
	require.NoError(t, err)

	requireJumpMatchesStepping(t, p, []uint64{0xdeadbeef, 7}, 777)
}

func requireJumpMatchesStepping(t *testing.T, p xoshiro.Params, seed []uint64, j uint64) {
	t.Helper()

	jp, err := xoshiro.JumpCoefficients[uint64](p, j, false)
	require.NoError(t, err)

	jumped, err := xoshiro.NewState[uint64](p)
	require.NoError(t, err)
	require.NoError(t, jumped.Seed(seed))

	walked := jumped.Clone()
	for i := uint64(0); i < j; i++ {
		walked.Step()
	}

	require.NoError(t, xoshiro.Jump(jumped, jp))
	require.Equal(t, walked.Words(), jumped.Words())
}

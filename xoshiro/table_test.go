package xoshiro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Every shipped characteristic polynomial stores exactly N words of p(x)
// with deg(p) < n; the leading coefficient of c(x) = x^n + p(x) is the
// implicit 1, making c monic of degree exactly n. For 32-bit
// parameterizations every stored word must also fit its width.
func TestTableEntries(t *testing.T) {
	for p, words := range characteristicTable {
		require.Len(t, words, int(p.Words), "%s", p)

		zero := true
		for _, w := range words {
			if w != 0 {
				zero = false
			}
			if p.WordBits == 32 {
				require.Less(t, w, uint64(1)<<32, "%s entry overflows a 32-bit word", p)
			}
		}
		require.False(t, zero, "%s has a zero polynomial", p)
	}
}

func TestCharacteristicLookup(t *testing.T) {
	cs, err := CharacteristicCoefficients[uint32](Xoshiro128)
	require.NoError(t, err)
	require.Equal(t, []uint32{0xde18fc01, 0x1b489db6, 0x6254b1, 0xfc65a2}, cs)

	cs64, err := CharacteristicCoefficients[uint64](Xoroshiro128b)
	require.NoError(t, err)
	require.Equal(t, []uint64{0x8dae70779760b081, 0x31bcf2f855d6e5}, cs64)

	s, err := NewState[uint64](Xoshiro256)
	require.NoError(t, err)
	fromState, err := s.CharacteristicCoefficients()
	require.NoError(t, err)
	require.Equal(t, characteristicTable[Xoshiro256], fromState)
}

func TestCharacteristicWordWidth(t *testing.T) {
	_, err := CharacteristicCoefficients[uint64](Xoshiro128)
	require.Equal(t, ErrWordWidth, err)
}

// Without a registered source, anything off the table is a hard error.
func TestCharacteristicUnsupported(t *testing.T) {
	odd := Params{Family: FamilyXoroshiro, WordBits: 64, Words: 2, A: 1, B: 2, C: 3}
	_, err := CharacteristicCoefficients[uint64](odd)
	require.Equal(t, ErrUnsupportedParameterization, err)
}

func TestRegisterSource(t *testing.T) {
	require.Panics(t, func() { RegisterSource(nil) })

	fake := Params{Family: FamilyXoroshiro, WordBits: 64, Words: 2, A: 40, B: 41, C: 42}
	RegisterSource(func(p Params) ([]uint64, error) {
		if p != fake {
			return nil, ErrUnsupportedParameterization
		}
		return []uint64{1, 2}, nil
	})

	cs, err := CharacteristicCoefficients[uint64](fake)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2}, cs)

	// Other parameterizations fall through the source unharmed.
	_, err = CharacteristicCoefficients[uint64](Params{Family: FamilyXoroshiro, WordBits: 64, Words: 2, A: 1, B: 2, C: 3})
	require.Equal(t, ErrUnsupportedParameterization, err)
}

func TestFamilyStrings(t *testing.T) {
	f, err := NewFamily("XoRoShIrO")
	require.NoError(t, err)
	require.Equal(t, FamilyXoroshiro, f)

	_, err = NewFamily("mersenne")
	require.Equal(t, ErrUnknownFamily, err)

	require.Equal(t, "xoshiro<4x32,9,11>", Xoshiro128.String())
	require.Equal(t, "xoroshiro<16x64,25,27,36>", Xoroshiro1024.String())
	require.Equal(t, uint(1024), Xoroshiro1024.Bits())
}

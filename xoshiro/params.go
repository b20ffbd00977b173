package xoshiro

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFamily is returned when NewFamily fails to parse a family name.
var ErrUnknownFamily = errors.New("xoshiro: unknown generator family")

// Family identifies one of the two supported generator families.
type Family uint8

const (
	// FamilyXoshiro is the family whose step recombines all words of state.
	// Its formula is hard-coded per supported word count.
	FamilyXoshiro Family = iota

	// FamilyXoroshiro is the family whose step only ever touches the first
	// and last logical words, which lets larger states run on a ring buffer.
	FamilyXoroshiro
)

var (
	familyToString = make(map[Family]string)
	stringToFamily = make(map[string]Family)
)

func init() {
	familyToString[FamilyXoshiro] = "xoshiro"
	familyToString[FamilyXoroshiro] = "xoroshiro"

	for k, v := range familyToString {
		stringToFamily[v] = k
	}
}

// NewFamily returns the proper Family given a string.
func NewFamily(s string) (Family, error) {
	if f, ok := stringToFamily[strings.ToLower(s)]; ok {
		return f, nil
	}

	return FamilyXoshiro, ErrUnknownFamily
}

// String implements Stringer for a Family.
func (f Family) String() string {
	if name, ok := familyToString[f]; ok {
		return name
	}

	panic("xoshiro: family has no associated name")
}

// Params fixes one parameterization of a generator family: the number and
// width of the state words and the shift/rotation amounts used by the step
// function. Params values are comparable and key every lookup table in this
// package.
type Params struct {
	Family   Family
	WordBits uint
	Words    uint

	// A, B, C are the step parameters. C is unused by the xoshiro family.
	A, B, C uint
}

// Bits returns the total number of state bits n.
func (p Params) Bits() uint { return p.Words * p.WordBits }

// String implements Stringer for Params.
func (p Params) String() string {
	if p.Family == FamilyXoroshiro {
		return fmt.Sprintf("%s<%dx%d,%d,%d,%d>", p.Family, p.Words, p.WordBits, p.A, p.B, p.C)
	}
	return fmt.Sprintf("%s<%dx%d,%d,%d>", p.Family, p.Words, p.WordBits, p.A, p.B)
}

// The parameterizations this package ships characteristic polynomials for.
// Shift amounts follow Blackman & Vigna's preferred versions.
var (
	Xoshiro128    = Params{Family: FamilyXoshiro, WordBits: 32, Words: 4, A: 9, B: 11}
	Xoshiro256    = Params{Family: FamilyXoshiro, WordBits: 64, Words: 4, A: 17, B: 45}
	Xoshiro512    = Params{Family: FamilyXoshiro, WordBits: 64, Words: 8, A: 11, B: 21}
	Xoroshiro64   = Params{Family: FamilyXoroshiro, WordBits: 32, Words: 2, A: 26, B: 9, C: 13}
	Xoroshiro128  = Params{Family: FamilyXoroshiro, WordBits: 64, Words: 2, A: 24, B: 16, C: 37}
	Xoroshiro128b = Params{Family: FamilyXoroshiro, WordBits: 64, Words: 2, A: 49, B: 21, C: 28}
	Xoroshiro1024 = Params{Family: FamilyXoroshiro, WordBits: 64, Words: 16, A: 25, B: 27, C: 36}
)

package xoshiro

import "sort"

// Generator combines a State with a Scrambler to form a complete PRNG.
type Generator[W Word] struct {
	state    *State[W]
	scramble Scrambler[W]
}

// NewGenerator returns a generator for the given parameterization and
// scrambler, seeded to the first unit state.
func NewGenerator[W Word](p Params, scramble Scrambler[W]) (*Generator[W], error) {
	s, err := NewState[W](p)
	if err != nil {
		return nil, err
	}

	return &Generator[W]{state: s, scramble: scramble}, nil
}

// State returns the generator's underlying state, for seeding, jumping, or
// partitioning.
func (g *Generator[W]) State() *State[W] { return g.state }

// Params returns the generator's parameterization.
func (g *Generator[W]) Params() Params { return g.state.p }

// Next scrambles the current state into a single output word and steps.
func (g *Generator[W]) Next() W {
	out := g.scramble(g.state)
	g.state.Step()
	return out
}

// Uint64 returns the next output widened to 64 bits. For 32-bit
// parameterizations two outputs are combined.
func (g *Generator[W]) Uint64() uint64 {
	u := uint64(g.Next())
	if wordBits[W]() == 32 {
		u = u<<32 | uint64(g.Next())
	}
	return u
}

// Discard drops the next z outputs. For large z, jumping is far cheaper.
func (g *Generator[W]) Discard(z uint64) {
	for i := uint64(0); i < z; i++ {
		g.state.Step()
	}
}

// Intn generates an int k that satisfies k >= 0 && k < n.
// n must be > 0.
func (g *Generator[W]) Intn(n int) int {
	if n <= 0 {
		panic("invalid n <= 0")
	}
	v := int(g.Uint64())
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 returns a uniform float64 in [0, 1).
func (g *Generator[W]) Float64() float64 {
	return float64(g.Uint64()>>11) / (1 << 53)
}

// Shuffle pseudorandomizes the order of n elements using swap, which
// exchanges the elements with indexes i and j.
func (g *Generator[W]) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, g.Intn(i+1))
	}
}

type scrambleKind uint8

const (
	scrambleStar scrambleKind = iota
	scrambleStarStar
	scramblePlus
	scramblePlusPlus
)

// preset describes one of the named generators from the Blackman & Vigna
// paper: a parameterization plus a concrete scrambler.
type preset struct {
	params Params
	kind   scrambleKind
	s, t   uint64
	r      uint
	w0, w1 int
}

var presets = map[string]preset{
	"xoshiro128+":     {params: Xoshiro128, kind: scramblePlus, w0: 0, w1: 3},
	"xoshiro128++":    {params: Xoshiro128, kind: scramblePlusPlus, r: 7, w0: 0, w1: 3},
	"xoshiro128**":    {params: Xoshiro128, kind: scrambleStarStar, s: 5, r: 7, t: 9, w0: 1},
	"xoshiro256+":     {params: Xoshiro256, kind: scramblePlus, w0: 0, w1: 3},
	"xoshiro256++":    {params: Xoshiro256, kind: scramblePlusPlus, r: 23, w0: 0, w1: 3},
	"xoshiro256**":    {params: Xoshiro256, kind: scrambleStarStar, s: 5, r: 7, t: 9, w0: 1},
	"xoshiro512+":     {params: Xoshiro512, kind: scramblePlus, w0: 2, w1: 0},
	"xoshiro512++":    {params: Xoshiro512, kind: scramblePlusPlus, r: 17, w0: 2, w1: 0},
	"xoshiro512**":    {params: Xoshiro512, kind: scrambleStarStar, s: 5, r: 7, t: 9, w0: 1},
	"xoroshiro64*":    {params: Xoroshiro64, kind: scrambleStar, s: 0x9E3779BB, w0: 0},
	"xoroshiro64**":   {params: Xoroshiro64, kind: scrambleStarStar, s: 0x9E3779BB, r: 5, t: 5, w0: 0},
	"xoroshiro128+":   {params: Xoroshiro128, kind: scramblePlus, w0: 0, w1: 1},
	"xoroshiro128++":  {params: Xoroshiro128b, kind: scramblePlusPlus, r: 17, w0: 0, w1: 1},
	"xoroshiro128**":  {params: Xoroshiro128, kind: scrambleStarStar, s: 5, r: 7, t: 9, w0: 0},
	"xoroshiro1024++": {params: Xoroshiro1024, kind: scramblePlusPlus, r: 23, w0: 15, w1: 0},
	"xoroshiro1024*":  {params: Xoroshiro1024, kind: scrambleStar, s: 0x9e3779b97f4a7c13, w0: 0},
	"xoroshiro1024**": {params: Xoroshiro1024, kind: scrambleStarStar, s: 5, r: 7, t: 9, w0: 0},
}

func buildScrambler[W Word](sp preset) Scrambler[W] {
	switch sp.kind {
	case scrambleStar:
		return Star(W(sp.s), sp.w0)
	case scrambleStarStar:
		return StarStar(W(sp.s), sp.r, W(sp.t), sp.w0)
	case scramblePlus:
		return Plus[W](sp.w0, sp.w1)
	default:
		return PlusPlus[W](sp.r, sp.w0, sp.w1)
	}
}

// New creates one of the named generators from the Blackman & Vigna paper,
// e.g. "xoshiro256**" or "xoroshiro128+". The word type W must match the
// generator's output width.
func New[W Word](name string) (*Generator[W], error) {
	sp, ok := presets[name]
	if !ok {
		return nil, ErrUnknownGenerator
	}
	if sp.params.WordBits != wordBits[W]() {
		return nil, ErrWordWidth
	}

	return NewGenerator(sp.params, buildScrambler[W](sp))
}

// LookupParams returns the parameterization behind a generator name.
func LookupParams(name string) (Params, bool) {
	sp, ok := presets[name]
	return sp.params, ok
}

// Names returns the sorted list of named generators.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package xoshiro

// State holds the N words of a generator state and advances them in place.
//
// Both families store their words in a single slice. The xoshiro step
// formulas address it directly. The xoroshiro step for more than two words
// instead rotates a logical-to-physical offset so that logical word i lives
// at physical slot (i + last + 1) % N; advancing the offset by one slot after
// each step is algebraically the same as shifting the whole array down, at a
// fraction of the cost. Seeding resets the offset so logical and physical
// order coincide. For xoshiro states the offset stays at N-1 and the mapping
// is the identity.
type State[W Word] struct {
	p     Params
	words []W

	// last is the physical slot of the final logical word.
	last int
}

// NewState returns a fresh state for the given parameterization, seeded to
// the first unit state (word 0 equal to 1).
//
// It fails with ErrUnsupportedParameterization when no step formula exists
// for the requested family and word count: xoshiro has no closed-form
// generalization beyond 4 or 8 words, and xoroshiro needs at least 2.
func NewState[W Word](p Params) (*State[W], error) {
	if wordBits[W]() != p.WordBits {
		return nil, ErrWordWidth
	}

	switch p.Family {
	case FamilyXoshiro:
		if p.Words != 4 && p.Words != 8 {
			return nil, ErrUnsupportedParameterization
		}
	case FamilyXoroshiro:
		if p.Words < 2 {
			return nil, ErrUnsupportedParameterization
		}
	default:
		return nil, ErrUnsupportedParameterization
	}

	s := &State[W]{
		p:     p,
		words: make([]W, p.Words),
		last:  int(p.Words) - 1,
	}
	s.words[0] = 1

	return s, nil
}

// Params returns the parameterization this state was built for.
func (s *State[W]) Params() Params { return s.p }

// Seed copies exactly N words into the state and resets the rotation offset.
// The words must not all be zero.
func (s *State[W]) Seed(words []W) error {
	if len(words) != len(s.words) {
		return ErrWordCount
	}

	zero := true
	for _, w := range words {
		if w != 0 {
			zero = false
			break
		}
	}
	if zero {
		return ErrZeroState
	}

	s.reseed(words)
	return nil
}

// reseed installs words without precondition checks. Internal callers pass
// values already known to be well formed.
func (s *State[W]) reseed(words []W) {
	copy(s.words, words)
	s.last = len(s.words) - 1
}

// Word returns the i'th logical state word.
func (s *State[W]) Word(i int) W {
	return s.words[(i+s.last+1)%len(s.words)]
}

// Words returns a copy of the state in logical order, untangling the ring
// buffer if one is in use.
func (s *State[W]) Words() []W {
	out := make([]W, len(s.words))
	for i := range out {
		out[i] = s.Word(i)
	}
	return out
}

// Clone returns an independent copy of the state.
func (s *State[W]) Clone() *State[W] {
	return &State[W]{
		p:     s.p,
		words: append([]W(nil), s.words...),
		last:  s.last,
	}
}

// Step advances the state by exactly one step of its recurrence.
func (s *State[W]) Step() {
	switch s.p.Family {
	case FamilyXoshiro:
		if s.p.Words == 4 {
			s.stepXoshiro4()
		} else {
			s.stepXoshiro8()
		}
	case FamilyXoroshiro:
		if s.p.Words == 2 {
			s.stepXoroshiroPair()
		} else {
			s.stepXoroshiroRing()
		}
	}
}

func (s *State[W]) stepXoshiro4() {
	w := s.words
	t := w[1] << s.p.A
	w[2] ^= w[0]
	w[3] ^= w[1]
	w[1] ^= w[2]
	w[0] ^= w[3]
	w[2] ^= t
	w[3] = rotl(w[3], s.p.B)
}

func (s *State[W]) stepXoshiro8() {
	w := s.words
	t := w[1] << s.p.A
	w[2] ^= w[0]
	w[5] ^= w[1]
	w[1] ^= w[2]
	w[7] ^= w[3]
	w[3] ^= w[4]
	w[4] ^= w[5]
	w[0] ^= w[6]
	w[6] ^= w[7]
	w[6] ^= t
	w[7] = rotl(w[7], s.p.B)
}

func (s *State[W]) stepXoroshiroPair() {
	w := s.words
	s0, s1 := w[0], w[1]
	s1 ^= s0
	w[0] = rotl(s0, s.p.A) ^ s1<<s.p.B ^ s1
	w[1] = rotl(s1, s.p.C)
}

// stepXoroshiroRing is the two-word recurrence applied to the first and last
// logical words only, with the offset advance standing in for an array shift.
func (s *State[W]) stepXoroshiroRing() {
	n := len(s.words)
	iLast := s.last
	iFirst := (iLast + 1) % n

	sLast := s.words[iLast]
	sFirst := s.words[iFirst]

	sLast ^= sFirst
	s.words[iLast] = rotl(sFirst, s.p.A) ^ sLast<<s.p.B ^ sLast
	s.words[iFirst] = rotl(sLast, s.p.C)

	s.last = iFirst
}

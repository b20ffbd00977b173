package xoshiro

// A Scrambler reduces a state to a single output word. Scramblers read the
// state through its logical word accessor and never mutate it; the jump
// machinery is entirely independent of which scrambler sits on top.
type Scrambler[W Word] func(s *State[W]) W

// Star is the "*" scrambler: a multiple of state word w.
func Star[W Word](mult W, w int) Scrambler[W] {
	return func(s *State[W]) W {
		return s.Word(w) * mult
	}
}

// StarStar is the "**" scrambler: state word w multiplied, rotated, and
// multiplied again.
func StarStar[W Word](s0 W, r uint, t W, w int) Scrambler[W] {
	return func(s *State[W]) W {
		return rotl(s.Word(w)*s0, r) * t
	}
}

// Plus is the "+" scrambler: the sum of state words w0 and w1.
func Plus[W Word](w0, w1 int) Scrambler[W] {
	return func(s *State[W]) W {
		return s.Word(w0) + s.Word(w1)
	}
}

// PlusPlus is the "++" scrambler: the rotated sum of words w0 and w1 with
// w0 added back in.
func PlusPlus[W Word](r uint, w0, w1 int) Scrambler[W] {
	return func(s *State[W]) W {
		return rotl(s.Word(w0)+s.Word(w1), r) + s.Word(w0)
	}
}

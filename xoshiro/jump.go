package xoshiro

// JumpPolynomial holds the coefficients of r(x) = x^J mod c(x) for one
// parameterization. It is produced by JumpCoefficients and may be cached and
// reused for any number of jumps of the same size. The word type and the
// embedded Params tie it to the states it can legally be applied to.
type JumpPolynomial[W Word] struct {
	params Params
	words  []W
}

// Params returns the parameterization the polynomial was computed for.
func (jp JumpPolynomial[W]) Params() Params { return jp.params }

// Coefficients returns a copy of the packed coefficient words.
func (jp JumpPolynomial[W]) Coefficients() []W {
	return append([]W(nil), jp.words...)
}

// JumpCoefficients computes the jump polynomial that advances a state of
// parameterization p by J steps, or by 2^J steps when jIsPow2 is set. It is
// a pure function of (p, J) with no side effects.
//
// It fails with ErrUnsupportedParameterization when no characteristic
// polynomial is known or derivable for p.
func JumpCoefficients[W Word](p Params, j uint64, jIsPow2 bool) (JumpPolynomial[W], error) {
	cs, err := CharacteristicCoefficients[W](p)
	if err != nil {
		return JumpPolynomial[W]{}, err
	}

	return JumpPolynomial[W]{params: p, words: Reduce(cs, j, jIsPow2)}, nil
}

// Jump advances s in place by the jump distance jp was computed for, without
// materializing any intermediate state. It evaluates r at the transition
// operator applied to s, Horner style: walk the bits of r from lowest to
// highest, XOR the current state into an accumulator whenever the bit is
// set, and advance the state by one native step after every bit. That is one
// step per state bit rather than one per skipped output.
//
// The state is consumed while producing the powers T^i·s; when Jump returns
// it holds the jumped value and nothing else.
func Jump[W Word](s *State[W], jp JumpPolynomial[W]) error {
	if jp.params != s.p {
		return ErrParamsMismatch
	}

	jumpState(s, jp.words)
	return nil
}

func jumpState[W Word](s *State[W], r []W) {
	nWords := len(s.words)
	bpw := wordBits[W]()

	sum := make([]W, nWords)
	for i := 0; i < nWords; i++ {
		ri := r[i]
		for b := uint(0); b < bpw; b++ {
			if ri&(W(1)<<b) != 0 {
				for w := 0; w < nWords; w++ {
					sum[w] ^= s.Word(w)
				}
			}
			s.Step()
		}
	}

	s.reseed(sum)
}

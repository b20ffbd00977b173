package xoshiro

import "errors"

var (
	// ErrUnsupportedParameterization is returned when a family, word count,
	// or shift-parameter combination has neither a hard-coded step formula
	// nor a known or derivable characteristic polynomial. It is never
	// approximated or defaulted; callers must choose different parameters.
	ErrUnsupportedParameterization = errors.New("xoshiro: unsupported parameterization")

	// ErrZeroState is returned when seeding with all-zero words. The
	// all-zero state is a fixed point of every supported transition and
	// would produce a constant output stream.
	ErrZeroState = errors.New("xoshiro: state words must not all be zero")

	// ErrWordCount is returned when a word slice is sized for a different
	// parameterization.
	ErrWordCount = errors.New("xoshiro: wrong number of state words")

	// ErrWordWidth is returned when the word type W does not match the
	// parameterization's word width.
	ErrWordWidth = errors.New("xoshiro: word type does not match parameterization width")

	// ErrParamsMismatch is returned when a jump polynomial computed for one
	// parameterization is applied to a state of another.
	ErrParamsMismatch = errors.New("xoshiro: jump polynomial was computed for a different parameterization")

	// ErrUnknownGenerator is returned by New when no generator with the
	// requested name exists.
	ErrUnknownGenerator = errors.New("xoshiro: unknown generator name")
)

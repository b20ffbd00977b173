package xoshiro

import "sync"

// characteristicTable maps a parameterization to the precomputed low
// coefficients of its characteristic polynomial c(x) = x^n + p(x). Each
// entry stores one state word per element, low word first; the implicit
// leading coefficient of c(x) is always 1 and is not stored.
var characteristicTable = map[Params][]uint64{
	Xoshiro128: {0xde18fc01, 0x1b489db6, 0x6254b1, 0xfc65a2},
	Xoshiro256: {0x9d116f2bb0f0f001, 0x280002bcefd1a5e, 0x4b4edcf26259f85, 0x3c03c3f3ecb19},
	Xoshiro512: {
		0xcf3cff0c00000001, 0x7fdc78d886f00c63, 0xf05e63fca6d7b781, 0x7a67058e7bbab6f0,
		0xf11eef832e32518f, 0x51ba7c47edc758ad, 0x8f2d27268ce4b20b, 0x500055d8b77f,
	},
	Xoroshiro64:   {0x6e2286c1, 0x53be9da},
	Xoroshiro128:  {0x95b8f76579aa001, 0x8828e513b43d5},
	Xoroshiro128b: {0x8dae70779760b081, 0x31bcf2f855d6e5},
	Xoroshiro1024: {
		0x5cfeb8cc48ddb211, 0xb73e379d035a06dd, 0x17d5100a20a0350e, 0x7550223f68f98cac,
		0x29d373b5c5ed3459, 0x3689b412ef70de48, 0xa1d3b6ee079a7cc6, 0x9bf0b669abd100f8,
		0x955c84e105f60997, 0x6ca140c61889cddd, 0xabaf68c5fc3a0e4a, 0xa46134526b83adc5,
		0x710704d05683d63, 0x580d080b44b606a2, 0x8040a0580158a1, 0x800081,
	},
}

// A Source derives characteristic coefficients for parameterizations that
// have no table entry. Coefficients are returned packed one state word per
// element, low word first, exactly as stored in the table.
//
// A Source that cannot serve a parameterization must return
// ErrUnsupportedParameterization so lookup can fall through to the next one.
type Source func(p Params) ([]uint64, error)

var (
	sourcesM sync.RWMutex
	sources  []Source
)

// RegisterSource makes a characteristic Source available to lookups.
// Sources are consulted in registration order, after the compiled table.
//
// If the provided Source is nil, this function panics.
func RegisterSource(s Source) {
	if s == nil {
		panic("xoshiro: could not register a nil Source")
	}

	sourcesM.Lock()
	defer sourcesM.Unlock()
	sources = append(sources, s)
}

// CharacteristicCoefficients returns the n low coefficients of the
// characteristic polynomial for p, packed into N words.
//
// The compiled table is consulted first, then any registered Sources. If no
// entry exists and no source can derive one, it fails with
// ErrUnsupportedParameterization.
func CharacteristicCoefficients[W Word](p Params) ([]W, error) {
	if wordBits[W]() != p.WordBits {
		return nil, ErrWordWidth
	}

	if words, ok := characteristicTable[p]; ok {
		return packWords[W](words), nil
	}

	sourcesM.RLock()
	defer sourcesM.RUnlock()

	for _, src := range sources {
		words, err := src(p)
		if err == ErrUnsupportedParameterization {
			continue
		}
		if err != nil {
			return nil, err
		}
		return packWords[W](words), nil
	}

	return nil, ErrUnsupportedParameterization
}

// CharacteristicCoefficients returns the characteristic coefficients for the
// state's own parameterization.
func (s *State[W]) CharacteristicCoefficients() ([]W, error) {
	return CharacteristicCoefficients[W](s.p)
}

func packWords[W Word](words []uint64) []W {
	out := make([]W, len(words))
	for i, w := range words {
		out[i] = W(w)
	}
	return out
}

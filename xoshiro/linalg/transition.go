package linalg

import (
	"sync"

	"github.com/jumprand/jumprand/pkg/log"
	"github.com/jumprand/jumprand/xoshiro"
)

var (
	transitionM     sync.Mutex
	transitionCache = make(map[xoshiro.Params]*Matrix)
)

// TransitionMatrix returns the n x n GF(2) matrix representing one step of
// the parameterization p: column k is the state reached by stepping the k'th
// unit state once. The matrix depends only on the family's fixed recurrence,
// never on a live state, so it is computed once per parameterization and
// cached; the cached value is safe to share read-only.
func TransitionMatrix[W xoshiro.Word](p xoshiro.Params) (*Matrix, error) {
	transitionM.Lock()
	defer transitionM.Unlock()

	if m, ok := transitionCache[p]; ok {
		return m, nil
	}

	s, err := xoshiro.NewState[W](p)
	if err != nil {
		return nil, err
	}

	n := int(p.Bits())
	bpw := int(p.WordBits)
	m := NewMatrix(n)

	words := make([]W, p.Words)
	for k := 0; k < n; k++ {
		for i := range words {
			words[i] = 0
		}
		words[k/bpw] = W(1) << (k % bpw)

		// A unit state is never all zero, so this cannot fail.
		if err := s.Seed(words); err != nil {
			return nil, err
		}
		s.Step()

		for i, w := range s.Words() {
			for b := 0; b < bpw; b++ {
				if w>>b&1 == 1 {
					m.SetBit(i*bpw+b, k)
				}
			}
		}
	}

	log.Debug("extracted transition matrix", log.Fields{"params": p.String(), "bits": n})

	transitionCache[p] = m
	return m, nil
}

package linalg

import (
	"github.com/jumprand/jumprand/pkg/log"
	"github.com/jumprand/jumprand/xoshiro"
)

func init() {
	xoshiro.RegisterSource(derive)
}

// derive adapts CharacteristicCoefficients to the core's Source contract,
// dispatching on the parameterization's word width.
func derive(p xoshiro.Params) ([]uint64, error) {
	switch p.WordBits {
	case 32:
		return CharacteristicCoefficients[uint32](p)
	case 64:
		return CharacteristicCoefficients[uint64](p)
	}
	return nil, xoshiro.ErrUnsupportedParameterization
}

// CharacteristicCoefficients derives the n low coefficients of a monic
// degree-n polynomial c(x) annihilating the transition operator T, for
// parameterizations without a compiled table entry, packed one state word
// per element.
//
// It accumulates an annihilating polynomial g(x) of T one basis vector at a
// time: for each e_i with g(T)·e_i nonzero, the minimal polynomial of that
// residual (found by Gaussian elimination over its Krylov sequence) is
// multiplied into g, after which g annihilates e_0..e_i. The cyclic
// subspaces the residuals generate are independent, so deg(g) never exceeds
// n. For the shipped parameterizations c(x) is primitive and g comes out as
// the full characteristic polynomial; custom parameterizations may stop at
// deg(g) = m < n, in which case g is padded to degree exactly n by
// multiplying by x^(n-m) — any monic degree-n multiple of an annihilating
// polynomial reduces powers of T correctly, which is all the jump machinery
// needs.
func CharacteristicCoefficients[W xoshiro.Word](p xoshiro.Params) ([]uint64, error) {
	m, err := TransitionMatrix[W](p)
	if err != nil {
		return nil, err
	}

	n := m.Size()

	g := NewVector(n + 1)
	g.SetBit(0)

	for i := 0; i < n && g.LeadingSet() < n; i++ {
		e := NewVector(n)
		e.SetBit(i)

		w := applyPoly(m, g, e)
		if w.IsZero() {
			continue
		}

		g = polyMul(g, minimalPolynomialOf(m, w))
	}

	deg := g.LeadingSet()

	c := NewVector(n + 1)
	for k := 0; k <= deg; k++ {
		if g.Bit(k) == 1 {
			c.SetBit(k + n - deg)
		}
	}

	log.Debug("derived annihilating polynomial", log.Fields{"params": p.String(), "degree": n, "minimal_degree": deg})

	// c holds the result: bits 0..n-1 are the stored coefficients, bit n
	// the implicit monic leading term.
	bpw := int(p.WordBits)
	words := make([]uint64, p.Words)
	for i := 0; i < n; i++ {
		if c.Bit(i) == 1 {
			words[i/bpw] |= 1 << (i % bpw)
		}
	}
	return words, nil
}

// minimalPolynomialOf returns the lowest-degree monic polynomial h(x) with
// h(T)·v = 0. It Gaussian-eliminates the Krylov sequence v, T·v, T²·v, ...
// while tracking which combination of powers produced each reduced vector;
// the first dependency is the minimal polynomial.
func minimalPolynomialOf(m *Matrix, v *Vector) *Vector {
	n := m.Size()

	// pivots[i] holds the reduced vector whose leading bit is i, paired with
	// the combination of Krylov terms it was assembled from.
	type row struct {
		vec  *Vector
		comb *Vector
	}
	pivots := make(map[int]row, n)

	cur := v.Clone()
	for k := 0; k <= n; k++ {
		vec := cur.Clone()
		comb := NewVector(n + 1)
		comb.SetBit(k)

		for !vec.IsZero() {
			lead := vec.LeadingSet()
			r, ok := pivots[lead]
			if !ok {
				pivots[lead] = row{vec: vec, comb: comb}
				break
			}
			vec.Xor(r.vec)
			comb.Xor(r.comb)
		}

		if vec.IsZero() {
			return comb
		}

		cur = m.MulVec(cur)
	}

	// n+1 vectors in an n-dimensional space always carry a dependency.
	panic("linalg: krylov elimination failed to terminate")
}

// applyPoly returns g(T)·v.
func applyPoly(m *Matrix, g, v *Vector) *Vector {
	deg := g.LeadingSet()

	res := NewVector(v.Len())
	cur := v.Clone()
	for k := 0; k <= deg; k++ {
		if g.Bit(k) == 1 {
			res.Xor(cur)
		}
		if k < deg {
			cur = m.MulVec(cur)
		}
	}
	return res
}

// polyMul multiplies two GF(2) polynomials. The product must fit a's length.
func polyMul(a, b *Vector) *Vector {
	out := NewVector(a.Len())
	for i := 0; i <= b.LeadingSet(); i++ {
		if b.Bit(i) == 1 {
			out.XorShifted(a, i)
		}
	}
	return out
}

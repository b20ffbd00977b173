// Package linalg provides the small amount of GF(2) linear algebra needed to
// extract a generator's transition matrix and derive its characteristic
// polynomial. The jump-ahead core in package xoshiro only needs this package
// for parameterizations whose coefficients are not already in the compiled
// table; importing it registers the derivation as a characteristic source.
package linalg

import "math/bits"

const blockBits = 64

// Vector is a bit vector over GF(2), packed into 64-bit blocks.
type Vector struct {
	n      int
	blocks []uint64
}

// NewVector returns a zero vector of n bits.
func NewVector(n int) *Vector {
	return &Vector{
		n:      n,
		blocks: make([]uint64, (n+blockBits-1)/blockBits),
	}
}

// Len returns the number of bits.
func (v *Vector) Len() int { return v.n }

// Bit returns bit i.
func (v *Vector) Bit(i int) uint {
	return uint(v.blocks[i/blockBits]>>(i%blockBits)) & 1
}

// SetBit sets bit i to 1.
func (v *Vector) SetBit(i int) {
	v.blocks[i/blockBits] |= 1 << (i % blockBits)
}

// Xor adds o into v over GF(2).
func (v *Vector) Xor(o *Vector) {
	for i := range v.blocks {
		v.blocks[i] ^= o.blocks[i]
	}
}

// XorShifted adds o, shifted up by k bit positions, into v. The shifted
// value must fit v's length.
func (v *Vector) XorShifted(o *Vector, k int) {
	word, bit := k/blockBits, uint(k%blockBits)
	for j, b := range o.blocks {
		if b == 0 {
			continue
		}
		v.blocks[j+word] ^= b << bit
		if bit != 0 && b>>(blockBits-bit) != 0 {
			v.blocks[j+word+1] ^= b >> (blockBits - bit)
		}
	}
}

// IsZero reports whether every bit is zero.
func (v *Vector) IsZero() bool {
	for _, b := range v.blocks {
		if b != 0 {
			return false
		}
	}
	return true
}

// LeadingSet returns the index of the highest set bit, or -1 if the vector
// is zero.
func (v *Vector) LeadingSet() int {
	for i := len(v.blocks) - 1; i >= 0; i-- {
		if v.blocks[i] != 0 {
			return i*blockBits + bits.Len64(v.blocks[i]) - 1
		}
	}
	return -1
}

// Clone returns an independent copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{
		n:      v.n,
		blocks: append([]uint64(nil), v.blocks...),
	}
}

// Matrix is a square bit matrix over GF(2). Rows are packed into 64-bit
// blocks so that a matrix-vector product is a parity count per row.
type Matrix struct {
	n      int
	stride int
	rows   []uint64
}

// NewMatrix returns a zero n x n matrix.
func NewMatrix(n int) *Matrix {
	stride := (n + blockBits - 1) / blockBits
	return &Matrix{
		n:      n,
		stride: stride,
		rows:   make([]uint64, n*stride),
	}
}

// Size returns n for an n x n matrix.
func (m *Matrix) Size() int { return m.n }

// Bit returns the entry at row i, column j.
func (m *Matrix) Bit(i, j int) uint {
	return uint(m.rows[i*m.stride+j/blockBits]>>(j%blockBits)) & 1
}

// SetBit sets the entry at row i, column j to 1.
func (m *Matrix) SetBit(i, j int) {
	m.rows[i*m.stride+j/blockBits] |= 1 << (j % blockBits)
}

// MulVec returns the product m·v over GF(2).
func (m *Matrix) MulVec(v *Vector) *Vector {
	out := NewVector(m.n)
	for i := 0; i < m.n; i++ {
		row := m.rows[i*m.stride : (i+1)*m.stride]
		var parity int
		for b, block := range row {
			parity += bits.OnesCount64(block & v.blocks[b])
		}
		if parity&1 == 1 {
			out.SetBit(i)
		}
	}
	return out
}

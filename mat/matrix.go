// Package mat implements dense matrices and vectors over arbitrary precision
// integers, providing the exact arithmetic the vector scheme is built on:
// componentwise operations, stacking, signed binary decomposition and
// rational system solving.
package mat

import (
	"fmt"
	"math/big"
)

// Matrix is a dense row-major matrix of *big.Int values.
// Arithmetic methods allocate their result and never mutate their operands.
// Shape mismatches are programmer errors and panic; data-dependent failures
// (e.g. singular systems) are returned as errors.
type Matrix struct {
	rows, cols int
	values     []*big.Int
}

// NewMatrix allocates a zero rows x cols matrix.
func NewMatrix(rows, cols int) (m *Matrix) {
	// Sanity check
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("cannot NewMatrix: invalid shape %dx%d", rows, cols))
	}
	m = &Matrix{rows: rows, cols: cols, values: make([]*big.Int, rows*cols)}
	for i := range m.values {
		m.values[i] = new(big.Int)
	}
	return
}

// NewIdentityMatrix allocates the n x n identity matrix.
func NewIdentityMatrix(n int) (m *Matrix) {
	m = NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.values[i*n+i].SetInt64(1)
	}
	return
}

// Rows returns the number of rows of m.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns of m.
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the element at row i, column j. The returned value is the
// stored element, not a copy.
func (m *Matrix) At(i, j int) *big.Int {
	m.checkIndex(i, j)
	return m.values[i*m.cols+j]
}

// Set stores a copy of v at row i, column j.
func (m *Matrix) Set(i, j int, v *big.Int) {
	m.checkIndex(i, j)
	m.values[i*m.cols+j].Set(v)
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("cannot access (%d, %d): index out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Add returns m + b.
func (m *Matrix) Add(b *Matrix) (r *Matrix) {
	m.checkSameShape("Add", b)
	r = NewMatrix(m.rows, m.cols)
	for i := range m.values {
		r.values[i].Add(m.values[i], b.values[i])
	}
	return
}

// Sub returns m - b.
func (m *Matrix) Sub(b *Matrix) (r *Matrix) {
	m.checkSameShape("Sub", b)
	r = NewMatrix(m.rows, m.cols)
	for i := range m.values {
		r.values[i].Sub(m.values[i], b.values[i])
	}
	return
}

func (m *Matrix) checkSameShape(op string, b *Matrix) {
	if m.rows != b.rows || m.cols != b.cols {
		panic(fmt.Sprintf("cannot %s: shape mismatch %dx%d != %dx%d", op, m.rows, m.cols, b.rows, b.cols))
	}
}

// Mul returns the matrix product m * b.
func (m *Matrix) Mul(b *Matrix) (r *Matrix) {
	if m.cols != b.rows {
		panic(fmt.Sprintf("cannot Mul: shape mismatch %dx%d x %dx%d", m.rows, m.cols, b.rows, b.cols))
	}
	r = NewMatrix(m.rows, b.cols)
	t := new(big.Int)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			mik := m.values[i*m.cols+k]
			if mik.Sign() == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				t.Mul(mik, b.values[k*b.cols+j])
				rij := r.values[i*b.cols+j]
				rij.Add(rij, t)
			}
		}
	}
	return
}

// MulVec returns the matrix-vector product m * v.
func (m *Matrix) MulVec(v Vector) (r Vector) {
	if m.cols != len(v) {
		panic(fmt.Sprintf("cannot MulVec: shape mismatch %dx%d x %d", m.rows, m.cols, len(v)))
	}
	r = NewVector(m.rows)
	t := new(big.Int)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.Mul(m.values[i*m.cols+j], v[j])
			r[i].Add(r[i], t)
		}
	}
	return
}

// MulScalar returns k * m.
func (m *Matrix) MulScalar(k *big.Int) (r *Matrix) {
	r = NewMatrix(m.rows, m.cols)
	for i := range m.values {
		r.values[i].Mul(m.values[i], k)
	}
	return
}

// Lsh returns m * 2^k.
func (m *Matrix) Lsh(k uint) (r *Matrix) {
	r = NewMatrix(m.rows, m.cols)
	for i := range m.values {
		r.values[i].Lsh(m.values[i], k)
	}
	return
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() (r *Matrix) {
	r = NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.values[j*m.rows+i].Set(m.values[i*m.cols+j])
		}
	}
	return
}

// VStack returns the matrix with the rows of m on top of the rows of b.
func (m *Matrix) VStack(b *Matrix) (r *Matrix) {
	if m.cols != b.cols {
		panic(fmt.Sprintf("cannot VStack: column mismatch %d != %d", m.cols, b.cols))
	}
	r = NewMatrix(m.rows+b.rows, m.cols)
	for i := range m.values {
		r.values[i].Set(m.values[i])
	}
	for i := range b.values {
		r.values[len(m.values)+i].Set(b.values[i])
	}
	return
}

// HStack returns the matrix with the columns of m followed by the columns of b.
func (m *Matrix) HStack(b *Matrix) (r *Matrix) {
	if m.rows != b.rows {
		panic(fmt.Sprintf("cannot HStack: row mismatch %d != %d", m.rows, b.rows))
	}
	r = NewMatrix(m.rows, m.cols+b.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.values[i*r.cols+j].Set(m.values[i*m.cols+j])
		}
		for j := 0; j < b.cols; j++ {
			r.values[i*r.cols+m.cols+j].Set(b.values[i*b.cols+j])
		}
	}
	return
}

// CopyNew returns a deep copy of m.
func (m *Matrix) CopyNew() (r *Matrix) {
	r = NewMatrix(m.rows, m.cols)
	for i := range m.values {
		r.values[i].Set(m.values[i])
	}
	return
}

// Equal returns true if m and b have the same shape and values.
func (m *Matrix) Equal(b *Matrix) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i := range m.values {
		if m.values[i].Cmp(b.values[i]) != 0 {
			return false
		}
	}
	return true
}

// MaxBitLen returns the bit length of the largest entry of m in absolute value.
func (m *Matrix) MaxBitLen() (bits int) {
	for i := range m.values {
		if b := m.values[i].BitLen(); b > bits {
			bits = b
		}
	}
	return
}

// String implements fmt.Stringer.
func (m *Matrix) String() string {
	return fmt.Sprintf("mat.Matrix{%dx%d, max %d bits}", m.rows, m.cols, m.MaxBitLen())
}

package mat

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/nillab/homint/utils/bignum"
)

// Vector is a dense vector of *big.Int values. Like [Matrix], arithmetic
// methods allocate their result, never mutate their operands, and panic on
// dimension mismatches.
type Vector []*big.Int

// NewVector allocates a zero vector of dimension n.
func NewVector(n int) (v Vector) {
	// Sanity check
	if n < 1 {
		panic(fmt.Sprintf("cannot NewVector: invalid dimension %d", n))
	}
	v = make(Vector, n)
	for i := range v {
		v[i] = new(big.Int)
	}
	return
}

// NewVectorFromInts returns a Vector holding the values of xs.
func NewVectorFromInts[T constraints.Signed](xs []T) (v Vector) {
	v = make(Vector, len(xs))
	for i := range xs {
		v[i] = bignum.NewInt(int64(xs[i]))
	}
	return
}

// Int64s returns the values of v as a []int64, or an error if a component
// does not fit in an int64.
func (v Vector) Int64s() (xs []int64, err error) {
	xs = make([]int64, len(v))
	for i := range v {
		if !v[i].IsInt64() {
			return nil, fmt.Errorf("cannot Int64s: component %d does not fit in an int64", i)
		}
		xs[i] = v[i].Int64()
	}
	return
}

// Add returns v + b.
func (v Vector) Add(b Vector) (r Vector) {
	v.checkSameDim("Add", b)
	r = NewVector(len(v))
	for i := range v {
		r[i].Add(v[i], b[i])
	}
	return
}

// Sub returns v - b.
func (v Vector) Sub(b Vector) (r Vector) {
	v.checkSameDim("Sub", b)
	r = NewVector(len(v))
	for i := range v {
		r[i].Sub(v[i], b[i])
	}
	return
}

func (v Vector) checkSameDim(op string, b Vector) {
	if len(v) != len(b) {
		panic(fmt.Sprintf("cannot %s: dimension mismatch %d != %d", op, len(v), len(b)))
	}
}

// MulScalar returns k * v.
func (v Vector) MulScalar(k *big.Int) (r Vector) {
	r = NewVector(len(v))
	for i := range v {
		r[i].Mul(v[i], k)
	}
	return
}

// CopyNew returns a deep copy of v.
func (v Vector) CopyNew() (r Vector) {
	r = NewVector(len(v))
	for i := range v {
		r[i].Set(v[i])
	}
	return
}

// Equal returns true if v and b have the same dimension and values.
func (v Vector) Equal(b Vector) bool {
	if len(v) != len(b) {
		return false
	}
	for i := range v {
		if v[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

// MaxBitLen returns the bit length of the largest component of v in
// absolute value, i.e. 0 for the zero vector.
func (v Vector) MaxBitLen() (bits int) {
	for i := range v {
		if b := v[i].BitLen(); b > bits {
			bits = b
		}
	}
	return
}

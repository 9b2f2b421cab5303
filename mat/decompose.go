package mat

import (
	"fmt"
	"math/big"

	"github.com/nillab/homint/utils/bignum"
)

// BitDecompose returns the signed binary decomposition of v with bits digits
// per component, most significant digit first: component i with sign s and
// absolute value Sum_k b_k*2^k maps to the digits s*b_(bits-1), ..., s*b_0 at
// positions i*bits, ..., i*bits+bits-1 of the result.
// It panics if a component does not fit in bits digits.
func BitDecompose(v Vector, bits int) (r Vector) {
	// Sanity check
	if bits < 1 {
		panic(fmt.Sprintf("cannot BitDecompose: invalid digit count %d", bits))
	}
	if b := v.MaxBitLen(); b > bits {
		panic(fmt.Sprintf("cannot BitDecompose: component of %d bits does not fit in %d digits", b, bits))
	}
	r = NewVector(len(v) * bits)
	abs := new(big.Int)
	for i := range v {
		sign := int64(v[i].Sign())
		abs.Abs(v[i])
		for k := 0; k < bits; k++ {
			if abs.Bit(bits-1-k) == 1 {
				r[i*bits+k].SetInt64(sign)
			}
		}
	}
	return
}

// BitExpand returns the powers-of-two expansion of m with bits digits per
// column, scaled down by 2^logScale and rounded to the nearest integer:
// column j of m maps to the columns j*bits, ..., j*bits+bits-1 of the result,
// holding round(m[i][j] * 2^(bits-1-k) / 2^logScale) at digit position k.
//
// For logScale = 0 the expansion is exact and
//
//	BitExpand(m, bits, 0).MulVec(BitDecompose(v, bits)) = m.MulVec(v)
//
// for any v whose components fit in bits digits.
func BitExpand(m *Matrix, bits, logScale int) (r *Matrix) {
	// Sanity check
	if bits < 1 || logScale < 0 {
		panic(fmt.Sprintf("cannot BitExpand: invalid digit count %d or scale %d", bits, logScale))
	}
	r = NewMatrix(m.rows, m.cols*bits)
	den := new(big.Int).Lsh(bignum.NewInt(1), uint(logScale))
	t := new(big.Int)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			for k := 0; k < bits; k++ {
				t.Lsh(m.values[i*m.cols+j], uint(bits-1-k))
				if logScale == 0 {
					r.values[i*r.cols+j*bits+k].Set(t)
				} else {
					bignum.DivRound(t, den, r.values[i*r.cols+j*bits+k])
				}
			}
		}
	}
	return
}

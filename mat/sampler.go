package mat

import (
	"fmt"
	"math/big"

	"github.com/nillab/homint/utils/bignum"
	"github.com/nillab/homint/utils/sampling"
)

// UniformSampler samples matrices and vectors with entries drawn uniformly
// in [0, bound) from an underlying PRNG.
type UniformSampler struct {
	prng  sampling.PRNG
	bound *big.Int
}

// NewUniformSampler returns a UniformSampler reading from prng.
func NewUniformSampler(prng sampling.PRNG, bound *big.Int) *UniformSampler {
	// Sanity check
	if bound.Sign() <= 0 {
		panic(fmt.Sprintf("cannot NewUniformSampler: bound must be positive, got %s", bound.String()))
	}
	return &UniformSampler{prng: prng, bound: new(big.Int).Set(bound)}
}

// ReadNew samples a fresh rows x cols matrix.
func (s *UniformSampler) ReadNew(rows, cols int) (m *Matrix) {
	m = NewMatrix(rows, cols)
	for i := range m.values {
		m.values[i].Set(bignum.RandInt(s.prng, s.bound))
	}
	return
}

// ReadVectorNew samples a fresh vector of dimension n.
func (s *UniformSampler) ReadVectorNew(n int) (v Vector) {
	v = NewVector(n)
	for i := range v {
		v[i].Set(bignum.RandInt(s.prng, s.bound))
	}
	return
}

package mat

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nillab/homint/utils/bignum"
)

// ErrSingular is returned when a linear system has no unique solution.
var ErrSingular = errors.New("matrix is singular")

// SolveRound returns the integer vector closest to the exact rational
// solution x of m*x = b. The elimination runs over big.Rat, so the only
// rounding is the final one, with an error of at most 1/2 per component.
// It returns an error wrapping [ErrSingular] if m is not invertible, and
// panics if m is not square or if the dimension of b differs from m.
func SolveRound(m *Matrix, b Vector) (x Vector, err error) {
	// Sanity check
	if m.rows != m.cols {
		panic(fmt.Sprintf("cannot SolveRound: matrix is %dx%d, not square", m.rows, m.cols))
	}
	if m.rows != len(b) {
		panic(fmt.Sprintf("cannot SolveRound: dimension mismatch %dx%d x %d", m.rows, m.cols, len(b)))
	}

	n := m.rows

	// Augmented system over exact rationals.
	a := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		a[i] = make([]*big.Rat, n+1)
		for j := 0; j < n; j++ {
			a[i][j] = new(big.Rat).SetInt(m.values[i*m.cols+j])
		}
		a[i][n] = new(big.Rat).SetInt(b[i])
	}

	// Forward elimination. In exact arithmetic any non-zero pivot is as
	// good as any other.
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if a[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return nil, fmt.Errorf("cannot SolveRound: %w", ErrSingular)
		}
		a[col], a[pivot] = a[pivot], a[col]

		t := new(big.Rat)
		for row := col + 1; row < n; row++ {
			if a[row][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(a[row][col], a[col][col])
			for j := col; j <= n; j++ {
				t.Mul(f, a[col][j])
				a[row][j].Sub(a[row][j], t)
			}
		}
	}

	// Back substitution.
	sol := make([]*big.Rat, n)
	t := new(big.Rat)
	for i := n - 1; i >= 0; i-- {
		s := new(big.Rat).Set(a[i][n])
		for j := i + 1; j < n; j++ {
			t.Mul(a[i][j], sol[j])
			s.Sub(s, t)
		}
		sol[i] = s.Quo(s, a[i][i])
	}

	x = NewVector(n)
	for i := range sol {
		bignum.DivRound(sol[i].Num(), sol[i].Denom(), x[i])
	}
	return x, nil
}

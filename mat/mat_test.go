package mat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nillab/homint/utils/bignum"
	"github.com/nillab/homint/utils/sampling"
)

func matrixOf(values [][]int64) (m *Matrix) {
	m = NewMatrix(len(values), len(values[0]))
	for i := range values {
		for j := range values[i] {
			m.Set(i, j, bignum.NewInt(values[i][j]))
		}
	}
	return
}

func TestMatrixArithmetic(t *testing.T) {

	a := matrixOf([][]int64{{1, 2}, {3, 4}})
	b := matrixOf([][]int64{{5, 6}, {7, 8}})

	require.True(t, a.Add(b).Equal(matrixOf([][]int64{{6, 8}, {10, 12}})))
	require.True(t, a.Sub(b).Equal(matrixOf([][]int64{{-4, -4}, {-4, -4}})))
	require.True(t, a.Mul(b).Equal(matrixOf([][]int64{{19, 22}, {43, 50}})))
	require.True(t, a.MulScalar(bignum.NewInt(3)).Equal(matrixOf([][]int64{{3, 6}, {9, 12}})))
	require.True(t, a.Lsh(2).Equal(matrixOf([][]int64{{4, 8}, {12, 16}})))
	require.True(t, a.Transpose().Equal(matrixOf([][]int64{{1, 3}, {2, 4}})))
	require.True(t, NewIdentityMatrix(2).Mul(a).Equal(a))

	v := a.MulVec(NewVectorFromInts([]int64{1, 2}))
	require.True(t, v.Equal(NewVectorFromInts([]int64{5, 11})))

	// Operands are never mutated.
	require.True(t, a.Equal(matrixOf([][]int64{{1, 2}, {3, 4}})))
	require.True(t, b.Equal(matrixOf([][]int64{{5, 6}, {7, 8}})))
}

func TestMatrixStack(t *testing.T) {

	a := matrixOf([][]int64{{1, 2}, {3, 4}})

	require.True(t, a.VStack(matrixOf([][]int64{{5, 6}})).Equal(matrixOf([][]int64{{1, 2}, {3, 4}, {5, 6}})))
	require.True(t, matrixOf([][]int64{{1}, {2}}).HStack(matrixOf([][]int64{{3}, {4}})).Equal(matrixOf([][]int64{{1, 3}, {2, 4}})))
}

func TestMatrixCopyNew(t *testing.T) {

	a := matrixOf([][]int64{{1, 2}, {3, 4}})
	c := a.CopyNew()
	c.At(0, 0).SetInt64(99)

	require.True(t, a.Equal(matrixOf([][]int64{{1, 2}, {3, 4}})))
	require.False(t, c.Equal(a))
}

func TestMatrixShapePanics(t *testing.T) {

	a := matrixOf([][]int64{{1, 2}, {3, 4}})

	require.Panics(t, func() { a.Add(matrixOf([][]int64{{1, 2, 3}})) })
	require.Panics(t, func() { a.Mul(matrixOf([][]int64{{1, 2, 3}})) })
	require.Panics(t, func() { a.MulVec(NewVectorFromInts([]int64{1, 2, 3})) })
	require.Panics(t, func() { a.At(2, 0) })
	require.Panics(t, func() { NewMatrix(0, 1) })
}

func TestVector(t *testing.T) {

	v := NewVectorFromInts([]int64{1, -2, 3})
	b := NewVectorFromInts([]int64{4, 5, -6})

	require.True(t, v.Add(b).Equal(NewVectorFromInts([]int64{5, 3, -3})))
	require.True(t, v.Sub(b).Equal(NewVectorFromInts([]int64{-3, -7, 9})))
	require.True(t, v.MulScalar(bignum.NewInt(-2)).Equal(NewVectorFromInts([]int64{-2, 4, -6})))
	require.Equal(t, 2, v.MaxBitLen())
	require.Equal(t, 0, NewVector(3).MaxBitLen())

	xs, err := v.Int64s()
	require.NoError(t, err)
	require.Equal(t, []int64{1, -2, 3}, xs)

	huge := NewVector(1)
	huge[0].Lsh(bignum.NewInt(1), 80)
	_, err = huge.Int64s()
	require.Error(t, err)

	c := v.CopyNew()
	c[0].SetInt64(99)
	require.True(t, v.Equal(NewVectorFromInts([]int64{1, -2, 3})))
}

func TestBitDecompose(t *testing.T) {

	d := BitDecompose(NewVectorFromInts([]int64{5, -3}), 4)
	require.True(t, d.Equal(NewVectorFromInts([]int64{0, 1, 0, 1, 0, 0, -1, -1})))

	require.Panics(t, func() { BitDecompose(NewVectorFromInts([]int64{16}), 4) })
}

func TestBitExpand(t *testing.T) {

	// round(12 * 2^(2-k) / 2^2) and round(5 * 2^(2-k) / 2^1).
	require.True(t, BitExpand(matrixOf([][]int64{{12}}), 3, 2).Equal(matrixOf([][]int64{{12, 6, 3}})))
	require.True(t, BitExpand(matrixOf([][]int64{{5}}), 3, 1).Equal(matrixOf([][]int64{{10, 5, 3}})))
}

func TestBitExpandDecomposeIdentity(t *testing.T) {

	prng, err := sampling.NewSeededPRNG([]byte("mat decompose identity"))
	require.NoError(t, err)

	sampler := NewUniformSampler(prng, bignum.NewInt(1000))

	m := sampler.ReadNew(3, 4)
	v := sampler.ReadVectorNew(4).Sub(NewVectorFromInts([]int64{500, 500, 500, 500}))

	bits := 16
	got := BitExpand(m, bits, 0).MulVec(BitDecompose(v, bits))
	require.True(t, got.Equal(m.MulVec(v)))
}

func TestSolveRound(t *testing.T) {

	m := matrixOf([][]int64{{2, 1}, {1, 3}})

	// Exact integer solution.
	x, err := SolveRound(m, NewVectorFromInts([]int64{4, 7}))
	require.NoError(t, err)
	require.True(t, x.Equal(NewVectorFromInts([]int64{1, 2})))

	// Rational solution (2.2, 3.6) rounds to the nearest integers.
	x, err = SolveRound(m, NewVectorFromInts([]int64{8, 13}))
	require.NoError(t, err)
	require.True(t, x.Equal(NewVectorFromInts([]int64{2, 4})))

	// Zero pivot requires a row swap.
	x, err = SolveRound(matrixOf([][]int64{{0, 1}, {1, 0}}), NewVectorFromInts([]int64{3, 4}))
	require.NoError(t, err)
	require.True(t, x.Equal(NewVectorFromInts([]int64{4, 3})))

	_, err = SolveRound(matrixOf([][]int64{{1, 2}, {2, 4}}), NewVectorFromInts([]int64{1, 2}))
	require.ErrorIs(t, err, ErrSingular)

	require.Panics(t, func() { SolveRound(matrixOf([][]int64{{1, 2}}), NewVectorFromInts([]int64{1})) })
}

func TestUniformSampler(t *testing.T) {

	bound := bignum.NewInt(1 << 16)

	prngA, err := sampling.NewSeededPRNG([]byte("mat sampler"))
	require.NoError(t, err)
	prngB, err := sampling.NewSeededPRNG([]byte("mat sampler"))
	require.NoError(t, err)

	a := NewUniformSampler(prngA, bound).ReadNew(4, 4)
	b := NewUniformSampler(prngB, bound).ReadNew(4, 4)
	require.True(t, a.Equal(b))

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			require.True(t, a.At(i, j).Sign() >= 0)
			require.True(t, a.At(i, j).Cmp(bound) < 0)
		}
	}
}

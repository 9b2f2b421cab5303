package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	prec := uint(128)
	require.Equal(t, 0, Round(NewFloat(2.5, prec)).Cmp(NewFloat(3, prec)))
	require.Equal(t, 0, Round(NewFloat(-2.5, prec)).Cmp(NewFloat(-3, prec)))
	require.Equal(t, 0, Round(NewFloat(2.49, prec)).Cmp(NewFloat(2, prec)))
	require.Equal(t, 0, Round(NewFloat(-2.49, prec)).Cmp(NewFloat(-2, prec)))
}

func TestLog(t *testing.T) {
	prec := uint(128)
	log2x := Log(NewFloat(8, prec))
	log2x.Quo(log2x, Log2(prec))
	f, _ := log2x.Float64()
	require.InDelta(t, 3.0, f, 1e-12)
}

func TestExpPow(t *testing.T) {
	prec := uint(128)

	exp := Exp(Log(NewFloat(2, prec)))
	f, _ := exp.Float64()
	require.InDelta(t, 2.0, f, 1e-12)

	pow := Pow(NewFloat(2, prec), NewFloat(10, prec))
	f, _ = pow.Float64()
	require.InDelta(t, 1024.0, f, 1e-9)
}

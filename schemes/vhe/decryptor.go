package vhe

import (
	"fmt"
	"math"
	"math/big"

	"github.com/nillab/homint/mat"
	"github.com/nillab/homint/utils/bignum"
)

// Decryptor decrypts vector ciphertexts with a secret key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
	den    *big.Int
}

// NewDecryptor instantiates a new Decryptor for the given secret key.
// Decryption works uniformly for direct and switched keys.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {

	// Sanity check.
	if sk.Value.Rows() != params.Rows() {
		panic(fmt.Errorf("cannot NewDecryptor: key has %d rows, parameters expect %d", sk.Value.Rows(), params.Rows()))
	}

	return &Decryptor{
		params: params,
		sk:     sk.CopyNew(),
		den:    new(big.Int).Lsh(params.Scale(), uint(sk.LogScale)),
	}
}

// DecryptNew decrypts ct by rounding each component of S*c/w to the
// nearest integer. The result is correct while every noise component of
// ct stays below w/2.
func (dec *Decryptor) DecryptNew(ct *Ciphertext) (x []int64, err error) {

	if len(ct.Value) != dec.sk.Value.Cols() {
		return nil, fmt.Errorf("cannot DecryptNew: %w: ciphertext has dimension %d, key expects %d", ErrDimensionMismatch, len(ct.Value), dec.sk.Value.Cols())
	}

	num := dec.sk.Value.MulVec(ct.Value)

	out := mat.NewVector(dec.params.Rows())
	for i := range num {
		bignum.DivRound(num[i], dec.den, out[i])
	}

	if x, err = out.Int64s(); err != nil {
		return nil, fmt.Errorf("cannot DecryptNew: %w", err)
	}

	return
}

// Noise returns the exact noise vector of ct: the residual S*c - w*x with
// x the decrypted plaintext. Each component lies in [-w/2, w/2] and
// decryption is unambiguous while all components stay strictly below w/2
// in absolute value.
func (dec *Decryptor) Noise(ct *Ciphertext) (e []*big.Float, err error) {

	if len(ct.Value) != dec.sk.Value.Cols() {
		return nil, fmt.Errorf("cannot Noise: %w: ciphertext has dimension %d, key expects %d", ErrDimensionMismatch, len(ct.Value), dec.sk.Value.Cols())
	}

	num := dec.sk.Value.MulVec(ct.Value)

	scale := new(big.Float).SetPrec(prec).SetInt(new(big.Int).Lsh(bignum.NewInt(1), uint(dec.sk.LogScale)))

	e = make([]*big.Float, len(num))
	for i := range num {
		q := new(big.Int)
		bignum.DivRound(num[i], dec.den, q)

		r := new(big.Int).Sub(num[i], q.Mul(q, dec.den))

		e[i] = new(big.Float).SetPrec(prec).SetInt(r)
		e[i].Quo(e[i], scale)
	}

	return
}

const prec = 128

// Norm returns the log2 of the standard deviation, the minimum and the
// maximum absolute noise component of ct. The statistics are carried in
// arbitrary precision, only the returned logarithms are float64.
func Norm(ct *Ciphertext, dec *Decryptor) (std, min, max float64) {

	noise, err := dec.Noise(ct)
	if err != nil {
		// Sanity check.
		panic(err)
	}

	minErr := new(big.Float).Abs(noise[0])
	maxErr := new(big.Float).Abs(noise[0])
	tmp := new(big.Float)

	mean := bignum.NewFloat(0, prec)
	for i := range noise {
		tmp.Abs(noise[i])
		if minErr.Cmp(tmp) > 0 {
			minErr.Set(tmp)
		}
		if maxErr.Cmp(tmp) < 0 {
			maxErr.Set(tmp)
		}
		mean.Add(mean, noise[i])
	}

	n := bignum.NewFloat(len(noise), prec)
	mean.Quo(mean, n)

	dev := bignum.NewFloat(0, prec)
	for i := range noise {
		tmp.Sub(noise[i], mean)
		dev.Add(dev, tmp.Mul(tmp, tmp))
	}
	dev.Quo(dev, n)
	dev.Sqrt(dev)

	return log2Float(dev), log2Float(minErr), log2Float(maxErr)
}

// log2Float returns log2(x) for a non-negative x, with -Inf for zero.
func log2Float(x *big.Float) float64 {
	if x.Sign() == 0 {
		return math.Inf(-1)
	}
	y, _ := new(big.Float).Quo(bignum.Log(x), bignum.Log2(x.Prec())).Float64()
	return y
}

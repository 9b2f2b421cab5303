package vhe

import (
	"fmt"
	"math/big"

	"github.com/nillab/homint/mat"
	"github.com/nillab/homint/utils/sampling"
)

// Encryptor encrypts integer vectors of dimension m under a secret or a
// public key.
type Encryptor struct {
	params       Parameters
	sk           *SecretKey
	pk           *PublicKey
	noiseSampler *mat.UniformSampler
}

// NewEncryptor instantiates a new Encryptor for the given encryption key,
// which must be a *[SecretKey] or a *[PublicKey]. Encryption under a
// secret key requires a square key matrix, keys of the form [I | T] can
// only encrypt through the matching public key. An optional PRNG can be
// provided to make the encryption noise reproducible, by default a fresh
// cryptographically secure PRNG is used.
func NewEncryptor(params Parameters, key EncryptionKey, prng ...sampling.PRNG) *Encryptor {

	enc := &Encryptor{
		params:       params,
		noiseSampler: mat.NewUniformSampler(prngOrDefault(prng), new(big.Int).Lsh(big.NewInt(1), noiseLogBound)),
	}

	switch key := key.(type) {
	case *SecretKey:
		// Sanity check.
		if key.Value.Rows() != params.Rows() {
			panic(fmt.Errorf("cannot NewEncryptor: key has %d rows, parameters expect %d", key.Value.Rows(), params.Rows()))
		}
		if key.Value.Rows() != key.Value.Cols() {
			panic(fmt.Errorf("cannot NewEncryptor: encryption under a secret key requires a square key matrix"))
		}
		enc.sk = key.CopyNew()
	case *PublicKey:
		// Sanity check.
		if key.Value.Value.Cols() != params.Rows()*key.Value.BitLen {
			panic(fmt.Errorf("cannot NewEncryptor: public key decomposes %d components, parameters expect %d", key.Value.Value.Cols(), params.Rows()*key.Value.BitLen))
		}
		enc.pk = key.CopyNew()
	default:
		panic(fmt.Errorf("cannot NewEncryptor: unsupported key type %T", key))
	}

	return enc
}

// EncryptNew encrypts x and returns the resulting ciphertext.
func (enc *Encryptor) EncryptNew(x []int64) (*Ciphertext, error) {
	ct := &Ciphertext{}
	if err := enc.Encrypt(x, ct); err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}
	return ct, nil
}

// Encrypt encrypts x into ct. The message dimension must match the Rows
// parameter.
func (enc *Encryptor) Encrypt(x []int64, ct *Ciphertext) error {

	if len(x) != enc.params.Rows() {
		return fmt.Errorf("cannot Encrypt: %w: message has dimension %d, parameters expect %d", ErrDimensionMismatch, len(x), enc.params.Rows())
	}

	if enc.sk != nil {
		return enc.encryptSk(x, ct)
	}

	return enc.encryptPk(x, ct)
}

// encryptSk solves Value*c = 2^LogScale*(w*x) + 2^(LogScale-16)*t for c,
// with t a fresh noise vector in [0, 2^15), and rounds the solution. The
// right-hand side is integral for any scale and the noise of the rounded
// ciphertext stays below (1 + n*w/2^16)/2.
func (enc *Encryptor) encryptSk(x []int64, ct *Ciphertext) error {

	sk := enc.sk
	logScale := uint(sk.LogScale)
	w := enc.params.Scale()

	rhs := mat.NewVector(len(x))
	for i := range x {
		rhs[i].SetInt64(x[i])
		rhs[i].Mul(rhs[i], w)
		rhs[i].Lsh(rhs[i], logScale)
	}

	// Integer keys admit no sub-integer noise term, the rounding of the
	// solution is the only noise source for them.
	if sk.LogScale >= noiseLogScale {
		t := enc.noiseSampler.ReadVectorNew(len(x))
		for i := range rhs {
			rhs[i].Add(rhs[i], t[i].Lsh(t[i], logScale-noiseLogScale))
		}
	}

	c, err := mat.SolveRound(sk.Value, rhs)
	if err != nil {
		return fmt.Errorf("cannot Encrypt: %w", ErrNonInvertibleKey)
	}

	ct.Value = c

	return nil
}

// encryptPk multiplies the public switching matrix with the signed bit
// decomposition of w*x, the trivial encryption of x under the identity
// key. The noise of the resulting ciphertext is bounded by m*LogBound.
func (enc *Encryptor) encryptPk(x []int64, ct *Ciphertext) error {

	w := enc.params.Scale()

	v := mat.NewVector(len(x))
	for i := range x {
		v[i].SetInt64(x[i])
		v[i].Mul(v[i], w)
	}

	bitLen := enc.pk.Value.BitLen
	if bits := v.MaxBitLen(); bits > bitLen {
		return fmt.Errorf("cannot Encrypt: scaled message bit length %d exceeds the public key bound %d", bits, bitLen)
	}

	ct.Value = enc.pk.Value.Value.MulVec(mat.BitDecompose(v, bitLen))

	return nil
}

package vhe

import (
	"fmt"
	"math/big"

	"github.com/nillab/homint/mat"
	"github.com/nillab/homint/utils"
	"github.com/nillab/homint/utils/sampling"
)

// Fixed-point layout of direct secret keys and of the fresh encryption
// noise: key coefficients are multiples of Scale/2^secretKeyLogBound held
// at scale 2^secretKeyLogScale, noise samples are multiples of
// 1/2^noiseLogScale in [0, 1/2).
const (
	secretKeyLogScale = 32
	secretKeyLogBound = 16
	noiseLogScale     = 16
	noiseLogBound     = 15
)

// targetBound bounds the coefficients of target matrices and of the
// masking matrix of switching keys. It only influences ciphertext growth,
// not correctness, since the masked term cancels exactly when decrypting.
const targetBound = 10

// KeyGenerator is a structure used to generate secret, public and
// switching keys. It reads its randomness from a PRNG that can be
// injected at instantiation.
type KeyGenerator struct {
	params        Parameters
	keySampler    *mat.UniformSampler
	targetSampler *mat.UniformSampler
	errorSampler  *mat.UniformSampler
}

// NewKeyGenerator instantiates a new [KeyGenerator]. An optional PRNG can be
// passed to make key generation deterministic; the default is the OS source.
func NewKeyGenerator(params Parameters, prng ...sampling.PRNG) *KeyGenerator {
	source := prngOrDefault(prng)
	return &KeyGenerator{
		params:        params,
		keySampler:    mat.NewUniformSampler(source, new(big.Int).Lsh(big.NewInt(1), secretKeyLogBound)),
		targetSampler: mat.NewUniformSampler(source, big.NewInt(targetBound)),
		errorSampler:  mat.NewUniformSampler(source, big.NewInt(2)),
	}
}

// GenSecretKeyNew generates a new direct [SecretKey]: an m x n fixed-point
// matrix with coefficients uniform in [0, Scale/2^16).
func (kgen *KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	value := kgen.keySampler.ReadNew(kgen.params.Rows(), kgen.params.Cols())
	return &SecretKey{
		Value:    value.MulScalar(kgen.params.Scale()),
		LogScale: secretKeyLogScale,
	}
}

// GenTargetMatrixNew generates a fresh m x 1 target matrix T with small
// uniform coefficients, defining the switched key [I | T].
func (kgen *KeyGenerator) GenTargetMatrixNew() *mat.Matrix {
	return kgen.targetSampler.ReadNew(kgen.params.Rows(), 1)
}

// GenSwitchingKeyNew generates a switching key from sk to the key [I | t],
// which is returned alongside it. The switching key decomposes ciphertext
// components into bitLen signed bits, so bitLen must be at least the bit
// length of any ciphertext the key will be applied to.
//
// The switching matrix is M = vstack(S* - t*A + E, A), with S* the
// powers-of-two expansion of sk, A a uniform masking matrix and E a binary
// noise matrix. The masked term cancels under the new key, [I | t]*M =
// S* + E, so switching adds at most n*bitLen noise plus, for a fixed-point
// sk, the rounding error of S*.
func (kgen *KeyGenerator) GenSwitchingKeyNew(sk *SecretKey, t *mat.Matrix, bitLen int) (swk *SwitchingKey, skNew *SecretKey, err error) {

	rows, cols := sk.Value.Rows(), sk.Value.Cols()

	if t.Rows() != rows {
		return nil, nil, fmt.Errorf("cannot GenSwitchingKeyNew: %w: target matrix has %d rows, key has %d", ErrDimensionMismatch, t.Rows(), rows)
	}

	if bitLen < 1 {
		return nil, nil, fmt.Errorf("cannot GenSwitchingKeyNew: decomposition length must be at least 1")
	}

	sStar := mat.BitExpand(sk.Value, bitLen, sk.LogScale)
	a := kgen.targetSampler.ReadNew(t.Cols(), cols*bitLen)
	e := kgen.errorSampler.ReadNew(rows, cols*bitLen)

	swk = &SwitchingKey{
		Value:  sStar.Sub(t.Mul(a)).Add(e).VStack(a),
		BitLen: bitLen,
	}

	skNew = &SecretKey{
		Value:    mat.NewIdentityMatrix(rows).HStack(t),
		LogScale: 0,
	}

	return
}

// SwitchKeyNew re-encrypts ct, decryptable under sk, under the fresh key
// [I | t] and returns the switched ciphertext alongside the new key. The
// decomposition length is derived from ct, so the switching key generated
// internally fits exactly this ciphertext.
func (kgen *KeyGenerator) SwitchKeyNew(ct *Ciphertext, sk *SecretKey, t *mat.Matrix) (*Ciphertext, *SecretKey, error) {

	if len(ct.Value) != sk.Value.Cols() {
		return nil, nil, fmt.Errorf("cannot SwitchKeyNew: %w: ciphertext has dimension %d, key expects %d", ErrDimensionMismatch, len(ct.Value), sk.Value.Cols())
	}

	swk, skNew, err := kgen.GenSwitchingKeyNew(sk, t, utils.Max(ct.Value.MaxBitLen(), 1))
	if err != nil {
		return nil, nil, fmt.Errorf("cannot SwitchKeyNew: %w", err)
	}

	ctNew, err := NewEvaluator().ApplySwitchingKeyNew(ct, swk)
	if err != nil {
		// Sanity check, the switching key fits ct by construction.
		panic(err)
	}

	return ctNew, skNew, nil
}

// GenKeyPairNew generates a secret key of the form [I | T] and the matching
// [PublicKey], a switching key from the identity key under which w*x is a
// trivial noiseless ciphertext. Encrypting under the public key adds at
// most m*LogBound noise.
func (kgen *KeyGenerator) GenKeyPairNew() (*SecretKey, *PublicKey) {

	identity := &SecretKey{Value: mat.NewIdentityMatrix(kgen.params.Rows()), LogScale: 0}

	swk, sk, err := kgen.GenSwitchingKeyNew(identity, kgen.GenTargetMatrixNew(), kgen.params.LogBound())
	if err != nil {
		// Sanity check, the identity key and a fresh target matrix always conform.
		panic(err)
	}

	return sk, &PublicKey{Value: swk}
}

func prngOrDefault(prng []sampling.PRNG) sampling.PRNG {
	if len(prng) > 0 && prng[0] != nil {
		return prng[0]
	}
	p, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot instantiate default PRNG: %w", err))
	}
	return p
}

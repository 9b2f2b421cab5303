package elgamal

import (
	"fmt"
	"math/big"

	"github.com/nillab/homint/utils/bignum"
	"github.com/nillab/homint/utils/sampling"
)

// KeyGenerator is a structure used to generate key pairs. It reads its
// randomness from a PRNG that can be injected at instantiation.
type KeyGenerator struct {
	params Parameters
	prng   sampling.PRNG
}

// NewKeyGenerator instantiates a new [KeyGenerator]. An optional PRNG can be
// passed to make key generation deterministic; the default is the OS source.
func NewKeyGenerator(params Parameters, prng ...sampling.PRNG) *KeyGenerator {
	return &KeyGenerator{params: params, prng: prngOrDefault(prng)}
}

// GenSecretKeyNew generates a new [SecretKey] with a uniform exponent in
// [2, p-2].
func (kgen *KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	return &SecretKey{X: kgen.randExponent()}
}

// GenPublicKeyNew generates a new [PublicKey] for the given [SecretKey],
// sampling a fresh generator g and setting y = g^x mod p.
func (kgen *KeyGenerator) GenPublicKeyNew(sk *SecretKey) (pk *PublicKey) {
	p := kgen.params.P()
	g := kgen.randExponent()
	return &PublicKey{P: p, G: g, Y: new(big.Int).Exp(g, sk.X, p)}
}

// GenKeyPairNew generates a new [SecretKey] and the matching [PublicKey].
func (kgen *KeyGenerator) GenKeyPairNew() (sk *SecretKey, pk *PublicKey) {
	sk = kgen.GenSecretKeyNew()
	return sk, kgen.GenPublicKeyNew(sk)
}

// randExponent samples a uniform value in [2, p-2].
func (kgen *KeyGenerator) randExponent() *big.Int {
	pm1 := new(big.Int).Sub(kgen.params.p, bignum.NewInt(1))
	return bignum.RandIntRange(kgen.prng, bignum.NewInt(2), pm1)
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

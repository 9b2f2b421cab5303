package rsa

import (
	"fmt"
	"math/big"

	"github.com/nillab/homint/utils/bignum"
)

// KeyGenerator is a structure used to derive key pairs from caller-supplied
// primes. Key generation is deterministic and uses no randomness.
type KeyGenerator struct {
}

// NewKeyGenerator instantiates a new [KeyGenerator].
func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{}
}

// GenKeyPairNew derives a key pair from the two primes p and q: n = p*q,
// e the smallest integer >= 2 coprime with phi = (p-1)*(q-1) and
// d = e^-1 mod phi. Primality of the inputs is the caller's responsibility
// and is not verified; the primes must however be distinct and at least 2.
func (kgen *KeyGenerator) GenKeyPairNew(p, q *big.Int) (sk *SecretKey, pk *PublicKey, err error) {

	two := bignum.NewInt(2)

	if p.Cmp(two) < 0 || q.Cmp(two) < 0 {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: primes must be at least 2")
	}
	if p.Cmp(q) == 0 {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: primes must be distinct")
	}

	n := new(big.Int).Mul(p, q)

	one := bignum.NewInt(1)
	phi := new(big.Int).Sub(p, one)
	phi.Mul(phi, new(big.Int).Sub(q, one))

	e := bignum.NewInt(2)
	for !bignum.Coprime(e, phi) {
		e.Add(e, one)
	}

	d, err := bignum.ModInverse(e, phi)
	if err != nil {
		// Sanity check: gcd(e, phi) = 1 by construction.
		panic(fmt.Errorf("cannot GenKeyPairNew: %w", err))
	}

	return &SecretKey{N: new(big.Int).Set(n), D: d}, &PublicKey{N: n, E: e}, nil
}

package paillier

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nillab/homint/utils/bignum"
)

// ErrPrimeLength is returned by GenKeyPairNew when the two primes do not
// have the same bit length. Unbalanced factors break the correctness of
// the decryption function.
var ErrPrimeLength = errors.New("primes must have equal bit length")

// KeyGenerator derives Paillier key pairs from user supplied primes. Key
// generation is deterministic, all randomness in the scheme lives in the
// encryption randomizer.
type KeyGenerator struct{}

// NewKeyGenerator instantiates a new KeyGenerator.
func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{}
}

// GenKeyPairNew derives a key pair from two distinct primes p and q of
// equal bit length. Primality of p and q is the caller's responsibility.
//
// The bit lengths are checked before anything is computed and a mismatch
// is reported as ErrPrimeLength. If lambda = (p-1)*(q-1) is not invertible
// modulo n the returned error wraps bignum.ErrNoInverse.
func (kgen *KeyGenerator) GenKeyPairNew(p, q *big.Int) (sk *SecretKey, pk *PublicKey, err error) {

	if bitP, bitQ := p.BitLen(), q.BitLen(); bitP != bitQ {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: %w: %d != %d", ErrPrimeLength, bitP, bitQ)
	}

	two := bignum.NewInt(2)
	if p.Cmp(two) < 0 || q.Cmp(two) < 0 {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: primes must be at least 2")
	}

	if p.Cmp(q) == 0 {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: primes must be distinct")
	}

	n := new(big.Int).Mul(p, q)
	g := new(big.Int).Add(n, bignum.NewInt(1))

	lambda := new(big.Int).Sub(p, bignum.NewInt(1))
	lambda.Mul(lambda, new(big.Int).Sub(q, bignum.NewInt(1)))

	mu, err := bignum.ModInverse(lambda, n)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: %w", err)
	}

	sk = &SecretKey{N: new(big.Int).Set(n), Lambda: lambda, Mu: mu}
	pk = &PublicKey{N: n, G: g}

	return
}

package paillier

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nillab/homint/utils/bignum"
	"github.com/nillab/homint/utils/sampling"
)

// maxRandomizerDraws bounds the rejection sampling loop that searches for
// a randomizer coprime with n. For an honestly generated modulus the
// acceptance probability per draw is overwhelming, so hitting the bound
// signals a malformed key rather than bad luck.
const maxRandomizerDraws = 128

// ErrRandomizerExhausted is returned by Encrypt when no randomizer
// coprime with n was found within maxRandomizerDraws draws.
var ErrRandomizerExhausted = errors.New("no randomizer coprime with n found")

// Encryptor encrypts integers in [0, n) under a Paillier public key.
type Encryptor struct {
	pk   *PublicKey
	n2   *big.Int
	prng sampling.PRNG
}

// NewEncryptor instantiates a new Encryptor for the given public key. An
// optional PRNG can be provided to make the encryption randomizer
// reproducible, by default a fresh cryptographically secure PRNG is used.
func NewEncryptor(pk *PublicKey, prng ...sampling.PRNG) *Encryptor {

	var source sampling.PRNG
	if len(prng) > 0 && prng[0] != nil {
		source = prng[0]
	} else {
		var err error
		if source, err = sampling.NewPRNG(); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
	}

	return &Encryptor{
		pk:   pk.CopyNew(),
		n2:   new(big.Int).Mul(pk.N, pk.N),
		prng: source,
	}
}

// EncryptNew encrypts m and returns the ciphertext c = g^m * r^n mod n^2,
// with r a fresh randomizer coprime with n.
func (enc *Encryptor) EncryptNew(m *big.Int) (*Ciphertext, error) {
	ct := NewCiphertext()
	if err := enc.Encrypt(m, ct); err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}
	return ct, nil
}

// Encrypt encrypts m into ct. The message must lie in [0, n).
func (enc *Encryptor) Encrypt(m *big.Int, ct *Ciphertext) error {

	if m.Sign() < 0 || m.Cmp(enc.pk.N) >= 0 {
		return fmt.Errorf("cannot Encrypt: message not in [0, n)")
	}

	r, err := drawRandomizer(enc.prng, enc.pk.N, maxRandomizerDraws)
	if err != nil {
		return fmt.Errorf("cannot Encrypt: %w", err)
	}

	c := new(big.Int).Exp(enc.pk.G, m, enc.n2)
	c.Mul(c, r.Exp(r, enc.pk.N, enc.n2))
	ct.Value = c.Mod(c, enc.n2)

	return nil
}

// drawRandomizer rejection-samples a uniform r in [0, n] until it finds
// one coprime with n, giving up after maxDraws attempts.
func drawRandomizer(prng sampling.PRNG, n *big.Int, maxDraws int) (*big.Int, error) {

	bound := new(big.Int).Add(n, bignum.NewInt(1))

	for i := 0; i < maxDraws; i++ {
		if r := bignum.RandInt(prng, bound); bignum.Coprime(r, n) {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w after %d draws", ErrRandomizerExhausted, maxDraws)
}

package elgamal

import (
	"fmt"
	"math/big"

	"github.com/nillab/homint/utils/bignum"
	"github.com/nillab/homint/utils/sampling"
)

// Encryptor is a structure used to encrypt integers in [0, p). It stores
// the public key.
type Encryptor struct {
	params Parameters
	pk     *PublicKey
	prng   sampling.PRNG
}

// NewEncryptor instantiates a new [Encryptor] for the given [PublicKey].
// An optional PRNG can be passed to make encryption deterministic.
func NewEncryptor(params Parameters, pk *PublicKey, prng ...sampling.PRNG) *Encryptor {
	// Sanity check
	if pk.P.Cmp(params.p) != 0 {
		panic(fmt.Errorf("cannot NewEncryptor: public key modulus does not match parameters"))
	}
	return &Encryptor{params: params, pk: pk.CopyNew(), prng: prngOrDefault(prng)}
}

// EncryptNew encrypts m and returns the result in a new [Ciphertext].
func (enc *Encryptor) EncryptNew(m *big.Int) (ct *Ciphertext, err error) {
	ct = NewCiphertext()
	if err = enc.Encrypt(m, ct); err != nil {
		return nil, err
	}
	return
}

// Encrypt encrypts m and writes the result in ct. The message must lie in
// [0, p).
func (enc *Encryptor) Encrypt(m *big.Int, ct *Ciphertext) (err error) {

	p := enc.params.p

	if m.Sign() < 0 || m.Cmp(p) >= 0 {
		return fmt.Errorf("cannot Encrypt: message not in [0, p)")
	}

	pm1 := new(big.Int).Sub(p, bignum.NewInt(1))
	k := bignum.RandIntRange(enc.prng, bignum.NewInt(2), pm1)

	ct.C0.Exp(enc.pk.G, k, p)
	ct.C1.Exp(enc.pk.Y, k, p)
	ct.C1.Mul(ct.C1, m)
	ct.C1.Mod(ct.C1, p)

	return
}

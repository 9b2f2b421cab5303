package elgamal

import (
	"math/big"

	"github.com/nillab/homint/utils/bignum"
)

// Decryptor is a structure used to decrypt [Ciphertext]. It stores the
// secret key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
	pm2    *big.Int
}

// NewDecryptor instantiates a new [Decryptor].
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	return &Decryptor{
		params: params,
		sk:     sk.CopyNew(),
		pm2:    new(big.Int).Sub(params.p, bignum.NewInt(2)),
	}
}

// DecryptNew decrypts ct and returns the message m = c1 * (c0^x)^(p-2)
// mod p. The inverse of c0^x is computed by Fermat exponentiation, which
// requires the modulus to be prime.
func (d *Decryptor) DecryptNew(ct *Ciphertext) (m *big.Int) {
	p := d.params.p
	s := new(big.Int).Exp(ct.C0, d.sk.X, p)
	s.Exp(s, d.pm2, p)
	m = s.Mul(s, ct.C1)
	return m.Mod(m, p)
}

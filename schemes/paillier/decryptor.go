package paillier

import (
	"math/big"
)

// Decryptor decrypts Paillier ciphertexts with a secret key.
type Decryptor struct {
	sk *SecretKey
	n2 *big.Int
}

// NewDecryptor instantiates a new Decryptor for the given secret key.
func NewDecryptor(sk *SecretKey) *Decryptor {
	return &Decryptor{
		sk: sk.CopyNew(),
		n2: new(big.Int).Mul(sk.N, sk.N),
	}
}

// DecryptNew decrypts ct and returns m = L(c^lambda mod n^2) * mu mod n,
// where L(u) = (u-1)/n. The division is exact because c^lambda = 1 mod n
// for any ciphertext in the group.
func (dec *Decryptor) DecryptNew(ct *Ciphertext) (m *big.Int) {

	u := new(big.Int).Exp(ct.Value, dec.sk.Lambda, dec.n2)
	u.Sub(u, new(big.Int).SetInt64(1))
	u.Quo(u, dec.sk.N)

	m = u.Mul(u, dec.sk.Mu)
	return m.Mod(m, dec.sk.N)
}

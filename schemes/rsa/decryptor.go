package rsa

import (
	"math/big"
)

// Decryptor is a structure used to decrypt [Ciphertext]. It stores the
// secret key.
type Decryptor struct {
	sk *SecretKey
}

// NewDecryptor instantiates a new [Decryptor].
func NewDecryptor(sk *SecretKey) *Decryptor {
	return &Decryptor{sk: sk.CopyNew()}
}

// DecryptNew decrypts ct and returns the message m = c^d mod n.
func (d *Decryptor) DecryptNew(ct *Ciphertext) (m *big.Int) {
	return new(big.Int).Exp(ct.Value, d.sk.D, d.sk.N)
}

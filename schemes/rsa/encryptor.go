package rsa

import (
	"fmt"
	"math/big"
)

// Encryptor is a structure used to encrypt integers in [0, n). It stores
// the public key. Encryption is deterministic.
type Encryptor struct {
	pk *PublicKey
}

// NewEncryptor instantiates a new [Encryptor] for the given [PublicKey].
func NewEncryptor(pk *PublicKey) *Encryptor {
	return &Encryptor{pk: pk.CopyNew()}
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
// [0, n).
func (enc *Encryptor) Encrypt(m *big.Int, ct *Ciphertext) (err error) {
	if m.Sign() < 0 || m.Cmp(enc.pk.N) >= 0 {
		return fmt.Errorf("cannot Encrypt: message not in [0, n)")
	}
	ct.Value.Exp(m, enc.pk.E, enc.pk.N)
	return
}

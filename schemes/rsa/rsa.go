// Package rsa implements the textbook multiplicatively homomorphic RSA
// cryptosystem over Z_n. A ciphertext c = m^e mod n encrypts m under the
// public key (n, e), and the product of two ciphertexts modulo n decrypts
// to the product of their plaintexts modulo n.
//
// Key generation is fully deterministic given the two primes: the public
// exponent is the smallest integer e >= 2 coprime with phi = (p-1)*(q-1),
// and d = e^-1 mod phi. Encryption is deterministic as well; the package
// is a homomorphic building block, not a secure encryption scheme.
package rsa

import (
	"math/big"
)

// PublicKey is an encryption key: the modulus n and the public exponent e.
type PublicKey struct {
	N, E *big.Int
}

// CopyNew returns a deep copy of pk.
func (pk *PublicKey) CopyNew() *PublicKey {
	return &PublicKey{N: new(big.Int).Set(pk.N), E: new(big.Int).Set(pk.E)}
}

// Equal returns true if pk and other hold the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.N.Cmp(other.N) == 0 && pk.E.Cmp(other.E) == 0
}

// SecretKey is a decryption key: the modulus n and the secret exponent d.
type SecretKey struct {
	N, D *big.Int
}

// CopyNew returns a deep copy of sk.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{N: new(big.Int).Set(sk.N), D: new(big.Int).Set(sk.D)}
}

// Equal returns true if sk and other hold the same key.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.N.Cmp(other.N) == 0 && sk.D.Cmp(other.D) == 0
}

// Ciphertext is an encryption of a single integer in [0, n).
type Ciphertext struct {
	Value *big.Int
}

// NewCiphertext allocates a zero ciphertext, for use with the in-place API.
func NewCiphertext() *Ciphertext {
	return &Ciphertext{Value: new(big.Int)}
}

// CopyNew returns a deep copy of ct.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Value: new(big.Int).Set(ct.Value)}
}

// Equal returns true if ct and other hold the same value.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.Value.Cmp(other.Value) == 0
}

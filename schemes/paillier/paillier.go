// Package paillier implements the additively homomorphic Paillier
// cryptosystem over Z_n^2 with the simplified generator g = n+1. A
// ciphertext c = g^m * r^n mod n^2 encrypts m under the public key (n, g),
// and the product of two ciphertexts modulo n^2 decrypts to the sum of
// their plaintexts modulo n. The identity g^m = 1 + m*n mod n^2 is what
// makes the additive property work.
package paillier

import (
	"math/big"
)

// PublicKey is an encryption key: the modulus n and the generator g = n+1.
type PublicKey struct {
	N, G *big.Int
}

// CopyNew returns a deep copy of pk.
func (pk *PublicKey) CopyNew() *PublicKey {
	return &PublicKey{N: new(big.Int).Set(pk.N), G: new(big.Int).Set(pk.G)}
}

// Equal returns true if pk and other hold the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.N.Cmp(other.N) == 0 && pk.G.Cmp(other.G) == 0
}

// SecretKey is a decryption key: the modulus n, lambda = (p-1)*(q-1) and
// mu = lambda^-1 mod n.
type SecretKey struct {
	N, Lambda, Mu *big.Int
}

// CopyNew returns a deep copy of sk.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{
		N:      new(big.Int).Set(sk.N),
		Lambda: new(big.Int).Set(sk.Lambda),
		Mu:     new(big.Int).Set(sk.Mu),
	}
}

// Equal returns true if sk and other hold the same key.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.N.Cmp(other.N) == 0 && sk.Lambda.Cmp(other.Lambda) == 0 && sk.Mu.Cmp(other.Mu) == 0
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

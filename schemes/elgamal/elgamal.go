// Package elgamal implements a multiplicatively homomorphic public-key
// cryptosystem over the multiplicative group of the integers modulo a prime
// p, in the style of ElGamal. A ciphertext (c0, c1) = (g^k mod p, y^k*m
// mod p) encrypts m under the public key (p, g, y = g^x mod p), and the
// componentwise product of two ciphertexts decrypts to the product of
// their plaintexts modulo p.
//
// The scheme is self-contained: decryption inverts c0^x by modular
// exponentiation (Fermat) instead of the extended-Euclid inverse used by
// the composite-modulus schemes.
package elgamal

import (
	"math/big"
)

// PublicKey is an encryption key: the modulus p, the generator g and
// y = g^x mod p for the secret exponent x.
type PublicKey struct {
	P, G, Y *big.Int
}

// CopyNew returns a deep copy of pk.
func (pk *PublicKey) CopyNew() *PublicKey {
	return &PublicKey{
		P: new(big.Int).Set(pk.P),
		G: new(big.Int).Set(pk.G),
		Y: new(big.Int).Set(pk.Y),
	}
}

// Equal returns true if pk and other hold the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.P.Cmp(other.P) == 0 && pk.G.Cmp(other.G) == 0 && pk.Y.Cmp(other.Y) == 0
}

// SecretKey is a decryption key: the secret exponent x.
type SecretKey struct {
	X *big.Int
}

// CopyNew returns a deep copy of sk.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{X: new(big.Int).Set(sk.X)}
}

// Equal returns true if sk and other hold the same key.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.X.Cmp(other.X) == 0
}

// Ciphertext is an encryption of a single integer in [0, p).
type Ciphertext struct {
	C0, C1 *big.Int
}

// NewCiphertext allocates a zero ciphertext, for use with the in-place API.
func NewCiphertext() *Ciphertext {
	return &Ciphertext{C0: new(big.Int), C1: new(big.Int)}
}

// CopyNew returns a deep copy of ct.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{C0: new(big.Int).Set(ct.C0), C1: new(big.Int).Set(ct.C1)}
}

// Equal returns true if ct and other hold the same values.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.C0.Cmp(other.C0) == 0 && ct.C1.Cmp(other.C1) == 0
}

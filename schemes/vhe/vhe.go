// Package vhe implements an additively homomorphic encryption scheme for
// integer vectors. A ciphertext c encrypts a vector x under a secret key
// S when S*c = w*x + e, with w a public scaling factor and e a noise
// vector. Decryption rounds S*c/w to the nearest integer and is correct
// while every noise component stays below w/2.
//
// Ciphertexts support addition, multiplication by an integer scalar and
// key switching. Key switching re-encrypts a ciphertext under a key of
// the form [I | T] without exposing either key, by multiplying the signed
// bit decomposition of the ciphertext with a public switching matrix. The
// noise grows by a bounded amount with every operation, so the number of
// operations a parameter set supports is set by the scale w.
//
// Secret keys are fixed-point matrices held as an integer matrix Value
// and a scale LogScale, representing S = Value/2^LogScale. Keys produced
// by key switching are integer matrices with LogScale zero. All
// ciphertext arithmetic is exact, only decryption rounds.
package vhe

import (
	"errors"

	"github.com/nillab/homint/mat"
)

var (
	// ErrDimensionMismatch is returned when the dimensions of two operands
	// are incompatible.
	ErrDimensionMismatch = errors.New("operand dimensions do not match")

	// ErrNonInvertibleKey is returned by the encryptor when the secret key
	// matrix is singular and no ciphertext can be derived from it.
	ErrNonInvertibleKey = errors.New("key matrix is not invertible")
)

// EncryptionKey is an interface implemented by keys under which one can
// encrypt, i.e. [SecretKey] and [PublicKey].
type EncryptionKey interface {
	isEncryptionKey()
}

// SecretKey is a decryption key: a fixed-point matrix S = Value/2^LogScale
// such that S*c = w*x + e for every ciphertext c encrypting x.
type SecretKey struct {
	Value    *mat.Matrix
	LogScale int
}

func (sk *SecretKey) isEncryptionKey() {}

// CopyNew returns a deep copy of sk.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{Value: sk.Value.CopyNew(), LogScale: sk.LogScale}
}

// Equal returns true if sk and other hold the same key.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.LogScale == other.LogScale && sk.Value.Equal(other.Value)
}

// SwitchingKey re-encrypts ciphertexts from one secret key to another. It
// holds the matrix applied to the signed bit decomposition of a
// ciphertext and the decomposition length BitLen, which must be at least
// the bit length of any ciphertext component the key is applied to.
type SwitchingKey struct {
	Value  *mat.Matrix
	BitLen int
}

// CopyNew returns a deep copy of swk.
func (swk *SwitchingKey) CopyNew() *SwitchingKey {
	return &SwitchingKey{Value: swk.Value.CopyNew(), BitLen: swk.BitLen}
}

// Equal returns true if swk and other hold the same key.
func (swk *SwitchingKey) Equal(other *SwitchingKey) bool {
	return swk.BitLen == other.BitLen && swk.Value.Equal(other.Value)
}

// PublicKey is an encryption key: a switching key from the identity key,
// under which w*x is a trivial noiseless ciphertext, to the secret key
// returned alongside it by the key generator.
type PublicKey struct {
	Value *SwitchingKey
}

func (pk *PublicKey) isEncryptionKey() {}

// CopyNew returns a deep copy of pk.
func (pk *PublicKey) CopyNew() *PublicKey {
	return &PublicKey{Value: pk.Value.CopyNew()}
}

// Equal returns true if pk and other hold the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.Value.Equal(other.Value)
}

// Ciphertext is an encryption of an integer vector. Its dimension depends
// on the key that produced it and changes under key switching.
type Ciphertext struct {
	Value mat.Vector
}

// NewCiphertext allocates a zero ciphertext of dimension n, for use with
// the in-place API.
func NewCiphertext(n int) *Ciphertext {
	return &Ciphertext{Value: mat.NewVector(n)}
}

// CopyNew returns a deep copy of ct.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Value: ct.Value.CopyNew()}
}

// Equal returns true if ct and other hold the same value.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.Value.Equal(other.Value)
}

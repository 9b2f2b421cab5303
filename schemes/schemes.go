// Package schemes contains the implemented cryptosystems.
//
// Each scheme is self-contained: parameters, keys, ciphertexts and
// operations live in the scheme's own package, and the homomorphic
// operations differ from scheme to scheme, so no cross-scheme interface
// is provided. Ciphertexts and keys of different schemes, or of different
// key pairs of the same scheme, are not interchangeable.
package schemes

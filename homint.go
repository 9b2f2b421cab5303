/*
Package homint provides pure Go implementations of partially homomorphic
encryption schemes over arbitrary-precision integers and integer vectors:
the multiplicatively homomorphic ElGamal and RSA cryptosystems, the
additively homomorphic Paillier cryptosystem, and a vector encryption
scheme supporting addition, scalar multiplication and linear
transformations through key switching.

The schemes are independent of each other and expose no common interface:
each lives in its own package under schemes/ with its own parameters,
keys and operations. The shared arithmetic lives in mat and utils/bignum.
*/
package homint

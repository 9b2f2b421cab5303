package rsa

// Evaluator is a structure used to perform homomorphic operations on
// ciphertexts. It stores the public key for the modulus.
type Evaluator struct {
	pk *PublicKey
}

// NewEvaluator instantiates a new [Evaluator].
func NewEvaluator(pk *PublicKey) *Evaluator {
	return &Evaluator{pk: pk.CopyNew()}
}

// MulNew multiplies ct0 with ct1 and returns the result in a new
// [Ciphertext]: the product reduced modulo n, which decrypts to the
// product of the two plaintexts modulo n.
func (eval *Evaluator) MulNew(ct0, ct1 *Ciphertext) (ct2 *Ciphertext) {
	ct2 = NewCiphertext()
	eval.Mul(ct0, ct1, ct2)
	return
}

// Mul multiplies ct0 with ct1 and writes the result in ct2.
func (eval *Evaluator) Mul(ct0, ct1, ct2 *Ciphertext) {
	ct2.Value.Mul(ct0.Value, ct1.Value)
	ct2.Value.Mod(ct2.Value, eval.pk.N)
}

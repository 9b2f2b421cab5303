package elgamal

// Evaluator is a structure used to perform homomorphic operations on
// ciphertexts.
type Evaluator struct {
	params Parameters
}

// NewEvaluator instantiates a new [Evaluator].
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// MulNew multiplies ct0 with ct1 and returns the result in a new
// [Ciphertext]: the componentwise product reduced modulo p, which decrypts
// to the product of the two plaintexts modulo p.
func (eval *Evaluator) MulNew(ct0, ct1 *Ciphertext) (ct2 *Ciphertext) {
	ct2 = NewCiphertext()
	eval.Mul(ct0, ct1, ct2)
	return
}

// Mul multiplies ct0 with ct1 and writes the result in ct2.
func (eval *Evaluator) Mul(ct0, ct1, ct2 *Ciphertext) {
	p := eval.params.p
	ct2.C0.Mul(ct0.C0, ct1.C0)
	ct2.C0.Mod(ct2.C0, p)
	ct2.C1.Mul(ct0.C1, ct1.C1)
	ct2.C1.Mod(ct2.C1, p)
}

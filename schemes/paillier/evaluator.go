package paillier

import (
	"fmt"
	"math/big"
)

// Evaluator operates on Paillier ciphertexts. All operations are carried
// out modulo n^2 and act on the underlying plaintexts modulo n.
type Evaluator struct {
	pk *PublicKey
	n2 *big.Int
}

// NewEvaluator instantiates a new Evaluator for the given public key.
func NewEvaluator(pk *PublicKey) *Evaluator {
	return &Evaluator{
		pk: pk.CopyNew(),
		n2: new(big.Int).Mul(pk.N, pk.N),
	}
}

// AddNew multiplies op0 and op1 modulo n^2 and returns the result, an
// encryption of the sum of the two plaintexts modulo n.
func (eval *Evaluator) AddNew(op0, op1 *Ciphertext) (opOut *Ciphertext) {
	opOut = NewCiphertext()
	eval.Add(op0, op1, opOut)
	return
}

// Add multiplies op0 and op1 modulo n^2 and writes the result on opOut.
func (eval *Evaluator) Add(op0, op1 *Ciphertext, opOut *Ciphertext) {
	v := new(big.Int).Mul(op0.Value, op1.Value)
	opOut.Value = v.Mod(v, eval.n2)
}

// AddPlaintextNew multiplies op0 by g^k modulo n^2 and returns the
// result, an encryption of the plaintext increased by k modulo n. The
// scalar must be non-negative.
func (eval *Evaluator) AddPlaintextNew(op0 *Ciphertext, k *big.Int) (opOut *Ciphertext, err error) {
	opOut = NewCiphertext()
	if err = eval.AddPlaintext(op0, k, opOut); err != nil {
		return nil, fmt.Errorf("cannot AddPlaintextNew: %w", err)
	}
	return
}

// AddPlaintext multiplies op0 by g^k modulo n^2 and writes the result on
// opOut.
func (eval *Evaluator) AddPlaintext(op0 *Ciphertext, k *big.Int, opOut *Ciphertext) error {

	if k.Sign() < 0 {
		return fmt.Errorf("cannot AddPlaintext: scalar must be non-negative")
	}

	v := new(big.Int).Exp(eval.pk.G, k, eval.n2)
	v.Mul(v, op0.Value)
	opOut.Value = v.Mod(v, eval.n2)

	return nil
}

// MulScalarNew raises op0 to the power k modulo n^2 and returns the
// result, an encryption of the plaintext multiplied by k modulo n. The
// scalar must be non-negative.
func (eval *Evaluator) MulScalarNew(op0 *Ciphertext, k *big.Int) (opOut *Ciphertext, err error) {
	opOut = NewCiphertext()
	if err = eval.MulScalar(op0, k, opOut); err != nil {
		return nil, fmt.Errorf("cannot MulScalarNew: %w", err)
	}
	return
}

// MulScalar raises op0 to the power k modulo n^2 and writes the result on
// opOut.
func (eval *Evaluator) MulScalar(op0 *Ciphertext, k *big.Int, opOut *Ciphertext) error {

	if k.Sign() < 0 {
		return fmt.Errorf("cannot MulScalar: scalar must be non-negative")
	}

	opOut.Value = new(big.Int).Exp(op0.Value, k, eval.n2)

	return nil
}

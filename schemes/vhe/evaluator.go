package vhe

import (
	"fmt"
	"math/big"

	"github.com/nillab/homint/mat"
)

// Evaluator operates on vector ciphertexts. Additions and scalar
// multiplications act componentwise on ciphertexts of equal dimension,
// key switching changes the dimension along with the key.
type Evaluator struct{}

// NewEvaluator instantiates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// AddNew adds op0 and op1 componentwise and returns the result, an
// encryption of the sum of the two plaintexts. The noise of the result is
// the sum of the operand noises.
func (eval *Evaluator) AddNew(op0, op1 *Ciphertext) (*Ciphertext, error) {
	opOut := &Ciphertext{}
	if err := eval.Add(op0, op1, opOut); err != nil {
		return nil, fmt.Errorf("cannot AddNew: %w", err)
	}
	return opOut, nil
}

// Add adds op0 and op1 componentwise and writes the result on opOut.
func (eval *Evaluator) Add(op0, op1, opOut *Ciphertext) error {

	if len(op0.Value) != len(op1.Value) {
		return fmt.Errorf("cannot Add: %w: %d != %d", ErrDimensionMismatch, len(op0.Value), len(op1.Value))
	}

	opOut.Value = op0.Value.Add(op1.Value)

	return nil
}

// MulScalarNew multiplies op0 by the integer k and returns the result, an
// encryption of k*x. The noise of the result scales with |k|.
func (eval *Evaluator) MulScalarNew(op0 *Ciphertext, k *big.Int) (opOut *Ciphertext) {
	return &Ciphertext{Value: op0.Value.MulScalar(k)}
}

// MulScalar multiplies op0 by the integer k and writes the result on opOut.
func (eval *Evaluator) MulScalar(op0 *Ciphertext, k *big.Int, opOut *Ciphertext) {
	opOut.Value = op0.Value.MulScalar(k)
}

// ApplySwitchingKeyNew re-encrypts op0 under the key swk switches to and
// returns the result.
func (eval *Evaluator) ApplySwitchingKeyNew(op0 *Ciphertext, swk *SwitchingKey) (*Ciphertext, error) {
	opOut := &Ciphertext{}
	if err := eval.ApplySwitchingKey(op0, swk, opOut); err != nil {
		return nil, fmt.Errorf("cannot ApplySwitchingKeyNew: %w", err)
	}
	return opOut, nil
}

// ApplySwitchingKey multiplies the switching matrix with the signed bit
// decomposition of op0 and writes the result on opOut. Every component of
// op0 must fit in the decomposition length of swk.
func (eval *Evaluator) ApplySwitchingKey(op0 *Ciphertext, swk *SwitchingKey, opOut *Ciphertext) error {

	if swk.Value.Cols() != len(op0.Value)*swk.BitLen {
		return fmt.Errorf("cannot ApplySwitchingKey: %w: switching key expects %d decomposed components, ciphertext gives %d", ErrDimensionMismatch, swk.Value.Cols(), len(op0.Value)*swk.BitLen)
	}

	if bits := op0.Value.MaxBitLen(); bits > swk.BitLen {
		return fmt.Errorf("cannot ApplySwitchingKey: ciphertext bit length %d exceeds the decomposition bound %d", bits, swk.BitLen)
	}

	opOut.Value = swk.Value.MulVec(mat.BitDecompose(op0.Value, swk.BitLen))

	return nil
}

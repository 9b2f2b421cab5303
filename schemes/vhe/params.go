package vhe

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"
)

// ParametersLiteral is a literal representation of scheme parameters. It has
// exported fields and is used to express unchecked user-defined parameters
// literally into Go programs. The [NewParametersFromLiteral] function is used
// to generate the actual checked parameters from the literal representation.
type ParametersLiteral struct {
	// Rows is the plaintext dimension m.
	Rows int
	// Cols is the dimension n of ciphertexts under a direct secret key.
	Cols int
	// Scale is the plaintext scaling factor w. Decryption is correct while
	// the noise of a ciphertext stays below Scale/2.
	Scale int
	// LogBound is the decomposition length of the public encryption key.
	// Public key encryption accepts messages whose scaled components
	// Scale*x fit in LogBound bits. The default value is 32.
	LogBound int
}

// Parameters represents a parameter set for the scheme. Its fields are
// checked at instantiation and are read-only.
type Parameters struct {
	rows, cols int
	scale      *big.Int
	logBound   int
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a
// [ParametersLiteral] specification.
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters, err error) {

	if paramDef.Rows < 1 || paramDef.Cols < 1 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: dimensions must be at least 1")
	}

	if paramDef.Scale < 2 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: scale must be at least 2")
	}

	logBound := paramDef.LogBound
	switch {
	case logBound == 0:
		logBound = 32
	case logBound < 0:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: negative decomposition length")
	}

	return Parameters{
		rows:     paramDef.Rows,
		cols:     paramDef.Cols,
		scale:    big.NewInt(int64(paramDef.Scale)),
		logBound: logBound,
	}, nil
}

// Rows returns the plaintext dimension m.
func (p Parameters) Rows() int {
	return p.rows
}

// Cols returns the ciphertext dimension n under a direct secret key.
func (p Parameters) Cols() int {
	return p.cols
}

// Scale returns a copy of the scaling factor w.
func (p Parameters) Scale() *big.Int {
	return new(big.Int).Set(p.scale)
}

// LogBound returns the decomposition length of the public encryption key.
func (p Parameters) LogBound() int {
	return p.logBound
}

// ParametersLiteral returns the literal representation of the parameter set.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Rows:     p.rows,
		Cols:     p.cols,
		Scale:    int(p.scale.Int64()),
		LogBound: p.logBound,
	}
}

// Equal returns true if p and other hold the same parameters.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON implements json.Marshaler.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var paramsLit ParametersLiteral
	if err = json.Unmarshal(data, &paramsLit); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(paramsLit)
	return
}

package elgamal

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
	// P is the prime modulus, in base 10 or in base 16 with a "0x" prefix.
	// Primality is the caller's responsibility and is not verified.
	P string
}

// Parameters represents a parameter set for the scheme. Its fields are
// checked at instantiation and are read-only.
type Parameters struct {
	p *big.Int
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a
// [ParametersLiteral] specification.
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters, err error) {
	p, ok := new(big.Int).SetString(paramDef.P, 0)
	if !ok {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: invalid modulus %q", paramDef.P)
	}
	if p.Cmp(new(big.Int).SetInt64(5)) < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: modulus must be at least 5")
	}
	return Parameters{p: p}, nil
}

// P returns a copy of the modulus p.
func (p Parameters) P() *big.Int {
	return new(big.Int).Set(p.p)
}

// BitLen returns the bit length of the modulus.
func (p Parameters) BitLen() int {
	return p.p.BitLen()
}

// ParametersLiteral returns the literal representation of the parameter set.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{P: p.p.String()}
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

package bignum

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNoInverse is returned when an operand has no modular inverse, i.e.
// when it is not coprime with the modulus.
var ErrNoInverse = errors.New("no modular inverse")

// ExtendedGCD returns g = gcd(a, b) along with the Bezout coefficients
// x, y satisfying a*x + b*y = g. Inputs must be non-negative; the returned
// coefficients can be negative. ExtendedGCD(0, b) returns (b, 0, 1).
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {

	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	x0, x1 := NewInt(1), NewInt(0)
	y0, y1 := NewInt(0), NewInt(1)

	q, t := new(big.Int), new(big.Int)

	for r1.Sign() != 0 {
		q.Quo(r0, r1)
		t.Mul(q, r1)
		r0.Sub(r0, t)
		r0, r1 = r1, r0
		t.Mul(q, x1)
		x0.Sub(x0, t)
		x0, x1 = x1, x0
		t.Mul(q, y1)
		y0.Sub(y0, t)
		y0, y1 = y1, y0
	}

	return r0, x0, y0
}

// ModInverse returns the unique x in [0, m) such that a*x = 1 mod m.
// If gcd(a, m) != 1 no such x exists and an error wrapping [ErrNoInverse]
// is returned.
func ModInverse(a, m *big.Int) (x *big.Int, err error) {
	var g *big.Int
	g, x, _ = ExtendedGCD(new(big.Int).Mod(a, m), m)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("cannot ModInverse: %w: gcd(a, m) = %s", ErrNoInverse, g.String())
	}
	return x.Mod(x, m), nil
}

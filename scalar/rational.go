// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math/big"
	"strings"
)

// rationalField implements Field over exact rationals (*big.Rat).
// Every operation returns a freshly allocated *big.Rat and never mutates its
// operands. Callers still own the pointers they hold, so containers store
// and hand out Copy results only.
// A nil *big.Rat is read as zero.
type rationalField struct{}

// Rational returns the exact rational field.
//
// Behavior highlights:
//   - Pow accepts only integral exponents (p.IsInt()); others yield ErrUnsupportedExponent.
//   - Negative exponents invert the base first (ErrDivisionByZero for a zero base).
//   - Format uses RatString ("3", "-1/2"); Parse accepts anything big.Rat.SetString does
//     ("1/3", "0.25", "1e-3").
//
// Complexity: Pow is O(log p) big.Int multiplications; the rest are O(size of operands).
func Rational() Field[*big.Rat] { return rationalField{} }

func (rationalField) Name() string { return "rational" }

func (rationalField) Zero() *big.Rat { return new(big.Rat) }
func (rationalField) One() *big.Rat  { return big.NewRat(1, 1) }

func (rationalField) Copy(x *big.Rat) *big.Rat { return new(big.Rat).Set(ratOrZero(x)) }

func (rationalField) IsZero(x *big.Rat) bool { return x == nil || x.Sign() == 0 }

func (f rationalField) Equal(a, b *big.Rat) bool {
	return ratOrZero(a).Cmp(ratOrZero(b)) == 0
}

func (rationalField) Add(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(ratOrZero(a), ratOrZero(b))
}

func (rationalField) Mul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(ratOrZero(a), ratOrZero(b))
}

func (f rationalField) Div(a, b *big.Rat) (*big.Rat, error) {
	if f.IsZero(b) {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Quo(ratOrZero(a), b), nil
}

func (f rationalField) Pow(x, p *big.Rat) (*big.Rat, error) {
	p = ratOrZero(p)
	if !p.IsInt() {
		return nil, fmt.Errorf("rational.Pow(%s): %w", p.RatString(), ErrUnsupportedExponent)
	}
	base := ratOrZero(x)
	exp := new(big.Int).Set(p.Num())
	if exp.Sign() < 0 {
		if base.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		base = new(big.Rat).Inv(base)
		exp.Neg(exp)
	}
	num := new(big.Int).Exp(base.Num(), exp, nil)
	den := new(big.Int).Exp(base.Denom(), exp, nil)

	return new(big.Rat).SetFrac(num, den), nil
}

func (rationalField) Format(x *big.Rat) string { return ratOrZero(x).RatString() }

func (f rationalField) Parse(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, literalErrorf(f.Name(), s, nil)
	}

	return v, nil
}

// ratOrZero maps nil to a fresh zero so callers never dereference nil.
func ratOrZero(x *big.Rat) *big.Rat {
	if x == nil {
		return new(big.Rat)
	}

	return x
}

// SPDX-License-Identifier: MIT

package scalar

import (
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// integerField implements Field for every Go integer type.
// Arithmetic wraps on overflow exactly like the native operators.
type integerField[T constraints.Integer] struct {
	bits   int  // bit size of T
	signed bool // true for int*, false for uint*
}

// Integer returns the integer "field" for T.
//
// Behavior highlights:
//   - Div truncates toward zero (so 1/2 == 0).
//   - Pow uses square-and-multiply for p ≥ 0.
//   - Pow with p < 0 yields the truncated reciprocal power: 1 for x==1,
//     ±1 for x==-1 (by parity of p), 0 otherwise; x==0 is ErrDivisionByZero.
//
// Complexity: Pow is O(log p); all other methods O(1).
func Integer[T constraints.Integer]() Field[T] {
	var z T

	return integerField[T]{
		bits:   int(unsafe.Sizeof(z)) * 8,
		signed: ^z < 0, // all-ones is negative only for signed types
	}
}

func (f integerField[T]) Name() string {
	if f.signed {
		return "int" + strconv.Itoa(f.bits)
	}

	return "uint" + strconv.Itoa(f.bits)
}

func (integerField[T]) Zero() T             { return 0 }
func (integerField[T]) One() T              { return 1 }
func (integerField[T]) IsZero(x T) bool     { return x == 0 }
func (integerField[T]) Equal(a, b T) bool   { return a == b }
func (integerField[T]) Copy(x T) T          { return x }
func (integerField[T]) Add(a, b T) T        { return a + b }
func (integerField[T]) Mul(a, b T) T        { return a * b }
func (integerField[T]) minusOne() (m T)     { return ^m }
func (f integerField[T]) negative(x T) bool { return f.signed && x < 0 }

func (integerField[T]) Div(a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

func (f integerField[T]) Pow(x, p T) (T, error) {
	if f.negative(p) {
		switch {
		case x == 0:
			return 0, ErrDivisionByZero
		case x == 1:
			return 1, nil
		case x == f.minusOne():
			if p%2 == 0 {
				return 1, nil
			}

			return x, nil
		default:
			return 0, nil // |x| > 1: reciprocal truncates to zero
		}
	}

	var (
		result T = 1
		base     = x
	)
	for e := p; e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
	}

	return result, nil
}

func (f integerField[T]) Format(x T) string {
	if f.signed {
		return strconv.FormatInt(int64(x), 10)
	}

	return strconv.FormatUint(uint64(x), 10)
}

func (f integerField[T]) Parse(s string) (T, error) {
	s = strings.TrimSpace(s)
	if f.signed {
		v, err := strconv.ParseInt(s, 10, f.bits)
		if err != nil {
			return 0, literalErrorf(f.Name(), s, err)
		}

		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, f.bits)
	if err != nil {
		return 0, literalErrorf(f.Name(), s, err)
	}

	return T(v), nil
}

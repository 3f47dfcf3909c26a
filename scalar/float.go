// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// floatField implements Field for float32 and float64 with IEEE-754 semantics.
// bits is 32 or 64 and drives strconv formatting/parsing precision.
type floatField[T constraints.Float] struct {
	bits int // bit size of T (32 or 64)
}

// Float returns the IEEE floating-point field for T.
// Pow delegates to math.Pow; Div rejects an exact zero divisor instead of
// producing ±Inf so that diagonal inversion never stores infinities.
//
// Complexity: every method is O(1).
func Float[T constraints.Float]() Field[T] {
	var z T

	return floatField[T]{bits: int(unsafe.Sizeof(z)) * 8}
}

func (f floatField[T]) Name() string { return "float" + strconv.Itoa(f.bits) }

func (floatField[T]) Zero() T { return 0 }
func (floatField[T]) One() T  { return 1 }

// IsZero reports x == 0; -0 counts as zero, NaN does not.
func (floatField[T]) IsZero(x T) bool { return x == 0 }

func (floatField[T]) Equal(a, b T) bool { return a == b }
func (floatField[T]) Copy(x T) T        { return x }
func (floatField[T]) Add(a, b T) T      { return a + b }
func (floatField[T]) Mul(a, b T) T      { return a * b }

func (f floatField[T]) Div(a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

func (floatField[T]) Pow(x, p T) (T, error) {
	return T(math.Pow(float64(x), float64(p))), nil
}

func (f floatField[T]) Format(x T) string {
	return strconv.FormatFloat(float64(x), 'g', -1, f.bits)
}

func (f floatField[T]) Parse(s string) (T, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), f.bits)
	if err != nil {
		return 0, literalErrorf(f.Name(), s, err)
	}

	return T(v), nil
}

// SPDX-License-Identifier: MIT

package scalar

import (
	"math/cmplx"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// complexField implements Field for complex64 and complex128.
type complexField[T constraints.Complex] struct {
	bits int // 64 or 128
}

// Complex returns the complex field for T. Pow delegates to cmplx.Pow.
func Complex[T constraints.Complex]() Field[T] {
	var z T

	return complexField[T]{bits: int(unsafe.Sizeof(z)) * 8}
}

func (f complexField[T]) Name() string { return "complex" + strconv.Itoa(f.bits) }

func (complexField[T]) Zero() T           { return 0 }
func (complexField[T]) One() T            { return 1 }
func (complexField[T]) IsZero(x T) bool   { return x == 0 }
func (complexField[T]) Equal(a, b T) bool { return a == b }
func (complexField[T]) Copy(x T) T        { return x }
func (complexField[T]) Add(a, b T) T      { return a + b }
func (complexField[T]) Mul(a, b T) T      { return a * b }

func (complexField[T]) Div(a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

func (complexField[T]) Pow(x, p T) (T, error) {
	return T(cmplx.Pow(complex128(x), complex128(p))), nil
}

func (f complexField[T]) Format(x T) string {
	return strconv.FormatComplex(complex128(x), 'g', -1, f.bits)
}

func (f complexField[T]) Parse(s string) (T, error) {
	v, err := strconv.ParseComplex(strings.TrimSpace(s), f.bits)
	if err != nil {
		return 0, literalErrorf(f.Name(), s, err)
	}

	return T(v), nil
}

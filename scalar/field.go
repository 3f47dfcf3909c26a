// SPDX-License-Identifier: MIT

package scalar

// Field is the arithmetic contract a sparse container needs from its scalars.
//
// The name is borrowed from algebra for brevity; implementations only need to
// behave like a commutative ring with a (possibly partial) division and a
// power function. Integer truncating division is a valid Div.
//
// Contract:
//   - Zero is the additive identity and the implicit value of unstored slots.
//   - IsZero(x) must agree with Equal(x, Zero()).
//   - Add and Mul never fail and must not alias or mutate their operands.
//   - Div fails with ErrDivisionByZero when b is zero.
//   - Pow fails with ErrUnsupportedExponent when p is outside its domain.
//   - Parse(Format(x)) round-trips to a value Equal to x.
//   - Copy returns an independent value in canonical form: mutating the
//     argument afterwards must not affect the result. Containers copy on
//     every write and every read that hands a value out.
type Field[T any] interface {
	// Name is a short human-readable identifier ("float64", "rational", ...).
	Name() string

	Zero() T
	One() T
	IsZero(x T) bool
	Equal(a, b T) bool

	Add(a, b T) T
	Mul(a, b T) T
	Div(a, b T) (T, error)
	Pow(x, p T) (T, error)

	Copy(x T) T

	Format(x T) string
	Parse(s string) (T, error)
}

// Inverse returns One()/x in f.
// Complexity: one Div.
func Inverse[T any](f Field[T], x T) (T, error) {
	return f.Div(f.One(), x)
}

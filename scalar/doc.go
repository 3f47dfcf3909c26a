// SPDX-License-Identifier: MIT

// Package scalar defines the capability set that sparse containers require
// from their element type, and ships concrete implementations for the common
// numeric domains.
//
// What & Why:
//
//	Go operators cannot be abstracted over user-defined number types, so the
//	arithmetic a container needs (zero/one identities, equality, addition,
//	multiplication, division and exponentiation) is expressed as an explicit
//	Field[T] value that travels with every container. The same sparse kernels
//	then run unchanged over float64, int, complex128, *big.Rat or residues
//	modulo a prime.
//
// Provided fields:
//
//	Float[T]()    — float32/float64, IEEE semantics, math.Pow.
//	Integer[T]()  — any Go integer, truncating division, wrap-around overflow.
//	Complex[T]()  — complex64/complex128, cmplx.Pow.
//	Rational()    — exact *big.Rat arithmetic; integral exponents only.
//	Modular(p)    — uint64 residues modulo a prime p.
//
// Errors:
//
//	ErrDivisionByZero, ErrUnsupportedExponent and ErrInvalidLiteral are
//	returned (possibly wrapped) and must be matched with errors.Is.
package scalar

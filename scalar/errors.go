// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// Every message is prefixed with "scalar: ..." so it can be grepped in logs.
// Fields return these sentinels directly or wrapped with fmt.Errorf("...: %w");
// callers match them with errors.Is.

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Div (and by Pow with a negative
	// exponent) when the divisor is the field zero.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrUnsupportedExponent is returned by Pow when the field cannot raise a
	// value to the requested exponent (e.g. a non-integral rational).
	ErrUnsupportedExponent = errors.New("scalar: unsupported exponent")

	// ErrInvalidLiteral is returned by Parse when the text is not a valid
	// element of the field.
	ErrInvalidLiteral = errors.New("scalar: invalid literal")

	// ErrInvalidModulus is returned by ValidModulus for a modulus that is not a prime ≥ 2.
	ErrInvalidModulus = errors.New("scalar: modulus must be a prime >= 2")
)

// literalErrorf wraps ErrInvalidLiteral with the offending text and the field name.
func literalErrorf(field, s string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%s.Parse(%q): %w (%v)", field, s, ErrInvalidLiteral, cause)
	}

	return fmt.Errorf("%s.Parse(%q): %w", field, s, ErrInvalidLiteral)
}

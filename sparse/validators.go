// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for bounds, shape and structure checks.
//   - Validators return plain sentinels; call sites wrap them with context.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on success.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsela/scalar"
)

// validateField rejects a nil field.
func validateField[T any](f scalar.Field[T]) error {
	if f == nil {
		return ErrNilField
	}

	return nil
}

// validateBounds rejects negative extents. Zero is legal (empty container).
func validateBounds(extents ...int) error {
	for _, n := range extents {
		if n < 0 {
			return ErrInvalidDimensions
		}
	}

	return nil
}

// checkIndex enforces 0 ≤ i < n.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateSameSize is the Add/Dot guard for vectors.
func validateSameSize(a, b int) error {
	if a != b {
		return fmt.Errorf("%d vs %d: %w", a, b, ErrSizeMismatch)
	}

	return nil
}

// validateSameShape is the Add guard for matrices.
func validateSameShape(ar, ac, br, bc int) error {
	if ar != br || ac != bc {
		return fmt.Errorf("%dx%d vs %dx%d: %w", ar, ac, br, bc, ErrSizeMismatch)
	}

	return nil
}

// validateInner is the product guard: left inner extent must equal right inner extent.
func validateInner(left, right int) error {
	if left != right {
		return fmt.Errorf("inner %d vs %d: %w", left, right, ErrDimensionMismatch)
	}

	return nil
}

// validateSquare is the Power/DiagonalInverse guard.
func validateSquare(rows, cols int) error {
	if rows != cols {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrNonSquare)
	}

	return nil
}

// validateVectorPair checks both vector operands are non-nil.
func validateVectorPair[T any](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return ErrNilContainer
	}

	return nil
}

// validateMatrixPair checks both matrix operands are non-nil.
func validateMatrixPair[T any](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilContainer
	}

	return nil
}

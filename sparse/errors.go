// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All operations return these sentinels wrapped with call-site context
// ("Matrix.Mul: sparse: dimension mismatch"); tests and callers match them
// via errors.Is. No operation panics on user-triggered conditions.

package sparse

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> bounds/shape -> structural (square, diagonal) -> numeric (zero diagonal).

var (
	// ErrOutOfRange indicates a coordinate outside [0, bound) in some dimension.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrSizeMismatch indicates that an elementwise binary operation (Add, Dot)
	// received operands with different bounds.
	ErrSizeMismatch = errors.New("sparse: size mismatch")

	// ErrDimensionMismatch indicates incompatible inner dimensions in a
	// product: vector size vs. matrix rows, or a.Cols vs. b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that Power or DiagonalInverse was called on a
	// matrix with Rows != Cols.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrNonDiagonal signals that DiagonalInverse found a stored off-diagonal entry.
	ErrNonDiagonal = errors.New("sparse: matrix is not diagonal")

	// ErrZeroDiagonal signals a zero-valued stored diagonal entry during
	// DiagonalInverse. Unreachable while zeros are never stored; still checked.
	ErrZeroDiagonal = errors.New("sparse: zero diagonal element")

	// ErrInvalidDimensions indicates negative bounds at construction or Resize.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrNegativeExponent indicates Power was called with a negative exponent.
	ErrNegativeExponent = errors.New("sparse: exponent must be >= 0")

	// ErrNilField indicates a container was requested with a nil scalar.Field.
	ErrNilField = errors.New("sparse: nil field")

	// ErrNilContainer indicates a nil *Vector or *Matrix operand.
	ErrNilContainer = errors.New("sparse: nil container")

	// ErrRaggedDense indicates a dense grid whose rows have different lengths.
	ErrRaggedDense = errors.New("sparse: ragged dense input")

	// ErrInvalidProbability indicates a density outside [0, 1] in a random generator.
	ErrInvalidProbability = errors.New("sparse: probability must be in [0,1]")

	// ErrNeedRandSource indicates a random generator needs an RNG for 0 < p < 1.
	ErrNeedRandSource = errors.New("sparse: random source required")
)

// opErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// vectorErrorf wraps err with Vector method context and the offending index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// matrixErrorf wraps err with Matrix method context and coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

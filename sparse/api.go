// SPDX-License-Identifier: MIT
// Package sparse: float64 convenience facades.
//
// Purpose:
//   - Thin, intention-revealing entry points for the most common scalar type.
//   - Each facade delegates to the generic constructor; no logic is duplicated.

package sparse

import "github.com/katalvlaran/sparsela/scalar"

// Float64 is the shared float64 field used by the facades below.
var Float64 = scalar.Float[float64]()

// NewFloat64Vector returns an all-zero float64 vector of the given size.
func NewFloat64Vector(size int) (*Vector[float64], error) { return NewVector(Float64, size) }

// NewFloat64Matrix returns an all-zero float64 rows×cols matrix.
func NewFloat64Matrix(rows, cols int) (*Matrix[float64], error) {
	return NewMatrix(Float64, rows, cols)
}

// Float64Identity returns the n×n float64 identity.
func Float64Identity(n int) (*Matrix[float64], error) { return Identity(Float64, n) }

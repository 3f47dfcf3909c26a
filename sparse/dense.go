// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsela/scalar"
)

// ToDense materializes every slot, implicit zeros included.
// Complexity: O(size).
func (v *Vector[T]) ToDense() []T {
	out := make([]T, v.size)
	for i := range out {
		out[i] = v.field.Copy(v.get(i))
	}

	return out
}

// ToDense materializes the matrix as a row-major grid.
// Complexity: O(rows*cols).
func (m *Matrix[T]) ToDense() [][]T {
	out := make([][]T, m.rows)
	for i := range out {
		row := make([]T, m.cols)
		for j := range row {
			row[j] = m.field.Copy(m.get(i, j))
		}
		out[i] = row
	}

	return out
}

// VectorFromDense builds a vector of len(xs) storing only the non-zero values.
//
// Errors:
//   - ErrNilField.
//
// Complexity: O(len(xs)).
func VectorFromDense[T any](f scalar.Field[T], xs []T) (*Vector[T], error) {
	v, err := NewVector(f, len(xs))
	if err != nil {
		return nil, err
	}
	for i, x := range xs {
		v.put(i, x)
	}

	return v, nil
}

// MatrixFromDense builds a len(grid)×len(grid[0]) matrix storing only non-zero values.
// An empty grid yields a 0×0 matrix.
//
// Errors:
//   - ErrNilField, ErrRaggedDense when rows differ in length.
//
// Complexity: O(rows*cols).
func MatrixFromDense[T any](f scalar.Field[T], grid [][]T) (*Matrix[T], error) {
	rows, cols := len(grid), 0
	if rows > 0 {
		cols = len(grid[0])
	}
	m, err := NewMatrix(f, rows, cols)
	if err != nil {
		return nil, err
	}
	for i, row := range grid {
		if len(row) != cols {
			return nil, opErrorf("MatrixFromDense", fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), cols, ErrRaggedDense))
		}
		for j, x := range row {
			m.put(i, j, x)
		}
	}

	return m, nil
}

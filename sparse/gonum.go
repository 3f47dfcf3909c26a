// SPDX-License-Identifier: MIT
// Package sparse - interop with gonum/mat for float64 matrices.
//
// Purpose:
//   - Hand sparse data to gonum routines without copying (AsGonum view).
//   - Materialize to/from *mat.Dense when a dense algorithm is needed.

package sparse

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsela/scalar"
)

// gonumView adapts a float64 sparse matrix to gonum's read-only mat.Matrix.
type gonumView struct {
	m *Matrix[float64]
}

// Compile-time assertion: the view satisfies mat.Matrix.
var _ mat.Matrix = gonumView{}

// AsGonum returns a zero-copy mat.Matrix view of m. Reads reflect later
// mutations of m. Following gonum's convention, At panics with
// mat.ErrIndexOutOfRange on a bad index.
//
// Complexity: O(1) to build; At is O(1) expected.
func AsGonum(m *Matrix[float64]) mat.Matrix { return gonumView{m: m} }

func (v gonumView) Dims() (r, c int) { return v.m.rows, v.m.cols }

func (v gonumView) At(i, j int) float64 {
	x, err := v.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return x
}

func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrInvalidDimensions when m has a zero extent (gonum has no empty Dense).
//
// Complexity: O(rows*cols) allocation + O(nnz) writes.
func ToGonum(m *Matrix[float64]) (*mat.Dense, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, matrixErrorf("ToGonum", m.rows, m.cols, ErrInvalidDimensions)
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for idx, x := range m.data {
		d.Set(idx.Row, idx.Col, x)
	}

	return d, nil
}

// FromGonum copies any mat.Matrix into a float64 sparse matrix, keeping only non-zeros.
// Complexity: O(rows*cols).
func FromGonum(a mat.Matrix) *Matrix[float64] {
	r, c := a.Dims()
	m := newMatrixUnchecked(scalar.Float[float64](), r, c, 0)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.put(i, j, a.At(i, j))
		}
	}

	return m
}

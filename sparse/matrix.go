// SPDX-License-Identifier: MIT

// Package sparse - Matrix storage & safe accessors.
//
// Purpose:
//   - Keep a map Index{Row,Col} → non-zero value plus declared (rows, cols).
//   - Mirror Vector's accessor contract in two dimensions.
//   - Provide deterministic row-major iteration over the unordered map.
//
// Complexity quicksheet:
//   - NewMatrix/Identity: O(1)/O(n); At/Set/AddAt: O(1) expected;
//     Resize: O(nnz); Entries/Do: O(nnz log nnz); String: O(rows*cols).

package sparse

import (
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/sparsela/scalar"
)

// _fmtRowClose terminates a row in Matrix.String.
const _fmtRowClose = "]\n"

// Matrix is a two-dimensional sparse container.
//   - rows, cols are the declared bounds.
//   - data holds only non-zero values at in-bound coordinates.
type Matrix[T any] struct {
	field scalar.Field[T] // element arithmetic
	rows  int             // declared row bound (>= 0)
	cols  int             // declared column bound (>= 0)
	data  map[Index]T     // (row, col) → non-zero value
}

// NewMatrix creates an all-zero rows×cols matrix.
//
// Inputs:
//   - f: scalar field (non-nil).
//   - rows, cols: bounds ≥ 0 (0×0 is the default "empty" matrix).
//
// Errors:
//   - ErrNilField, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewMatrix[T any](f scalar.Field[T], rows, cols int) (*Matrix[T], error) {
	if err := validateField(f); err != nil {
		return nil, opErrorf(ctxNewMatrix, err)
	}
	if err := validateBounds(rows, cols); err != nil {
		return nil, opErrorf(ctxNewMatrix, err)
	}

	return newMatrixUnchecked(f, rows, cols, 0), nil
}

// newMatrixUnchecked builds a matrix for internal kernels whose inputs were validated.
func newMatrixUnchecked[T any](f scalar.Field[T], rows, cols, hint int) *Matrix[T] {
	return &Matrix[T]{field: f, rows: rows, cols: cols, data: make(map[Index]T, hint)}
}

// Identity returns the n×n matrix with exactly the n diagonal entries set to
// f.One() and nothing else stored.
//
// Errors:
//   - ErrNilField, ErrInvalidDimensions (n < 0).
//
// Complexity:
//   - Time O(n), Space O(n).
func Identity[T any](f scalar.Field[T], n int) (*Matrix[T], error) {
	if err := validateField(f); err != nil {
		return nil, opErrorf(ctxIdentity, err)
	}
	if err := validateBounds(n); err != nil {
		return nil, opErrorf(ctxIdentity, err)
	}

	return identityUnchecked(f, n), nil
}

func identityUnchecked[T any](f scalar.Field[T], n int) *Matrix[T] {
	id := newMatrixUnchecked(f, n, n, n)
	for i := 0; i < n; i++ {
		id.put(i, i, f.One())
	}

	return id
}

// Rows returns the declared row bound. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the declared column bound. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored (non-zero) entries.
func (m *Matrix[T]) NNZ() int { return len(m.data) }

// Field returns the scalar field of the matrix.
func (m *Matrix[T]) Field() scalar.Field[T] { return m.field }

// IsSquare reports Rows() == Cols().
func (m *Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// IsDiagonal reports whether every stored entry lies on row == col.
// A non-square matrix can still be "diagonal" in this structural sense.
// Complexity: O(nnz).
func (m *Matrix[T]) IsDiagonal() bool {
	for idx := range m.data {
		if idx.Row != idx.Col {
			return false
		}
	}

	return true
}

// Resize sets the bounds to rows×cols and evicts every entry outside them.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is negative (matrix untouched).
//
// Complexity:
//   - Time O(nnz) when shrinking in either dimension, O(1) otherwise.
func (m *Matrix[T]) Resize(rows, cols int) error {
	if err := validateBounds(rows, cols); err != nil {
		return matrixErrorf(ctxResize, rows, cols, err)
	}
	if rows < m.rows || cols < m.cols {
		for idx := range m.data {
			if idx.Row >= rows || idx.Col >= cols {
				delete(m.data, idx)
			}
		}
	}
	m.rows, m.cols = rows, cols

	return nil
}

// checkCoord enforces 0 ≤ row < rows and 0 ≤ col < cols.
func (m *Matrix[T]) checkCoord(row, col int) error {
	if err := checkIndex(row, m.rows); err != nil {
		return err
	}

	return checkIndex(col, m.cols)
}

// At returns the value at (row, col), or the field zero when unstored.
//
// Errors:
//   - ErrOutOfRange when either coordinate is outside its bound.
//
// Complexity:
//   - Time O(1) expected.
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := m.checkCoord(row, col); err != nil {
		return m.field.Zero(), matrixErrorf(ctxAt, row, col, err)
	}

	return m.field.Copy(m.get(row, col)), nil
}

// Set writes x at (row, col); writing zero erases the slot.
//
// Errors:
//   - ErrOutOfRange when either coordinate is outside its bound.
func (m *Matrix[T]) Set(row, col int, x T) error {
	if err := m.checkCoord(row, col); err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.put(row, col, x)

	return nil
}

// AddAt accumulates x into (row, col), erasing the slot if the sum is zero.
//
// Errors:
//   - ErrOutOfRange when either coordinate is outside its bound.
func (m *Matrix[T]) AddAt(row, col int, x T) error {
	if err := m.checkCoord(row, col); err != nil {
		return matrixErrorf(ctxAddAt, row, col, err)
	}
	m.put(row, col, m.field.Add(m.get(row, col), x))

	return nil
}

func (m *Matrix[T]) get(row, col int) T {
	if x, ok := m.data[Index{Row: row, Col: col}]; ok {
		return x
	}

	return m.field.Zero()
}

// put is the single canonicalizing write path for matrices; it stores a private copy.
func (m *Matrix[T]) put(row, col int, x T) {
	idx := Index{Row: row, Col: col}
	x = m.field.Copy(x)
	if m.field.IsZero(x) {
		delete(m.data, idx)
		return
	}
	m.data[idx] = x
}

// indices returns the stored coordinates in row-major order.
func (m *Matrix[T]) indices() []Index {
	return slices.SortedFunc(maps.Keys(m.data), compareIndex)
}

// rowBuckets groups stored entries by row; each bucket is sorted by column.
// Complexity: O(nnz log nnz).
func (m *Matrix[T]) rowBuckets() map[int][]Entry[T] {
	buckets := make(map[int][]Entry[T])
	for _, idx := range m.indices() {
		buckets[idx.Row] = append(buckets[idx.Row], Entry[T]{Row: idx.Row, Col: idx.Col, Value: m.data[idx]})
	}

	return buckets
}

// Clone returns an independent copy (same field, bounds and entries).
// Complexity: O(nnz).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := newMatrixUnchecked(m.field, m.rows, m.cols, len(m.data))
	for idx, x := range m.data {
		out.data[idx] = m.field.Copy(x)
	}

	return out
}

// Do visits stored entries in row-major order; stops when fn returns false.
// fn must not mutate the matrix.
func (m *Matrix[T]) Do(fn func(row, col int, x T) bool) {
	for _, idx := range m.indices() {
		if !fn(idx.Row, idx.Col, m.field.Copy(m.data[idx])) {
			return
		}
	}
}

// Entries returns the stored entries in row-major order.
func (m *Matrix[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, len(m.data))
	m.Do(func(row, col int, x T) bool {
		out = append(out, Entry[T]{Row: row, Col: col, Value: x})
		return true
	})

	return out
}

// Row returns row r as a new vector of size Cols().
//
// Errors:
//   - ErrOutOfRange when r is outside [0, Rows()).
//
// Complexity: O(nnz).
func (m *Matrix[T]) Row(r int) (*Vector[T], error) {
	if err := checkIndex(r, m.rows); err != nil {
		return nil, matrixErrorf(ctxRow, r, 0, err)
	}
	out := newVectorUnchecked(m.field, m.cols, 0)
	for idx, x := range m.data {
		if idx.Row == r {
			out.data[idx.Col] = m.field.Copy(x)
		}
	}

	return out, nil
}

// Col returns column c as a new vector of size Rows().
//
// Errors:
//   - ErrOutOfRange when c is outside [0, Cols()).
//
// Complexity: O(nnz).
func (m *Matrix[T]) Col(c int) (*Vector[T], error) {
	if err := checkIndex(c, m.cols); err != nil {
		return nil, matrixErrorf(ctxCol, 0, c, err)
	}
	out := newVectorUnchecked(m.field, m.rows, 0)
	for idx, x := range m.data {
		if idx.Col == c {
			out.data[idx.Row] = m.field.Copy(x)
		}
	}

	return out, nil
}

// Equal reports whether o has the same bounds and the same stored entries.
// Complexity: O(nnz).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || len(m.data) != len(o.data) {
		return false
	}
	for idx, x := range m.data {
		y, ok := o.data[idx]
		if !ok || !m.field.Equal(x, y) {
			return false
		}
	}

	return true
}

// String renders every row on its own line, implicit zeros included:
// "[1, 0]\n[0, 2]\n". Diagnostics only; O(rows*cols).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString(_fmtOpen)
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.field.Format(m.get(i, j)))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

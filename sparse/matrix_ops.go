// SPDX-License-Identifier: MIT
// Package sparse - Matrix algebra over stored entries.
//
// Purpose:
//   - Transpose, Add, Mul, MulVec, Power and DiagonalInverse as pure kernels
//     returning freshly allocated matrices.
//   - Scale, AddScalar and PowElements as in-place kernels.
//
// Notes:
//   - Products are joins over stored entries, never dense triple loops: work is
//     driven by nnz, not by rows*cols*inner.
//   - Every kernel validates first and only then allocates, so errors never
//     leave partial results behind.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsela/scalar"
)

// Operation tags for matrix error wrapping (no magic strings at call sites).
const (
	opMatAdd             = "Matrix.Add"
	opMatMul             = "Matrix.Mul"
	opMatMulVec          = "Matrix.MulVec"
	opMatPower           = "Matrix.Power"
	opMatDiagonalInverse = "Matrix.DiagonalInverse"
)

// Transpose returns mᵀ: bounds swapped and every stored (r, c, x) moved to (c, r, x).
// The receiver is never mutated.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := newMatrixUnchecked(m.field, m.cols, m.rows, len(m.data))
	for idx, x := range m.data {
		out.data[Index{Row: idx.Col, Col: idx.Row}] = m.field.Copy(x) // already non-zero
	}

	return out
}

// Scale multiplies every stored entry by s in place; zero products are erased.
//
// Complexity:
//   - Time O(nnz), Space O(1).
func (m *Matrix[T]) Scale(s T) {
	for idx, x := range m.data {
		m.put(idx.Row, idx.Col, m.field.Mul(x, s))
	}
}

// AddScalar adds s to EVERY coordinate of the rows×cols domain in place:
// each (r, c) becomes At(r,c)+s, stored when non-zero and erased when zero.
//
// Behavior highlights:
//   - Unlike Vector.AddScalar, implicit zeros are included, so a non-zero s
//     densifies the matrix (every slot that was zero becomes s).
//
// Complexity:
//   - Time O(rows*cols) by construction, Space O(rows*cols) in the worst case.
func (m *Matrix[T]) AddScalar(s T) {
	var r, c int
	for r = 0; r < m.rows; r++ {
		for c = 0; c < m.cols; c++ {
			m.put(r, c, m.field.Add(m.get(r, c), s))
		}
	}
}

// PowElements raises every stored entry to p in place (implicit zeros are untouched).
// All-or-nothing: on a field error the matrix is unchanged.
//
// Errors:
//   - Field Pow errors, wrapped with the failing coordinate.
//
// Complexity:
//   - Time O(nnz log nnz), Space O(nnz).
func (m *Matrix[T]) PowElements(p T) error {
	next := make(map[Index]T, len(m.data))
	for _, idx := range m.indices() {
		y, err := m.field.Pow(m.data[idx], p)
		if err != nil {
			return matrixErrorf(ctxPowElements, idx.Row, idx.Col, err)
		}
		if !m.field.IsZero(y) {
			next[idx] = y
		}
	}
	m.data = next

	return nil
}

// Add returns m + o: union of stored entries, coinciding coordinates summed,
// zero sums omitted.
//
// Errors:
//   - ErrNilContainer, ErrSizeMismatch when shapes differ.
//
// Complexity:
//   - Time O(nnz(m) + nnz(o) log nnz(o)), Space O(nnz(m) + nnz(o)).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	if err := validateMatrixPair(m, o); err != nil {
		return nil, opErrorf(opMatAdd, err)
	}
	if err := validateSameShape(m.rows, m.cols, o.rows, o.cols); err != nil {
		return nil, opErrorf(opMatAdd, err)
	}

	out := m.Clone()
	for _, idx := range o.indices() {
		out.put(idx.Row, idx.Col, out.field.Add(out.get(idx.Row, idx.Col), o.data[idx]))
	}

	return out, nil
}

// Mul returns the product m·o with bounds (m.Rows(), o.Cols()).
//
// Implementation:
//   - Stage 1: validate m.Cols() == o.Rows().
//   - Stage 2: bucket o's stored entries by row k.
//   - Stage 3: for every stored (i, k, a) of m in row-major order, join with
//     bucket k and accumulate a·b into (i, j) for every stored (k, j, b).
//
// Behavior highlights:
//   - Sums that cancel to zero are erased as they happen.
//   - Fixed traversal order ⇒ bit-identical float results across runs.
//
// Errors:
//   - ErrNilContainer, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(nnz log nnz + Σ_(i,k)∈m |row_k(o)|), bounded by nnz(m)·nnz(o) in
//     the worst case (every entry of m meets every entry of o).
//   - Space O(nnz(o) + nnz(result)).
//
// AI-Hints:
//   - Multiply the sparser operand on the left when you have a choice of association.
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if err := validateMatrixPair(m, o); err != nil {
		return nil, opErrorf(opMatMul, err)
	}
	if err := validateInner(m.cols, o.rows); err != nil {
		return nil, opErrorf(opMatMul, err)
	}

	return mul(m, o), nil
}

// mul is the unchecked kernel behind Mul and Power.
func mul[T any](a, b *Matrix[T]) *Matrix[T] {
	f := a.field
	out := newMatrixUnchecked(f, a.rows, b.cols, 0)
	if len(a.data) == 0 || len(b.data) == 0 {
		return out
	}
	rowsOfB := b.rowBuckets()
	for _, idx := range a.indices() {
		bucket := rowsOfB[idx.Col]
		if len(bucket) == 0 {
			continue
		}
		av := a.data[idx]
		for _, e := range bucket {
			out.put(idx.Row, e.Col, f.Add(out.get(idx.Row, e.Col), f.Mul(av, e.Value)))
		}
	}

	return out
}

// MulVec returns the column-vector product m·x, of size Rows().
//
// Errors:
//   - ErrNilContainer, ErrDimensionMismatch (x.Size() != Cols()).
//
// Complexity:
//   - Time O(nnz(m) log nnz(m)), Space O(Rows() touched).
func (m *Matrix[T]) MulVec(x *Vector[T]) (*Vector[T], error) {
	if m == nil || x == nil {
		return nil, opErrorf(opMatMulVec, ErrNilContainer)
	}
	if err := validateInner(m.cols, x.size); err != nil {
		return nil, opErrorf(opMatMulVec, err)
	}

	out := newVectorUnchecked(m.field, m.rows, 0)
	if len(x.data) == 0 {
		return out, nil
	}
	for _, idx := range m.indices() {
		xv, ok := x.data[idx.Col]
		if !ok {
			continue
		}
		out.put(idx.Row, m.field.Add(out.get(idx.Row), m.field.Mul(m.data[idx], xv)))
	}

	return out, nil
}

// Power returns m^e by binary exponentiation (square-and-multiply).
//
// Implementation:
//   - Stage 1: require a square matrix and e ≥ 0.
//   - Stage 2: acc := I, base := m; while e > 0: if the low bit is set
//     acc = acc·base; base = base·base; e >>= 1.
//
// Behavior highlights:
//   - e == 0 returns the identity of the same size.
//   - O(log e) sparse products; the receiver is never mutated.
//
// Errors:
//   - ErrNilContainer, ErrNonSquare, ErrNegativeExponent (checked in that order).
//
// Complexity:
//   - Time O(log e · cost(Mul)), Space O(nnz of the largest intermediate).
func (m *Matrix[T]) Power(e int) (*Matrix[T], error) {
	if m == nil {
		return nil, opErrorf(opMatPower, ErrNilContainer)
	}
	if err := validateSquare(m.rows, m.cols); err != nil {
		return nil, opErrorf(opMatPower, err)
	}
	if e < 0 {
		return nil, opErrorf(opMatPower, fmt.Errorf("e=%d: %w", e, ErrNegativeExponent))
	}

	acc := identityUnchecked(m.field, m.rows)
	base := m.Clone()
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			acc = mul(acc, base)
		}
		base = mul(base, base)
	}

	return acc, nil
}

// DiagonalInverse returns the inverse of a diagonal matrix: every stored
// diagonal value d becomes One()/d; nothing else is stored.
//
// Implementation:
//   - Stage 1: require a square matrix.
//   - Stage 2: scan stored entries row-major; any row != col → ErrNonDiagonal.
//   - Stage 3: scan again; any zero value → ErrZeroDiagonal.
//   - Stage 4: build the result with scalar.Inverse.
//
// Behavior highlights:
//   - Diagonal slots that are not stored stay implicit zeros in the result
//     even though such a matrix is singular.
//   - A reciprocal the field rounds to zero (integer 1/2) is omitted.
//
// Errors:
//   - ErrNilContainer, ErrNonSquare, ErrNonDiagonal, ErrZeroDiagonal, field Div errors.
//
// Complexity:
//   - Time O(nnz log nnz), Space O(nnz).
func (m *Matrix[T]) DiagonalInverse() (*Matrix[T], error) {
	if m == nil {
		return nil, opErrorf(opMatDiagonalInverse, ErrNilContainer)
	}
	if err := validateSquare(m.rows, m.cols); err != nil {
		return nil, opErrorf(opMatDiagonalInverse, err)
	}
	order := m.indices()
	for _, idx := range order {
		if idx.Row != idx.Col {
			return nil, opErrorf(opMatDiagonalInverse,
				fmt.Errorf("entry (%d,%d): %w", idx.Row, idx.Col, ErrNonDiagonal))
		}
	}
	for _, idx := range order {
		if m.field.IsZero(m.data[idx]) {
			return nil, opErrorf(opMatDiagonalInverse,
				fmt.Errorf("entry (%d,%d): %w", idx.Row, idx.Col, ErrZeroDiagonal))
		}
	}

	out := newMatrixUnchecked(m.field, m.rows, m.cols, len(m.data))
	for _, idx := range order {
		inv, err := scalar.Inverse(m.field, m.data[idx])
		if err != nil {
			return nil, opErrorf(opMatDiagonalInverse, fmt.Errorf("entry (%d,%d): %w", idx.Row, idx.Col, err))
		}
		out.put(idx.Row, idx.Col, inv)
	}

	return out, nil
}

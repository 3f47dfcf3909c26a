// SPDX-License-Identifier: MIT
// Package sparse - Vector algebra.
//
// Purpose:
//   - In-place scalar kernels (AddScalar, Scale, PowElements) over stored entries.
//   - Pure binary kernels (Add, Dot, MulMatrix) returning fresh values.
//
// Notes:
//   - All kernels canonicalize through put(), so no zero is ever stored.
//   - Binary kernels walk operands in ascending index order for reproducible sums.

package sparse

// Operation tags for vector error wrapping.
const (
	opVecAdd       = "Vector.Add"
	opVecDot       = "Vector.Dot"
	opVecMulMatrix = "Vector.MulMatrix"
)

// AddScalar adds s to every STORED entry in place; entries whose sum is zero
// are erased. Implicit zeros are not touched; Matrix.AddScalar is the
// full-domain variant.
//
// Complexity:
//   - Time O(nnz), Space O(1).
func (v *Vector[T]) AddScalar(s T) {
	for i, x := range v.data {
		v.put(i, v.field.Add(x, s))
	}
}

// Scale multiplies every stored entry by s in place; zero products are erased.
// Scaling by the field zero therefore empties the vector.
//
// Complexity:
//   - Time O(nnz), Space O(1).
func (v *Vector[T]) Scale(s T) {
	for i, x := range v.data {
		v.put(i, v.field.Mul(x, s))
	}
}

// PowElements raises every stored entry to the power p in place using the
// field's Pow; zero results are erased and implicit zeros are not touched.
//
// Implementation:
//   - Stage 1: compute all powers into a scratch map.
//   - Stage 2: swap the scratch map in only if every Pow succeeded.
//
// Errors:
//   - Field Pow errors (e.g. scalar.ErrUnsupportedExponent), wrapped with the index.
//     On error the vector is unchanged.
//
// Complexity:
//   - Time O(nnz) Pow calls, Space O(nnz).
func (v *Vector[T]) PowElements(p T) error {
	next := make(map[int]T, len(v.data))
	for _, i := range v.indices() {
		y, err := v.field.Pow(v.data[i], p)
		if err != nil {
			return vectorErrorf(ctxPowElements, i, err)
		}
		if !v.field.IsZero(y) {
			next[i] = y
		}
	}
	v.data = next

	return nil
}

// Add returns v + o as a new vector: the union of both stored sets with
// coinciding coordinates summed; zero sums are omitted.
//
// Errors:
//   - ErrNilContainer, ErrSizeMismatch (Size() differs).
//
// Complexity:
//   - Time O(nnz(v) + nnz(o) log nnz(o)), Space O(nnz(v) + nnz(o)).
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	if err := validateVectorPair(v, o); err != nil {
		return nil, opErrorf(opVecAdd, err)
	}
	if err := validateSameSize(v.size, o.size); err != nil {
		return nil, opErrorf(opVecAdd, err)
	}

	out := v.Clone()
	for _, i := range o.indices() {
		out.put(i, out.field.Add(out.get(i), o.data[i]))
	}

	return out, nil
}

// Dot returns Σ v[i]·o[i] over the intersection of stored indices.
//
// Implementation:
//   - Stage 1: pick the operand with fewer stored entries as the driver.
//   - Stage 2: walk the driver in ascending index order and probe the other map.
//
// Behavior highlights:
//   - Work is bounded by O(min(nnz(v), nnz(o))) probes: a 3-entry vector dotted
//     with a million-entry one costs three lookups.
//   - The product is always formed as v-value × o-value, so the result does not
//     depend on which operand drives.
//
// Errors:
//   - ErrNilContainer, ErrSizeMismatch.
//
// Complexity:
//   - Time O(m log m) with m = min(nnz(v), nnz(o)), Space O(m).
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	if err := validateVectorPair(v, o); err != nil {
		return zeroOf(v, o), opErrorf(opVecDot, err)
	}
	if err := validateSameSize(v.size, o.size); err != nil {
		return v.field.Zero(), opErrorf(opVecDot, err)
	}

	driver, probe := v, o
	swapped := false
	if len(o.data) < len(v.data) {
		driver, probe = o, v
		swapped = true
	}

	acc := v.field.Zero()
	for _, i := range driver.indices() {
		y, ok := probe.data[i]
		if !ok {
			continue
		}
		x := driver.data[i]
		if swapped {
			x, y = y, x // keep v-value on the left
		}
		acc = v.field.Add(acc, v.field.Mul(x, y))
	}

	return acc, nil
}

// MulMatrix treats v as a row vector and returns v·m, of size m.Cols().
//
// Implementation:
//   - Stage 1: validate v.Size() == m.Rows().
//   - Stage 2: bucket m's stored entries by row (one pass, row-major order).
//   - Stage 3: for each stored (i, x) of v, join with the bucket of row i and
//     accumulate x·m[i,j] into result[j].
//
// Behavior highlights:
//   - Only stored pairs are ever multiplied; result slots that are never
//     written stay implicit zeros, and sums that cancel to zero are erased.
//
// Errors:
//   - ErrNilContainer, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(nnz(m) log nnz(m) + Σ_i∈v |row_i(m)|), Space O(nnz(m) + m.Cols() touched).
func (v *Vector[T]) MulMatrix(m *Matrix[T]) (*Vector[T], error) {
	if v == nil || m == nil {
		return nil, opErrorf(opVecMulMatrix, ErrNilContainer)
	}
	if err := validateInner(v.size, m.rows); err != nil {
		return nil, opErrorf(opVecMulMatrix, err)
	}

	out := newVectorUnchecked(v.field, m.cols, 0)
	if len(v.data) == 0 || len(m.data) == 0 {
		return out, nil
	}
	rows := m.rowBuckets()
	for _, i := range v.indices() {
		x := v.data[i]
		for _, e := range rows[i] {
			out.put(e.Col, v.field.Add(out.get(e.Col), v.field.Mul(x, e.Value)))
		}
	}

	return out, nil
}

// zeroOf returns the field zero of whichever operand is non-nil, or the Go zero value.
func zeroOf[T any](a, b *Vector[T]) T {
	switch {
	case a != nil:
		return a.field.Zero()
	case b != nil:
		return b.field.Zero()
	default:
		var z T
		return z
	}
}

// SPDX-License-Identifier: MIT

// Package sparse - Vector storage & safe accessors.
//
// Purpose:
//   - Keep a map index → non-zero value plus a declared size.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Canonicalize on every write: a zero result erases the slot.
//
// Complexity quicksheet:
//   - NewVector: O(1); At/Set/AddAt: O(1) expected; Resize: O(nnz);
//     Clone/Entries: O(nnz log nnz) for Entries (sorted), O(nnz) for Clone; String: O(size).

package sparse

import (
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/sparsela/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxAddAt       = "AddAt"
	ctxResize      = "Resize"
	ctxNewVector   = "NewVector"
	ctxNewMatrix   = "NewMatrix"
	ctxIdentity    = "Identity"
	ctxPowElements = "PowElements"
	ctxRow         = "Row"
	ctxCol         = "Col"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a one-dimensional sparse container.
//   - size is the declared bound; valid indices are [0, size).
//   - data holds only non-zero values at in-bound indices.
type Vector[T any] struct {
	field scalar.Field[T] // element arithmetic
	size  int             // declared bound (>= 0)
	data  map[int]T       // index → non-zero value
}

// NewVector creates an all-zero vector of the given size.
//
// Inputs:
//   - f: scalar field (non-nil).
//   - size: declared bound, ≥ 0 (0 is legal).
//
// Errors:
//   - ErrNilField, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(1), Space O(1): nothing is materialized.
func NewVector[T any](f scalar.Field[T], size int) (*Vector[T], error) {
	if err := validateField(f); err != nil {
		return nil, opErrorf(ctxNewVector, err)
	}
	if err := validateBounds(size); err != nil {
		return nil, opErrorf(ctxNewVector, err)
	}

	return &Vector[T]{field: f, size: size, data: make(map[int]T)}, nil
}

// newVectorUnchecked builds a vector for internal kernels whose inputs were validated.
func newVectorUnchecked[T any](f scalar.Field[T], size, hint int) *Vector[T] {
	return &Vector[T]{field: f, size: size, data: make(map[int]T, hint)}
}

// Size returns the declared bound.
func (v *Vector[T]) Size() int { return v.size }

// NNZ returns the number of stored (non-zero) entries.
func (v *Vector[T]) NNZ() int { return len(v.data) }

// Field returns the scalar field of the vector.
func (v *Vector[T]) Field() scalar.Field[T] { return v.field }

// Resize sets the bound to n and evicts every entry with index ≥ n.
// Growing never materializes anything.
//
// Errors:
//   - ErrInvalidDimensions for n < 0 (the vector is left untouched).
//
// Complexity:
//   - Time O(nnz) when shrinking, O(1) when growing.
func (v *Vector[T]) Resize(n int) error {
	if err := validateBounds(n); err != nil {
		return vectorErrorf(ctxResize, n, err)
	}
	if n < v.size {
		for i := range v.data {
			if i >= n {
				delete(v.data, i) // deleting during range is well-defined in Go
			}
		}
	}
	v.size = n

	return nil
}

// At returns the value at i: the stored value, or the field zero when unstored.
//
// Errors:
//   - ErrOutOfRange when i < 0 or i ≥ Size().
//
// Complexity:
//   - Time O(1) expected.
func (v *Vector[T]) At(i int) (T, error) {
	if err := checkIndex(i, v.size); err != nil {
		return v.field.Zero(), vectorErrorf(ctxAt, i, err)
	}

	return v.field.Copy(v.get(i)), nil
}

// Set writes x at i. Writing the field zero erases the slot, so the stored
// set never contains zeros.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Size()).
//
// Complexity:
//   - Time O(1) expected.
func (v *Vector[T]) Set(i int, x T) error {
	if err := checkIndex(i, v.size); err != nil {
		return vectorErrorf(ctxSet, i, err)
	}
	v.put(i, x)

	return nil
}

// AddAt accumulates x into slot i (slot += x), erasing the slot if the sum is zero.
// It is the read-modify-write form of Set.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Size()).
func (v *Vector[T]) AddAt(i int, x T) error {
	if err := checkIndex(i, v.size); err != nil {
		return vectorErrorf(ctxAddAt, i, err)
	}
	v.put(i, v.field.Add(v.get(i), x))

	return nil
}

// get reads slot i without bounds checks. The result may alias storage;
// internal kernels only pass it to non-mutating field operations.
func (v *Vector[T]) get(i int) T {
	if x, ok := v.data[i]; ok {
		return x
	}

	return v.field.Zero()
}

// put is the single canonicalizing write path: zero erases, non-zero stores a
// private copy, so later mutation of the caller's value cannot reach the vector.
func (v *Vector[T]) put(i int, x T) {
	x = v.field.Copy(x)
	if v.field.IsZero(x) {
		delete(v.data, i)
		return
	}
	v.data[i] = x
}

// indices returns stored indices in ascending order.
func (v *Vector[T]) indices() []int {
	return slices.Sorted(maps.Keys(v.data))
}

// Clone returns an independent copy with the same field, size and entries.
// Complexity: O(nnz).
func (v *Vector[T]) Clone() *Vector[T] {
	out := newVectorUnchecked(v.field, v.size, len(v.data))
	for i, x := range v.data {
		out.data[i] = v.field.Copy(x)
	}

	return out
}

// Do visits stored entries in ascending index order and stops early when fn returns false.
// fn must not mutate the vector.
// Complexity: O(nnz log nnz).
func (v *Vector[T]) Do(fn func(i int, x T) bool) {
	for _, i := range v.indices() {
		if !fn(i, v.field.Copy(v.data[i])) {
			return
		}
	}
}

// Entries returns the stored entries in ascending index order.
func (v *Vector[T]) Entries() []VectorEntry[T] {
	out := make([]VectorEntry[T], 0, len(v.data))
	v.Do(func(i int, x T) bool {
		out = append(out, VectorEntry[T]{Index: i, Value: x})
		return true
	})

	return out
}

// Equal reports whether o has the same size and the same stored entries
// (compared with the field's Equal).
// Complexity: O(nnz).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.size != o.size || len(v.data) != len(o.data) {
		return false
	}
	for i, x := range v.data {
		y, ok := o.data[i]
		if !ok || !v.field.Equal(x, y) {
			return false
		}
	}

	return true
}

// String renders all Size() slots, implicit zeros included: "[1, 0, 2]".
// Intended for diagnostics; O(size).
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < v.size; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(v.field.Format(v.get(i)))
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// SPDX-License-Identifier: MIT

package sparse

import "cmp"

// Index is a matrix coordinate. Equality is structural (both fields equal),
// which makes it directly usable as a map key.
type Index struct {
	Row int
	Col int
}

// compareIndex orders indices row-major: by Row, then by Col.
func compareIndex(a, b Index) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}

	return cmp.Compare(a.Col, b.Col)
}

// Entry is a stored matrix element, as reported by Matrix.Entries.
type Entry[T any] struct {
	Row   int
	Col   int
	Value T
}

// VectorEntry is a stored vector element, as reported by Vector.Entries.
type VectorEntry[T any] struct {
	Index int
	Value T
}

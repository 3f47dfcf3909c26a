// SPDX-License-Identifier: MIT

package sparse

// StoreRawForTest writes x at (row, col) bypassing the zero-erasing write path.
// Test-only: it lets black-box tests build states the public API forbids.
func StoreRawForTest[T any](m *Matrix[T], row, col int, x T) {
	m.data[Index{Row: row, Col: col}] = x
}

// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsela/sparse"
)

const (
	headerVector = "SparseVector: "
	headerMatrix = "SparseMatrix (%dx%d):\n"
)

// WriteVector writes every slot of v on one line, implicit zeros included.
// Complexity: O(size).
func WriteVector[T any](w io.Writer, v *sparse.Vector[T], opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	if o.header {
		bw.WriteString(headerVector)
	}
	f := v.Field()
	for i := 0; i < v.Size(); i++ {
		x, _ := v.At(i) // in range by construction
		bw.WriteString(f.Format(x))
		bw.WriteString(o.separator)
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// WriteMatrix writes every row of m on its own line, implicit zeros included.
// Complexity: O(rows*cols).
func WriteMatrix[T any](w io.Writer, m *sparse.Matrix[T], opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	if o.header {
		fmt.Fprintf(bw, headerMatrix, m.Rows(), m.Cols())
	}
	f := m.Field()
	var r, c int
	for r = 0; r < m.Rows(); r++ {
		for c = 0; c < m.Cols(); c++ {
			x, _ := m.At(r, c)
			bw.WriteString(f.Format(x))
			bw.WriteString(o.separator)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteVectorEntries writes v in the reader's input format: the size line,
// one "index value" line per stored entry in ascending order, then the sentinel.
// The output parses back to an equal vector.
// Complexity: O(nnz log nnz).
func WriteVectorEntries[T any](w io.Writer, v *sparse.Vector[T], opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	f := v.Field()
	fmt.Fprintf(bw, "%d\n", v.Size())
	v.Do(func(i int, x T) bool {
		fmt.Fprintf(bw, "%d %s\n", i, f.Format(x))
		return true
	})
	fmt.Fprintf(bw, "%d\n", o.vectorSentinel)

	return bw.Flush()
}

// WriteMatrixEntries writes m in the reader's input format: the "rows cols"
// line, one "row col value" line per stored entry in row-major order, then
// the sentinel line.
// Complexity: O(nnz log nnz).
func WriteMatrixEntries[T any](w io.Writer, m *sparse.Matrix[T], opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	f := m.Field()
	fmt.Fprintf(bw, "%d %d\n", m.Rows(), m.Cols())
	m.Do(func(r, c int, x T) bool {
		fmt.Fprintf(bw, "%d %d %s\n", r, c, f.Format(x))
		return true
	})
	fmt.Fprintf(bw, "%d %d %s\n", o.matrixSentinel, o.matrixSentinel, f.Format(f.Zero()))

	return bw.Flush()
}

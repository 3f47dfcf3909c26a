// SPDX-License-Identifier: MIT
// Package spy - plot construction and rendering.
//
// Implementation:
//   - Stage 1: map each stored (row, col) to (x=col, y=rows-1-row).
//   - Stage 2: one scatter with square glyphs; axes pinned to the matrix bounds
//     with half a cell of padding so edge markers are not clipped.
//
// Complexity:
//   - Time O(nnz log nnz) to collect points, plus rendering.

package spy

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/sparsela/sparse"
)

// ErrEmptyShape indicates a matrix with zero rows or zero columns.
var ErrEmptyShape = errors.New("spy: matrix has an empty dimension")

const cellPad = 0.5

// Plot builds the spy plot of m. An all-zero matrix yields empty axes.
//
// Errors:
//   - ErrEmptyShape when Rows() or Cols() is zero.
func Plot[T any](m *sparse.Matrix[T], opts ...Option) (*plot.Plot, error) {
	o := gatherOptions(opts...)
	rows, cols := m.Shape()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrEmptyShape)
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row (top = 0)"
	p.X.Min, p.X.Max = -cellPad, float64(cols)-cellPad
	p.Y.Min, p.Y.Max = -cellPad, float64(rows)-cellPad

	if m.NNZ() == 0 {
		return p, nil
	}
	pts := make(plotter.XYs, 0, m.NNZ())
	m.Do(func(r, c int, _ T) bool {
		pts = append(pts, plotter.XY{X: float64(c), Y: float64(rows - 1 - r)})
		return true
	})
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("spy: scatter: %w", err)
	}
	sc.GlyphStyle.Shape = draw.BoxGlyph{}
	sc.GlyphStyle.Radius = o.radius
	p.Add(sc)

	return p, nil
}

// Save renders the spy plot of m to path; the extension selects the format.
func Save[T any](m *sparse.Matrix[T], path string, opts ...Option) error {
	p, err := Plot(m, opts...)
	if err != nil {
		return err
	}
	o := gatherOptions(opts...)
	if err = p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("spy: save %s: %w", path, err)
	}

	return nil
}

// Write renders the spy plot of m to w in the named format ("png", "svg", ...).
func Write[T any](m *sparse.Matrix[T], w io.Writer, format string, opts ...Option) error {
	p, err := Plot(m, opts...)
	if err != nil {
		return err
	}
	o := gatherOptions(opts...)
	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return fmt.Errorf("spy: format %q: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("spy: write: %w", err)
	}

	return nil
}

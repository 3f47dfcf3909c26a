// SPDX-License-Identifier: MIT

// Package spy renders the sparsity pattern of a matrix: one marker per
// stored entry, row 0 at the top, columns left to right. Values are not
// drawn, only positions, so the plot works for any scalar field.
//
// Output goes through gonum/plot, so every format it supports (png, svg,
// pdf, eps, jpg, tiff) is available by file extension or format name.
package spy

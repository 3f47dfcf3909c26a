// SPDX-License-Identifier: MIT

// Package textio reads and writes sparse vectors and matrices in a small
// line-oriented text format suitable for interactive sessions and fixtures.
//
// Input format:
//
//	vector:  "<size>"           then "<index> <value>" lines, ended by "-1"
//	matrix:  "<rows> <cols>"    then "<row> <col> <value>" lines, ended by "-1 -1"
//
// The matrix terminator may carry a trailing value ("-1 -1 0"), which is
// ignored. Blank lines are skipped. Entry lines whose coordinates fall outside
// the declared bounds, or that do not parse, are reported through the reject
// handler (WithRejectHandler) and skipped; entry continues. Zero values are
// skipped and never stored. End of input after the header ends entry.
//
// Output format:
//
//	SparseVector: 1 0 2
//	SparseMatrix (2x2):
//	1 0
//	0 2
//
// Every element is followed by the separator, including the last one.
// Headers can be turned off with WithHeader(false).
//
// The package never logs; callers decide what to do with rejected lines.
package textio

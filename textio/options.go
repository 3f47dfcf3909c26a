// SPDX-License-Identifier: MIT

// Package textio: functional configuration for Reader and the writers.
//   - Option / Options with documented Default* constants.
//   - WithX constructors panic only on nonsensical values (programmer error).

package textio

import "io"

// Defaults (single source of truth).
const (
	// DefaultSeparator follows every written element.
	DefaultSeparator = " "

	// DefaultHeader prefixes output with "SparseVector: " / "SparseMatrix (RxC):".
	DefaultHeader = true

	// DefaultVectorSentinel ends vector entry when it appears as the index.
	DefaultVectorSentinel = -1

	// DefaultMatrixSentinel ends matrix entry when it appears as both row and col.
	DefaultMatrixSentinel = -1
)

const (
	panicSeparatorEmpty = "textio: WithSeparator: separator must be non-empty"
	panicSentinelValid  = "textio: sentinel must be negative so it can never be a valid coordinate"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective configuration; public entry points take ...Option.
type Options struct {
	separator      string
	header         bool
	prompts        io.Writer   // nil: silent
	onReject       func(error) // nil: drop silently
	vectorSentinel int
	matrixSentinel int
}

// WithSeparator sets the string written after every element.
// Panics if sep is empty.
func WithSeparator(sep string) Option {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *Options) { o.separator = sep }
}

// WithHeader toggles the "SparseVector: " / "SparseMatrix (RxC):" header.
func WithHeader(on bool) Option {
	return func(o *Options) { o.header = on }
}

// WithPrompts makes Reader write interactive prompts to w before each read.
// A nil w disables prompts.
func WithPrompts(w io.Writer) Option {
	return func(o *Options) { o.prompts = w }
}

// WithRejectHandler installs fn to receive every skipped entry line.
// Errors passed to fn wrap sparse.ErrOutOfRange or ErrMalformedLine.
func WithRejectHandler(fn func(error)) Option {
	return func(o *Options) { o.onReject = fn }
}

// WithVectorSentinel changes the index that terminates vector entry.
// Panics unless s < 0.
func WithVectorSentinel(s int) Option {
	if s >= 0 {
		panic(panicSentinelValid)
	}

	return func(o *Options) { o.vectorSentinel = s }
}

// WithMatrixSentinel changes the row/col pair value that terminates matrix entry.
// Panics unless s < 0.
func WithMatrixSentinel(s int) Option {
	if s >= 0 {
		panic(panicSentinelValid)
	}

	return func(o *Options) { o.matrixSentinel = s }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		separator:      DefaultSeparator,
		header:         DefaultHeader,
		vectorSentinel: DefaultVectorSentinel,
		matrixSentinel: DefaultMatrixSentinel,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// SPDX-License-Identifier: MIT
// Package textio - line reader for vectors, matrices and integers.
//
// Purpose:
//   - Parse the header strictly (a bad header is an error).
//   - Parse entry lines leniently: a bad entry line is rejected and skipped,
//     so one typo in an interactive session does not lose the whole container.

package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsela/scalar"
	"github.com/katalvlaran/sparsela/sparse"
)

// Prompts written when WithPrompts is set.
const (
	promptVectorHeader  = "Enter a sparse vector:\nNumber of elements: "
	promptVectorEntries = "Enter elements one per line as \"index value\".\nEnter %d to finish.\n"
	promptMatrixHeader  = "Enter a sparse matrix:\nNumber of rows and columns: "
	promptMatrixEntries = "Enter elements one per line as \"row col value\".\nEnter %d %d 0 to finish.\n"
)

// Reader decodes containers over field T from a line-oriented stream.
// It is not safe for concurrent use.
type Reader[T any] struct {
	sc    *bufio.Scanner
	field scalar.Field[T]
	opts  Options
	line  int // 1-based number of the last line consumed
}

// NewReader wraps r. Values are parsed with f.Parse.
func NewReader[T any](r io.Reader, f scalar.Field[T], opts ...Option) *Reader[T] {
	return &Reader[T]{
		sc:    bufio.NewScanner(r),
		field: f,
		opts:  gatherOptions(opts...),
	}
}

// Line returns the number of input lines consumed so far.
func (r *Reader[T]) Line() int { return r.line }

// ReadVector reads a size header followed by entry lines up to the sentinel or EOF.
//
// Errors:
//   - ErrUnexpectedEOF when the input ends before the header.
//   - ErrMalformedLine for a header that is not a single integer.
//   - sparse.ErrInvalidDimensions for a negative size.
//   - Scanner I/O errors.
func (r *Reader[T]) ReadVector() (*sparse.Vector[T], error) {
	r.prompt(promptVectorHeader)
	text, fields, err := r.next()
	if err != nil {
		return nil, err
	}
	if len(fields) != 1 {
		return nil, lineErrorf(r.line, text, ErrMalformedLine)
	}
	size, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, lineErrorf(r.line, text, fmt.Errorf("%w: %w", ErrMalformedLine, err))
	}
	v, err := sparse.NewVector(r.field, size)
	if err != nil {
		return nil, lineErrorf(r.line, text, err)
	}

	r.prompt(fmt.Sprintf(promptVectorEntries, r.opts.vectorSentinel))
	for {
		text, fields, err = r.next()
		if errors.Is(err, ErrUnexpectedEOF) {
			return v, nil
		}
		if err != nil {
			return nil, err
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			r.reject(text, fmt.Errorf("%w: %w", ErrMalformedLine, err))
			continue
		}
		if idx == r.opts.vectorSentinel {
			return v, nil
		}
		if len(fields) != 2 {
			r.reject(text, ErrMalformedLine)
			continue
		}
		x, err := r.field.Parse(fields[1])
		if err != nil {
			r.reject(text, fmt.Errorf("%w: %w", ErrMalformedLine, err))
			continue
		}
		if r.field.IsZero(x) {
			continue
		}
		if err = v.Set(idx, x); err != nil {
			r.reject(text, err)
		}
	}
}

// ReadMatrix reads a "rows cols" header followed by entry lines up to the
// sentinel pair or EOF.
//
// Errors:
//   - ErrUnexpectedEOF, ErrMalformedLine, sparse.ErrInvalidDimensions, I/O errors.
func (r *Reader[T]) ReadMatrix() (*sparse.Matrix[T], error) {
	r.prompt(promptMatrixHeader)
	text, fields, err := r.next()
	if err != nil {
		return nil, err
	}
	if len(fields) != 2 {
		return nil, lineErrorf(r.line, text, ErrMalformedLine)
	}
	rows, cols, err := atoi2(fields[0], fields[1])
	if err != nil {
		return nil, lineErrorf(r.line, text, fmt.Errorf("%w: %w", ErrMalformedLine, err))
	}
	m, err := sparse.NewMatrix(r.field, rows, cols)
	if err != nil {
		return nil, lineErrorf(r.line, text, err)
	}

	s := r.opts.matrixSentinel
	r.prompt(fmt.Sprintf(promptMatrixEntries, s, s))
	for {
		text, fields, err = r.next()
		if errors.Is(err, ErrUnexpectedEOF) {
			return m, nil
		}
		if err != nil {
			return nil, err
		}
		if len(fields) < 2 {
			r.reject(text, ErrMalformedLine)
			continue
		}
		row, col, err := atoi2(fields[0], fields[1])
		if err != nil {
			r.reject(text, fmt.Errorf("%w: %w", ErrMalformedLine, err))
			continue
		}
		if row == s && col == s {
			return m, nil // any trailing value is ignored
		}
		if len(fields) != 3 {
			r.reject(text, ErrMalformedLine)
			continue
		}
		x, err := r.field.Parse(fields[2])
		if err != nil {
			r.reject(text, fmt.Errorf("%w: %w", ErrMalformedLine, err))
			continue
		}
		if r.field.IsZero(x) {
			continue
		}
		if err = m.Set(row, col, x); err != nil {
			r.reject(text, err)
		}
	}
}

// ReadInt writes prompt (when prompts are enabled) and reads one integer line.
//
// Errors:
//   - ErrUnexpectedEOF, ErrMalformedLine, I/O errors.
func (r *Reader[T]) ReadInt(prompt string) (int, error) {
	r.prompt(prompt)
	text, fields, err := r.next()
	if err != nil {
		return 0, err
	}
	if len(fields) != 1 {
		return 0, lineErrorf(r.line, text, ErrMalformedLine)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, lineErrorf(r.line, text, fmt.Errorf("%w: %w", ErrMalformedLine, err))
	}

	return n, nil
}

// next returns the next non-blank line and its fields.
// End of input is reported as ErrUnexpectedEOF; callers inside entry loops treat it as "done".
func (r *Reader[T]) next() (string, []string, error) {
	for r.sc.Scan() {
		r.line++
		text := r.sc.Text()
		if fields := strings.Fields(text); len(fields) > 0 {
			return text, fields, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return "", nil, fmt.Errorf("textio: read: %w", err)
	}

	return "", nil, ErrUnexpectedEOF
}

func (r *Reader[T]) prompt(s string) {
	if r.opts.prompts != nil {
		_, _ = io.WriteString(r.opts.prompts, s)
	}
}

func (r *Reader[T]) reject(text string, err error) {
	if r.opts.onReject != nil {
		r.opts.onReject(lineErrorf(r.line, text, err))
	}
}

func atoi2(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

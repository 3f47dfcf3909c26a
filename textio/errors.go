// SPDX-License-Identifier: MIT

package textio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine indicates a line that does not match the expected shape.
	ErrMalformedLine = errors.New("textio: malformed line")

	// ErrUnexpectedEOF indicates the input ended before a required header or value.
	ErrUnexpectedEOF = errors.New("textio: unexpected end of input")
)

// lineErrorf wraps err with the 1-based input line number and its text.
func lineErrorf(line int, text string, err error) error {
	return fmt.Errorf("line %d %q: %w", line, text, err)
}

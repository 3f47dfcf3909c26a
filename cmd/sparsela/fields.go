// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsela/scalar"
	"github.com/katalvlaran/sparsela/textio"
)

// Field selector names accepted by --field.
const (
	fieldFloat64    = "float64"
	fieldInt64      = "int64"
	fieldComplex128 = "complex128"
	fieldRational   = "rational"
	fieldModular    = "mod"
)

var errUnknownField = errors.New("unknown field")

// action names the command body to run once the field is known.
type action int

const (
	actDemo action = iota
	actPower
	actInverse
	actSpy
)

// env carries I/O and per-command parameters into the generic bodies.
type env struct {
	in      io.Reader
	out     io.Writer
	logger  *log.Logger
	prompts bool

	exponent int    // power
	outPath  string // spy
	title    string // spy
}

// newEnv wires cmd's streams; the logger writes to cmd's stderr.
func newEnv(cmd *cobra.Command, gf *globalFlags) env {
	return env{
		in:      cmd.InOrStdin(),
		out:     cmd.OutOrStdout(),
		logger:  log.New(cmd.ErrOrStderr(), logPrefix, 0),
		prompts: gf.prompts,
	}
}

// reader builds a textio reader that logs skipped lines.
func reader[T any](f scalar.Field[T], e env) *textio.Reader[T] {
	opts := []textio.Option{
		textio.WithRejectHandler(func(err error) { e.logger.Printf("skipped input: %v", err) }),
	}
	if e.prompts {
		opts = append(opts, textio.WithPrompts(e.out))
	}

	return textio.NewReader(e.in, f, opts...)
}

// dispatch instantiates the selected field and runs act over it.
func dispatch(gf *globalFlags, act action, e env) error {
	switch gf.field {
	case fieldFloat64:
		return runAction(scalar.Float[float64](), act, e)
	case fieldInt64:
		return runAction(scalar.Integer[int64](), act, e)
	case fieldComplex128:
		return runAction(scalar.Complex[complex128](), act, e)
	case fieldRational:
		return runAction(scalar.Rational(), act, e)
	case fieldModular:
		if err := scalar.ValidModulus(gf.modulus); err != nil {
			return fmt.Errorf("--modulus: %w", err)
		}
		return runAction(scalar.Modular(gf.modulus), act, e)
	default:
		return fmt.Errorf("--field %q: %w", gf.field, errUnknownField)
	}
}

func runAction[T any](f scalar.Field[T], act action, e env) error {
	switch act {
	case actDemo:
		return runDemo(f, e)
	case actPower:
		return runPower(f, e)
	case actInverse:
		return runInverse(f, e)
	case actSpy:
		return runSpy(f, e)
	default:
		return fmt.Errorf("action %d not implemented", act)
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsela/scalar"
	"github.com/katalvlaran/sparsela/sparse"
	"github.com/katalvlaran/sparsela/spy"
	"github.com/katalvlaran/sparsela/textio"
)

const defaultDensity = 0.1

var errNeedOut = errors.New("--out is required")

func newPowerCmd(gf *globalFlags) *cobra.Command {
	var exp int
	cmd := &cobra.Command{
		Use:   "power",
		Short: "Raise a square matrix read from stdin to --exp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := newEnv(cmd, gf)
			e.exponent = exp
			return dispatch(gf, actPower, e)
		},
	}
	cmd.Flags().IntVarP(&exp, "exp", "e", 2, "non-negative exponent")

	return cmd
}

func runPower[T any](f scalar.Field[T], e env) error {
	m, err := reader(f, e).ReadMatrix()
	if err != nil {
		return err
	}
	p, err := m.Power(e.exponent)
	if err != nil {
		return err
	}

	return textio.WriteMatrix(e.out, p)
}

func newInverseCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse",
		Short: "Invert a diagonal matrix read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dispatch(gf, actInverse, newEnv(cmd, gf))
		},
	}
}

func runInverse[T any](f scalar.Field[T], e env) error {
	m, err := reader(f, e).ReadMatrix()
	if err != nil {
		return err
	}
	inv, err := m.DiagonalInverse()
	if err != nil {
		return err
	}

	return textio.WriteMatrix(e.out, inv)
}

func newSpyCmd(gf *globalFlags) *cobra.Command {
	var out, title string
	cmd := &cobra.Command{
		Use:   "spy",
		Short: "Plot the sparsity pattern of a matrix read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return errNeedOut
			}
			e := newEnv(cmd, gf)
			e.outPath, e.title = out, title
			return dispatch(gf, actSpy, e)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output image (required); the extension selects the format")
	cmd.Flags().StringVar(&title, "title", spy.DefaultTitle, "plot title")

	return cmd
}

func runSpy[T any](f scalar.Field[T], e env) error {
	m, err := reader(f, e).ReadMatrix()
	if err != nil {
		return err
	}
	if err = spy.Save(m, e.outPath, spy.WithTitle(e.title)); err != nil {
		return err
	}
	e.logger.Printf("wrote %s (%dx%d, %d stored)", e.outPath, m.Rows(), m.Cols(), m.NNZ())

	return nil
}

// newRandomCmd generates a float64 matrix; the --field flag does not apply.
func newRandomCmd() *cobra.Command {
	var (
		density float64
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "random <rows> <cols>",
		Short: "Print a random float64 sparse matrix in the input format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rows: %w", err)
			}
			cols, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("cols: %w", err)
			}
			rng := rand.New(rand.NewSource(seed))
			m, err := sparse.RandomMatrix(sparse.Float64, rows, cols, density, rng, sparse.UniformFloats(-1, 1))
			if err != nil {
				return err
			}

			return textio.WriteMatrixEntries(cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().Float64VarP(&density, "density", "d", defaultDensity, "probability that a cell is stored, in [0,1]")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 1, "random seed")

	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsela/scalar"
	"github.com/katalvlaran/sparsela/textio"
)

const promptExponent = "\nExponent for the matrix power: "

func newDemoCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive walk through vectors, products, transpose, sum, power and inverse",
		Long: `demo reads two vectors, prints their dot product, reads a matrix and
multiplies the first vector by it, prints the transpose, reads a second matrix
and prints the sum, then (for a square first matrix) reads an exponent and
prints the power and the diagonal inverse. Failed operations are logged and
the session continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dispatch(gf, actDemo, newEnv(cmd, gf))
		},
	}
}

// runDemo is the session body. Only unreadable input aborts it; algebra
// errors are logged and the next step runs.
func runDemo[T any](f scalar.Field[T], e env) error {
	r := reader(f, e)
	out := e.out

	fmt.Fprintln(out, "=== Sparse vector ===")
	v1, err := r.ReadVector()
	if err != nil {
		return fmt.Errorf("first vector: %w", err)
	}
	if err = textio.WriteVector(out, v1); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n=== Second sparse vector ===")
	v2, err := r.ReadVector()
	if err != nil {
		return fmt.Errorf("second vector: %w", err)
	}
	if err = textio.WriteVector(out, v2); err != nil {
		return err
	}
	if d, err := v1.Dot(v2); err != nil {
		e.logger.Printf("dot product: %v", err)
		fmt.Fprintln(out, "Vectors differ in size; the dot product is undefined.")
	} else {
		fmt.Fprintf(out, "Dot product: %s\n", f.Format(d))
	}

	fmt.Fprintln(out, "\n=== Vector × matrix ===")
	m, err := r.ReadMatrix()
	if err != nil {
		return fmt.Errorf("matrix: %w", err)
	}
	if err = textio.WriteMatrix(out, m); err != nil {
		return err
	}
	if vm, err := v1.MulMatrix(m); err != nil {
		e.logger.Printf("vector × matrix: %v", err)
	} else {
		fmt.Fprintln(out, "Vector × matrix:")
		if err = textio.WriteVector(out, vm); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "\n=== Transposed matrix ===")
	if err = textio.WriteMatrix(out, m.Transpose()); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n=== Second sparse matrix ===")
	m2, err := r.ReadMatrix()
	if err != nil {
		return fmt.Errorf("second matrix: %w", err)
	}
	if err = textio.WriteMatrix(out, m2); err != nil {
		return err
	}
	if sum, err := m.Add(m2); err != nil {
		e.logger.Printf("matrix sum: %v", err)
	} else {
		fmt.Fprintln(out, "\n=== Matrix sum ===")
		if err = textio.WriteMatrix(out, sum); err != nil {
			return err
		}
	}

	if !m.IsSquare() {
		fmt.Fprintln(out, "\nThe matrix is not square; power and inverse are skipped.")
		return nil
	}

	exp, err := r.ReadInt(promptExponent)
	if err != nil {
		return fmt.Errorf("exponent: %w", err)
	}
	if p, err := m.Power(exp); err != nil {
		e.logger.Printf("matrix power: %v", err)
	} else {
		fmt.Fprintf(out, "Matrix to the power %d:\n", exp)
		if err = textio.WriteMatrix(out, p); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "\n=== Diagonal inverse ===")
	inv, err := m.DiagonalInverse()
	if err != nil {
		e.logger.Printf("diagonal inverse: %v", err)
		return nil
	}
	fmt.Fprintln(out, "Inverse matrix:")

	return textio.WriteMatrix(out, inv)
}

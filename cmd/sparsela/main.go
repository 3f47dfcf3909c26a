// SPDX-License-Identifier: MIT

// Command sparsela exercises the sparse package from the command line:
// an interactive demo session plus one-shot power, inverse, random and spy
// commands. Containers are read in the textio line format from stdin.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

const logPrefix = "sparsela: "

// globalFlags are shared by every subcommand.
type globalFlags struct {
	field   string
	modulus uint64
	prompts bool
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:   "sparsela",
		Short: "Sparse vector and matrix toolkit",
		Long: `sparsela reads sparse vectors and matrices in a small line format
("size" then "index value" lines ended by -1; "rows cols" then "row col value"
lines ended by "-1 -1 0") and runs sparse algebra on them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&gf.field, "field", "f", fieldFloat64,
		"scalar field: float64, int64, complex128, rational or mod")
	root.PersistentFlags().Uint64VarP(&gf.modulus, "modulus", "p", 0, "prime modulus for --field mod")
	root.PersistentFlags().BoolVar(&gf.prompts, "prompts", false, "print interactive prompts while reading input")

	root.AddCommand(
		newDemoCmd(gf),
		newPowerCmd(gf),
		newInverseCmd(gf),
		newSpyCmd(gf),
		newRandomCmd(),
	)

	return root
}

func main() {
	log.SetPrefix(logPrefix)
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

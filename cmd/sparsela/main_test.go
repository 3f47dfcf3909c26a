// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsela/scalar"
	"github.com/katalvlaran/sparsela/sparse"
)

// execute runs the CLI with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

// demoInput mirrors a full interactive session with a square diagonal matrix.
const demoInput = `3
0 1
2 2
-1
3
0 3
1 5
-1
3 3
0 0 2
2 2 4
-1 -1 0
3 3
1 1 1
-1 -1 0
2
`

// TestDemoSession walks every step of the session.
func TestDemoSession(t *testing.T) {
	out, errOut, err := execute(t, demoInput, "demo")
	require.NoError(t, err)
	require.Empty(t, errOut)

	assert.Contains(t, out, "SparseVector: 1 0 2 \n")
	assert.Contains(t, out, "Dot product: 3\n")
	assert.Contains(t, out, "Vector × matrix:\nSparseVector: 2 0 8 \n")
	assert.Contains(t, out, "=== Matrix sum ===\nSparseMatrix (3x3):\n2 0 0 \n0 1 0 \n0 0 4 \n")
	assert.Contains(t, out, "Matrix to the power 2:\nSparseMatrix (3x3):\n4 0 0 \n0 0 0 \n0 0 16 \n")
	assert.Contains(t, out, "Inverse matrix:\nSparseMatrix (3x3):\n0.5 0 0 \n0 0 0 \n0 0 0.25 \n")
}

// TestDemoSessionRecoversFromErrors logs failed operations and keeps going.
func TestDemoSessionRecoversFromErrors(t *testing.T) {
	in := `2
0 1
-1
3
-1
3 2
0 1 1
5 5 9
-1 -1 0
2 2
-1 -1 0
`
	out, errOut, err := execute(t, in, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "Vectors differ in size")
	assert.Contains(t, out, "not square; power and inverse are skipped")
	assert.NotContains(t, out, "Matrix sum ===")

	assert.Contains(t, errOut, "sparsela: skipped input")
	assert.Contains(t, errOut, "dimension mismatch")
	assert.Contains(t, errOut, "size mismatch")
}

// TestDemoSessionNonDiagonal reports the inverse failure after printing the power.
func TestDemoSessionNonDiagonal(t *testing.T) {
	in := "1\n-1\n1\n-1\n2 2\n0 1 1\n-1 -1\n2 2\n-1 -1\n3\n"
	out, errOut, err := execute(t, in, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Matrix to the power 3:\nSparseMatrix (2x2):\n0 0 \n0 0 \n")
	assert.Contains(t, errOut, "not diagonal")
	assert.NotContains(t, out, "Inverse matrix:")
}

// TestDemoTruncatedInput aborts when a required header is missing.
func TestDemoTruncatedInput(t *testing.T) {
	_, _, err := execute(t, "2\n-1\n", "demo")
	require.ErrorContains(t, err, "second vector")
}

// TestDemoPrompts prints prompts into stdout.
func TestDemoPrompts(t *testing.T) {
	out, _, err := execute(t, demoInput, "demo", "--prompts")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter a sparse vector:")
	assert.Contains(t, out, "Exponent for the matrix power: ")
}

// TestPowerCommand raises a rational matrix.
func TestPowerCommand(t *testing.T) {
	out, _, err := execute(t, "2 2\n0 0 1/2\n1 1 3\n-1 -1 0\n", "power", "--field", "rational", "--exp", "3")
	require.NoError(t, err)
	require.Equal(t, "SparseMatrix (2x2):\n1/8 0 \n0 27 \n", out)
}

// TestPowerCommandErrors surfaces sparse sentinels.
func TestPowerCommandErrors(t *testing.T) {
	_, _, err := execute(t, "2 3\n-1 -1\n", "power")
	require.ErrorIs(t, err, sparse.ErrNonSquare)

	_, _, err = execute(t, "2 2\n-1 -1\n", "power", "--exp=-1")
	require.ErrorIs(t, err, sparse.ErrNegativeExponent)
}

// TestInverseCommandModular inverts over GF(11).
func TestInverseCommandModular(t *testing.T) {
	out, _, err := execute(t, "2 2\n0 0 2\n1 1 10\n-1 -1 0\n", "inverse", "--field", "mod", "--modulus", "11")
	require.NoError(t, err)
	require.Equal(t, "SparseMatrix (2x2):\n6 0 \n0 10 \n", out)
}

// TestFieldSelectionErrors rejects unknown fields and bad moduli.
func TestFieldSelectionErrors(t *testing.T) {
	_, _, err := execute(t, "", "inverse", "--field", "octonion")
	require.ErrorIs(t, err, errUnknownField)

	_, _, err = execute(t, "", "inverse", "--field", "mod", "--modulus", "12")
	require.ErrorIs(t, err, scalar.ErrInvalidModulus)
}

// TestRandomCommand is deterministic per seed and parses back.
func TestRandomCommand(t *testing.T) {
	a, _, err := execute(t, "", "random", "6", "4", "--seed", "9", "--density", "0.5")
	require.NoError(t, err)
	b, _, err := execute(t, "", "random", "6", "4", "--seed", "9", "--density", "0.5")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.True(t, strings.HasPrefix(a, "6 4\n"))
	require.True(t, strings.HasSuffix(a, "-1 -1 0\n"))

	out, _, err := execute(t, a, "power", "--exp", "0")
	require.ErrorIs(t, err, sparse.ErrNonSquare)
	require.Empty(t, out)

	_, _, err = execute(t, "", "random", "2", "2", "--density", "2")
	require.ErrorIs(t, err, sparse.ErrInvalidProbability)
}

// TestSpyCommand writes an image file.
func TestSpyCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.png")
	_, errOut, err := execute(t, "3 3\n0 0 1\n1 2 1\n-1 -1 0\n", "spy", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "wrote "+path)

	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, st.Size(), int64(0))

	_, _, err = execute(t, "1 1\n0 0 1\n-1 -1 0\n", "spy")
	require.ErrorIs(t, err, errNeedOut)
}

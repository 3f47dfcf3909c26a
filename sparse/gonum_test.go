// SPDX-License-Identifier: MIT
// Package sparse_test cross-checks sparse kernels against gonum's dense ones.
package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsela/sparse"
)

const gonumTol = 1e-9

func randFloatMatrix(t *testing.T, rng *rand.Rand, rows, cols int) *sparse.Matrix[float64] {
	t.Helper()
	m, err := sparse.RandomMatrix(sparse.Float64, rows, cols, 0.4, rng, sparse.UniformFloats(-1, 1))
	require.NoError(t, err)

	return m
}

// TestGonumMulAgrees compares Mul with mat.Dense.Mul.
func TestGonumMulAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		a := randFloatMatrix(t, rng, 5, 8)
		b := randFloatMatrix(t, rng, 8, 4)

		got, err := a.Mul(b)
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(sparse.AsGonum(a), sparse.AsGonum(b))
		require.True(t, mat.EqualApprox(sparse.AsGonum(got), &want, gonumTol))
	}
}

// TestGonumPowerAgrees compares Power with mat.Dense.Pow.
func TestGonumPowerAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := randFloatMatrix(t, rng, 6, 6)
	for _, e := range []int{0, 1, 2, 5, 9} {
		got, err := m.Power(e)
		require.NoError(t, err)

		var want mat.Dense
		want.Pow(sparse.AsGonum(m), e)
		require.True(t, mat.EqualApprox(sparse.AsGonum(got), &want, gonumTol), "e=%d", e)
	}
}

// TestGonumTransposeView checks the view's T() against Transpose.
func TestGonumTransposeView(t *testing.T) {
	m := newMat(t, 2, 3, 0, 2, 4, 1, 0, -1)
	require.True(t, mat.Equal(sparse.AsGonum(m).T(), sparse.AsGonum(m.Transpose())))
}

// TestToFromGonum round-trips through *mat.Dense.
func TestToFromGonum(t *testing.T) {
	m := newMat(t, 3, 2, 0, 0, 1, 2, 1, 5)
	d, err := sparse.ToGonum(m)
	require.NoError(t, err)
	require.Equal(t, 5.0, d.At(2, 1))

	back := sparse.FromGonum(d)
	require.True(t, back.Equal(m))
	require.Equal(t, 2, back.NNZ())

	_, err = sparse.ToGonum(newMat(t, 0, 3))
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

// TestGonumViewPanicsOutOfRange follows gonum's panic convention.
func TestGonumViewPanicsOutOfRange(t *testing.T) {
	v := sparse.AsGonum(newMat(t, 2, 2))
	require.PanicsWithValue(t, mat.ErrIndexOutOfRange, func() { v.At(2, 0) })
}

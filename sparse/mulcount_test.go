// SPDX-License-Identifier: MIT
// Package sparse_test: multiplication counts for the sparse kernels.
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsela/scalar"
	"github.com/katalvlaran/sparsela/sparse"
)

// countingField wraps the float64 field and counts Mul calls.
type countingField struct {
	scalar.Field[float64]
	muls *int
}

func (c countingField) Mul(a, b float64) float64 {
	*c.muls++
	return c.Field.Mul(a, b)
}

func newCounting() (countingField, *int) {
	n := new(int)
	return countingField{Field: scalar.Float[float64](), muls: n}, n
}

// TestDotMulCountFollowsSmallerOperand: the work is nnz(small) products
// whichever side the small vector is on.
func TestDotMulCountFollowsSmallerOperand(t *testing.T) {
	f, muls := newCounting()
	const n = 1000
	wide, err := sparse.NewVector[float64](f, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, wide.Set(i, float64(i+1)))
	}
	small, err := sparse.NewVector[float64](f, n)
	require.NoError(t, err)
	for _, i := range []int{3, 500, 999} {
		require.NoError(t, small.Set(i, 2))
	}

	*muls = 0
	d1, err := small.Dot(wide)
	require.NoError(t, err)
	require.Equal(t, small.NNZ(), *muls)

	*muls = 0
	d2, err := wide.Dot(small)
	require.NoError(t, err)
	require.Equal(t, small.NNZ(), *muls)

	require.Equal(t, 2.0*(4+501+1000), d1)
	require.Equal(t, d1, d2)
}

// TestMatrixMulDisjointInnerIndices: no stored column of a meets a stored
// row of b, so the product is empty and no multiplication happens.
func TestMatrixMulDisjointInnerIndices(t *testing.T) {
	f, muls := newCounting()
	a, err := sparse.NewMatrix[float64](f, 3, 3)
	require.NoError(t, err)
	b, err := sparse.NewMatrix[float64](f, 3, 3)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 1))
	require.NoError(t, a.Set(2, 0, 4))
	require.NoError(t, b.Set(1, 0, 2))
	require.NoError(t, b.Set(1, 2, 3))

	*muls = 0
	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Zero(t, *muls)
	require.Zero(t, p.NNZ())

	// one shared inner index costs one product per joined pair
	require.NoError(t, b.Set(0, 1, 5))
	*muls = 0
	p, err = a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, *muls)
	require.Equal(t, 2, p.NNZ())
}

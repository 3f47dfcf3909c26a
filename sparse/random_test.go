// SPDX-License-Identifier: MIT
// Package sparse_test contains tests for the random sparse generators.
package sparse_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsela/scalar"
	"github.com/katalvlaran/sparsela/sparse"
)

// TestRandomValidation covers probability domain and RNG requirement.
func TestRandomValidation(t *testing.T) {
	f := sparse.Float64
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := sparse.RandomMatrix(f, 2, 2, p, rand.New(rand.NewSource(1)), nil)
		require.ErrorIs(t, err, sparse.ErrInvalidProbability, "p=%v", p)
	}

	_, err := sparse.RandomMatrix(f, 2, 2, 0.5, nil, nil)
	require.ErrorIs(t, err, sparse.ErrNeedRandSource)
	_, err = sparse.RandomVector(f, 2, 0.5, nil, nil)
	require.ErrorIs(t, err, sparse.ErrNeedRandSource)

	_, err = sparse.RandomMatrix(f, -1, 2, 0, nil, nil)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

// TestRandomExtremes: p=0 is empty and p=1 is full, both without an RNG.
func TestRandomExtremes(t *testing.T) {
	f := scalar.Integer[int]()
	empty, err := sparse.RandomMatrix(f, 3, 4, 0, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.NNZ())

	full, err := sparse.RandomMatrix(f, 3, 4, 1, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 12, full.NNZ())
	x, err := full.At(2, 3)
	require.NoError(t, err)
	require.Equal(t, 1, x, "nil valueFn stores One()")

	vec, err := sparse.RandomVector(f, 5, 1, nil, sparse.UniformInts(4, 9))
	require.NoError(t, err)
	require.Equal(t, "[4, 4, 4, 4, 4]", vec.String())
}

// TestRandomDeterministic: equal seeds give equal matrices.
func TestRandomDeterministic(t *testing.T) {
	a, err := sparse.RandomMatrix(sparse.Float64, 20, 20, 0.2, rand.New(rand.NewSource(42)), sparse.UniformFloats(0, 1))
	require.NoError(t, err)
	b, err := sparse.RandomMatrix(sparse.Float64, 20, 20, 0.2, rand.New(rand.NewSource(42)), sparse.UniformFloats(0, 1))
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.Greater(t, a.NNZ(), 0)
	require.Less(t, a.NNZ(), 400)
}

// TestUniformIntsPanics on an empty range.
func TestUniformIntsPanics(t *testing.T) {
	require.Panics(t, func() { sparse.UniformInts(3, 3) })
}

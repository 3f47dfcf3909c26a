// SPDX-License-Identifier: MIT
// Package: sparse
//
// random.go - Bernoulli-sampled random sparse containers.
//
// Canonical model:
//   - Each slot is included independently with probability p.
//   - Included slots take valueFn(rng); zero values are not stored.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - valueFn == nil means every included slot gets f.One(); valueFn may be
//     called with a nil rng when p ∈ {0, 1} and no rng was supplied.
//
// Determinism:
//   - Trials run in row-major order (vectors: ascending index), so a fixed
//     seed yields the same container every time.
//
// Complexity:
//   - Time O(rows*cols) trials (O(size) for vectors), Space O(nnz).

package sparse

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sparsela/scalar"
)

// File-local constants (stable method tags and probability domain).
const (
	methodRandomMatrix = "RandomMatrix"
	methodRandomVector = "RandomVector"
	probMin            = 0.0
	probMax            = 1.0
)

// validateSampling enforces the probability domain and the RNG requirement.
func validateSampling(p float64, rng *rand.Rand) error {
	if !(p >= probMin && p <= probMax) { // also rejects NaN
		return fmt.Errorf("p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return ErrNeedRandSource
	}

	return nil
}

// include runs one Bernoulli trial; p ∈ {0,1} never touches rng.
func include(p float64, rng *rand.Rand) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return rng.Float64() < p
	}
}

// RandomMatrix samples a rows×cols matrix with independent density p.
//
// Errors:
//   - ErrNilField, ErrInvalidDimensions, ErrInvalidProbability, ErrNeedRandSource.
func RandomMatrix[T any](f scalar.Field[T], rows, cols int, p float64, rng *rand.Rand, valueFn func(*rand.Rand) T) (*Matrix[T], error) {
	m, err := NewMatrix(f, rows, cols)
	if err != nil {
		return nil, opErrorf(methodRandomMatrix, err)
	}
	if err = validateSampling(p, rng); err != nil {
		return nil, opErrorf(methodRandomMatrix, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if include(p, rng) {
				m.put(i, j, sample(f, rng, valueFn))
			}
		}
	}

	return m, nil
}

// RandomVector samples a vector of the given size with independent density p.
//
// Errors:
//   - ErrNilField, ErrInvalidDimensions, ErrInvalidProbability, ErrNeedRandSource.
func RandomVector[T any](f scalar.Field[T], size int, p float64, rng *rand.Rand, valueFn func(*rand.Rand) T) (*Vector[T], error) {
	v, err := NewVector(f, size)
	if err != nil {
		return nil, opErrorf(methodRandomVector, err)
	}
	if err = validateSampling(p, rng); err != nil {
		return nil, opErrorf(methodRandomVector, err)
	}
	for i := 0; i < size; i++ {
		if include(p, rng) {
			v.put(i, sample(f, rng, valueFn))
		}
	}

	return v, nil
}

func sample[T any](f scalar.Field[T], rng *rand.Rand, valueFn func(*rand.Rand) T) T {
	if valueFn == nil {
		return f.One()
	}

	return valueFn(rng)
}

// UniformFloats returns a value function drawing from [lo, hi).
// With a nil rng it returns the midpoint, so p ∈ {0,1} stays deterministic.
func UniformFloats(lo, hi float64) func(*rand.Rand) float64 {
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return lo + (hi-lo)/2
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// UniformInts returns a value function drawing integers from [lo, hi).
// It panics if hi <= lo (programmer error). With a nil rng it returns lo.
func UniformInts(lo, hi int) func(*rand.Rand) int {
	if hi <= lo {
		panic("sparse: UniformInts: hi must be > lo")
	}

	return func(rng *rand.Rand) int {
		if rng == nil {
			return lo
		}

		return lo + rng.Intn(hi-lo)
	}
}

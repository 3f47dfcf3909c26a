// SPDX-License-Identifier: MIT
// Package sparse_test: algebraic laws checked on seeded random inputs.
package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sparsela/scalar"
	"github.com/katalvlaran/sparsela/sparse"
)

// propSeed and propDensity keep the generated inputs reproducible.
const (
	propSeed    = 20240611
	propDensity = 0.35
	propRounds  = 12
)

// PropertySuite checks laws over int64, where arithmetic is exact.
type PropertySuite struct {
	suite.Suite
	f   scalar.Field[int64]
	rng *rand.Rand
}

func (s *PropertySuite) SetupTest() {
	s.f = scalar.Integer[int64]()
	s.rng = rand.New(rand.NewSource(propSeed))
}

func (s *PropertySuite) randMatrix(rows, cols int) *sparse.Matrix[int64] {
	vals := func(r *rand.Rand) int64 { return int64(r.Intn(7) - 3) } // may yield 0
	m, err := sparse.RandomMatrix(s.f, rows, cols, propDensity, s.rng, vals)
	require.NoError(s.T(), err)

	return m
}

func (s *PropertySuite) randVector(n int) *sparse.Vector[int64] {
	vals := func(r *rand.Rand) int64 { return int64(r.Intn(7) - 3) }
	v, err := sparse.RandomVector(s.f, n, propDensity, s.rng, vals)
	require.NoError(s.T(), err)

	return v
}

// noStoredZeros asserts that every stored entry is non-zero.
func (s *PropertySuite) noStoredZeros(m *sparse.Matrix[int64]) {
	m.Do(func(r, c int, x int64) bool {
		s.Require().NotZero(x, "stored zero at (%d,%d)", r, c)
		return true
	})
}

// TestAddCommutes: a+b == b+a.
func (s *PropertySuite) TestAddCommutes() {
	for i := 0; i < propRounds; i++ {
		a, b := s.randMatrix(5, 4), s.randMatrix(5, 4)
		ab, err := a.Add(b)
		s.Require().NoError(err)
		ba, err := b.Add(a)
		s.Require().NoError(err)
		s.Require().True(ab.Equal(ba))
		s.noStoredZeros(ab)
	}
}

// TestDotSymmetric: a·b == b·a.
func (s *PropertySuite) TestDotSymmetric() {
	for i := 0; i < propRounds; i++ {
		a, b := s.randVector(30), s.randVector(30)
		ab, err := a.Dot(b)
		s.Require().NoError(err)
		ba, err := b.Dot(a)
		s.Require().NoError(err)
		s.Require().Equal(ab, ba)
	}
}

// TestTransposeOfProduct: (ab)ᵀ == bᵀaᵀ.
func (s *PropertySuite) TestTransposeOfProduct() {
	for i := 0; i < propRounds; i++ {
		a, b := s.randMatrix(4, 6), s.randMatrix(6, 3)
		ab, err := a.Mul(b)
		s.Require().NoError(err)
		btat, err := b.Transpose().Mul(a.Transpose())
		s.Require().NoError(err)
		s.Require().True(ab.Transpose().Equal(btat))
		s.noStoredZeros(ab)
	}
}

// TestMulAssociative: (ab)c == a(bc).
func (s *PropertySuite) TestMulAssociative() {
	for i := 0; i < propRounds; i++ {
		a, b, c := s.randMatrix(3, 4), s.randMatrix(4, 5), s.randMatrix(5, 2)
		ab, err := a.Mul(b)
		s.Require().NoError(err)
		abc1, err := ab.Mul(c)
		s.Require().NoError(err)
		bc, err := b.Mul(c)
		s.Require().NoError(err)
		abc2, err := a.Mul(bc)
		s.Require().NoError(err)
		s.Require().True(abc1.Equal(abc2))
	}
}

// TestIdentityNeutral: I·m == m == m·I.
func (s *PropertySuite) TestIdentityNeutral() {
	m := s.randMatrix(4, 6)
	left, err := sparse.Identity(s.f, 4)
	s.Require().NoError(err)
	right, err := sparse.Identity(s.f, 6)
	s.Require().NoError(err)

	lm, err := left.Mul(m)
	s.Require().NoError(err)
	mr, err := m.Mul(right)
	s.Require().NoError(err)
	s.Require().True(lm.Equal(m))
	s.Require().True(mr.Equal(m))
}

// TestPowerAddsExponents: m^a · m^b == m^(a+b).
func (s *PropertySuite) TestPowerAddsExponents() {
	m := s.randMatrix(4, 4)
	for a := 0; a <= 3; a++ {
		for b := 0; b <= 3; b++ {
			pa, err := m.Power(a)
			s.Require().NoError(err)
			pb, err := m.Power(b)
			s.Require().NoError(err)
			prod, err := pa.Mul(pb)
			s.Require().NoError(err)
			pab, err := m.Power(a + b)
			s.Require().NoError(err)
			s.Require().True(prod.Equal(pab), "a=%d b=%d", a, b)
		}
	}
}

// TestMulMatrixLinear: (u+v)·m == u·m + v·m.
func (s *PropertySuite) TestMulMatrixLinear() {
	for i := 0; i < propRounds; i++ {
		u, v, m := s.randVector(5), s.randVector(5), s.randMatrix(5, 7)
		uv, err := u.Add(v)
		s.Require().NoError(err)
		lhs, err := uv.MulMatrix(m)
		s.Require().NoError(err)
		um, err := u.MulMatrix(m)
		s.Require().NoError(err)
		vm, err := v.MulMatrix(m)
		s.Require().NoError(err)
		rhs, err := um.Add(vm)
		s.Require().NoError(err)
		s.Require().True(lhs.Equal(rhs))
	}
}

// TestScaleThenNegateCancels: m + (-1)·m is empty.
func (s *PropertySuite) TestScaleThenNegateCancels() {
	m := s.randMatrix(6, 6)
	neg := m.Clone()
	neg.Scale(-1)
	sum, err := m.Add(neg)
	s.Require().NoError(err)
	s.Require().Equal(0, sum.NNZ())
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

// SPDX-License-Identifier: MIT

// Package sparsela is the root of a small sparse linear-algebra toolkit.
//
// What is in here?
//
//	scalar/        — the Field[T] capability set: float, integer, complex,
//	                 exact rational (math/big) and prime-field arithmetic
//	sparse/        — generic sparse Vector[T] and Matrix[T]: bounds-checked
//	                 access, zero-erasing writes, dot/add/products joined over
//	                 stored entries, transpose, binary-exponentiation power,
//	                 diagonal inverse, identity; gonum/mat interop; random
//	                 Bernoulli generators
//	textio/        — line-oriented reader/writer for the session text format
//	spy/           — sparsity-pattern plots rendered with gonum/plot
//	cmd/sparsela/  — cobra CLI: interactive demo, power, inverse, random, spy
//
// Quick start:
//
//	m, _ := sparse.NewMatrix(scalar.Integer[int](), 2, 2)
//	_ = m.Set(0, 0, 1)
//	_ = m.Set(0, 1, 1)
//	_ = m.Set(1, 0, 1)
//	p, _ := m.Power(10) // Fibonacci: [89, 55] [55, 34]
//
// Guarantees:
//
//   - No stored entry is ever the field zero; At of an unstored in-bounds slot
//     returns zero; out-of-bounds access is an error, never a panic.
//   - Iteration and accumulation are deterministic (row-major order).
//   - Containers are not synchronized; share them across goroutines only with
//     external locking.
package sparsela

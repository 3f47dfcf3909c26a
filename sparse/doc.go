// SPDX-License-Identifier: MIT

// Package sparse provides generic sparse vectors and matrices.
//
// What & Why:
//
//	A sparse container stores only its non-zero elements in an associative
//	map keyed by coordinate, plus declared bounds that are independent of the
//	number of stored entries. Every slot that is in bounds but not stored
//	reads as the scalar zero. The element arithmetic is supplied by a
//	scalar.Field[T], so the same kernels serve float64, integers, complex
//	numbers, exact rationals and prime fields.
//
// Invariants (hold after every public call):
//
//	- No stored entry equals the field zero; writes of zero erase.
//	- Every stored coordinate lies inside the current bounds.
//	- An in-bounds unstored read yields zero; an out-of-bounds read
//	  fails with ErrOutOfRange.
//
// Operations:
//
//	Vector: Resize, At, Set, AddAt, AddScalar, Scale, PowElements, Add, Dot, MulMatrix.
//	Matrix: Resize, At, Set, AddAt, Transpose, Scale, AddScalar, PowElements,
//	        Add, Mul, MulVec, IsSquare, Power, DiagonalInverse; Identity.
//
//	Add, Mul, Transpose, Power, DiagonalInverse and MulMatrix return freshly
//	allocated containers and never mutate their operands. Resize, Set, AddAt,
//	AddScalar, Scale and PowElements mutate the receiver. Every operation is
//	all-or-nothing: on error nothing is modified.
//
// Note the asymmetry: Vector.AddScalar touches stored entries
// only, while Matrix.AddScalar adds to every coordinate of the rows×cols
// domain (O(rows·cols)).
//
// Determinism:
//
//	Iteration (Do, Entries, String) and every accumulating kernel visit
//	entries in ascending index order (row-major for matrices), so floating
//	point results are reproducible across runs despite map storage.
//
// Concurrency:
//
//	Containers are not safe for concurrent mutation; synchronize externally.
package sparse

// SPDX-License-Identifier: MIT

// Package matrix is the small dense backend of lvtensor.
//
// What & Why:
//
//	The tensor core stores only independent components, but two places still
//	need ordinary dense linear algebra: building the canonical basis of a
//	Young-symmetrized index space (projector range, Gram–Schmidt, solving for
//	canonical coefficients) and inverting a symmetric metric. This package
//	provides exactly that surface: a row-major Dense type with checked
//	accessors, Mul, a partially pivoted LU factorization, Inverse, and a
//	rank-revealing Orthonormalize.
//
// Complexity:
//
//	At/Set are O(1) with bounds checks; Mul is O(n·m·k); LU and Inverse are
//	O(n³); Orthonormalize is O(r·c²) for an r×c input.
//
// Determinism:
//
//	All kernels use fixed loop orders. Pivot selection breaks ties by the
//	lowest row index, so identical inputs give bit-identical outputs.
package matrix

// SPDX-License-Identifier: MIT

// Package exterior is a small discrete exterior calculus on the integer
// lattice, built on the antisymmetric index of package tensor.
//
// A Simplex is a unit cell spanned from an origin along a subset of the
// axes, with an orientation. Chains are ordered ±1 sums of simplices of
// one dimension; Boundary and BoundaryChain take their oriented boundary
// and BoundaryChain of a boundary is always empty. A Cochain attaches a
// value to every simplex of a chain and Integrate sums them with
// orientation.
//
// Coboundary is Stokes' theorem on a single cell: a cochain over ∂s becomes
// the value of its derivative on s. Derivative does the same pointwise for
// a whole form field stored as a tensor whose fibre is an antisymmetric
// index; TangentBasis fixes the correspondence between antisymmetric
// components and unit simplices.
//
// Errors are sentinels (ErrDimension, ErrDuplicate, ErrNotBoundary)
// wrapped with the operation name; match them with errors.Is.
package exterior

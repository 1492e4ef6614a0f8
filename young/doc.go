// SPDX-License-Identifier: MIT

// Package young implements Young tableaux as used by the symmetry-aware
// tensor index system.
//
// What & Why:
//
//	A Young tableau of shape λ (row lengths, non-increasing) filled with the
//	labels 1..N encodes a mixed symmetry of an N-index tensor: indices in the
//	same row are symmetrized, indices in the same column antisymmetrized.
//	The package enumerates the standard fillings of a shape (Seq), exposes the
//	row and column permutation groups of a filling, builds the normalized
//	Young projector on the natural tensor space, and derives a canonical
//	basis: the independent natural positions that are stored, plus the
//	coefficients that reconstruct every other natural component.
//
// Conventions:
//
//	Label k sits at tensor position k-1. A permutation σ moves the entry at
//	position p to position σ[p]. The projector is
//	P = (f^λ / N!) · Σ_{c∈C} sign(c) · c · Σ_{r∈R} r, so row symmetrization
//	is applied first; P is idempotent and its rank over extent n equals the
//	hook-content formula Π (n + j - i) / hook(i, j).
//
// Degenerate shapes:
//
//	The empty shape is the scalar (size 1). A single row reduces exactly to a
//	symmetric index, a single column to an antisymmetric one: the canonical
//	positions are the non-decreasing (resp. strictly increasing) tuples in
//	lexicographic order, with coefficients 1 (resp. the permutation parity).
package young

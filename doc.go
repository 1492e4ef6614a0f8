// SPDX-License-Identifier: MIT

// Package lvtensor is a symmetry-aware tensor algebra: tensors store only
// the independent components their index symmetries allow, and every
// operation works on that compressed storage directly.
//
// What is inside?
//
//	young/        Young tableaux, hook formulas, symmetrizer projectors
//	              and the canonical basis of a Young-symmetrized index
//	tensor/       natural indices, index kinds (Symmetric, Antisymmetric,
//	              Diagonal, Identity, LorentzianSign, Full, Young), the
//	              accessor, Tensor views, Prod, Sum and metric operations
//	csr/          sparse head ⊗ tails storage, sparse-dense products and
//	              a checksummed binary format with LZ4/Zstd blocks
//	exterior/     simplices, chains, boundaries, cochains, Stokes and the
//	              discrete exterior derivative of form fields
//	matrix/       small dense linear algebra (LU, inverse, rank) used by
//	              young and the metric inverse
//	cmd/lvtensor  CLI over the above, configured from YAML
//
// Quick ASCII example: a symmetric 3×3 tensor keeps 6 of 9 entries.
//
//	| a b c |
//	| b d e |   stored: [a b c d e f]
//	| c e f |
//
//	go get github.com/katalvlaran/lvtensor
package lvtensor

// SPDX-License-Identifier: MIT

// Package tensor implements symmetry-aware tensors: multi-index arrays whose
// index slots carry algebraic symmetry, stored as the independent components
// only.
//
// What & Why:
//
//	A tensor has a natural domain (one coordinate per Natural index, each in
//	[0, Extent)) and a compressed domain (one coordinate per stored index
//	Kind). A Kind groups naturals under a symmetry and maps between the two:
//	Compress turns a natural multi-index into weighted stored components,
//	Expand lists the natural multi-indices a stored component covers.
//	An Accessor composes kinds into a layout; a Tensor is a view of
//	caller-owned storage through an Accessor.
//
// Kinds:
//
//	Natural         one slot, stored as is.
//	Symmetric       C(n+r-1, r) components, any permutation has factor +1.
//	Antisymmetric   C(n, r) components, factor = permutation parity;
//	                repeated coordinates are annihilated (read as 0).
//	Diagonal        n components; off-diagonal entries annihilated.
//	Identity        implicit Kronecker delta, nothing stored.
//	LorentzianSign  implicit diag(-1 x q, +1 x (n-q)), nothing stored.
//	Full            plain row-major block over several naturals.
//	Young           mixed symmetry of a Young tableau (package young).
//
// Algebra:
//
//	Prod contracts every index shared by both operands and absent from the
//	output (Einstein summation over matching Label and Prime, opposite
//	Variance). Sum adds tensors over identical layouts. ApplyMetric raises
//	or lowers indices in place; FillMetricProd and InverseMetric build metric
//	products and inverses. Every output component is computed at its
//	representative natural index, so outputs may carry any symmetry the
//	result actually has.
//
// Errors:
//
//	All failures are sentinel errors (see errors.go) detected before storage
//	is touched; match them with errors.Is.
//
// Concurrency:
//
//	Tensors are not safe for concurrent mutation. Prod, ApplyMetric and
//	FillMetricProd accept WithWorkers to fan independent output components
//	out to goroutines; accumulation into one component stays sequential, so
//	results do not depend on the worker count.
package tensor

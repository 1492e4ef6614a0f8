// SPDX-License-Identifier: MIT

// Package csr stores tensors that are sparse along one structured "head"
// index and dense-indexed along "tail" naturals, in compressed sparse row
// form.
//
// Lifecycle:
//
//	Dynamic  builder; every head slot starts empty and PushBack fills them
//	         in order from a dense tensor over the tails, keeping nonzeros
//	         in row-major order.
//	Csr      frozen; Freeze(n, d) sizes the arrays to exactly n nonzeros.
//	         Slots never pushed stay empty.
//
// Kernels:
//
//	ProdCsrDense  prod[h]    = Σ v · dense[tail]   (tails contracted)
//	ProdDenseCsr  prod[tail] = Σ dense[h] · v      (head contracted)
//	ToDense       zero-fill, then scatter.
//
// Accumulation into one output always follows the stored order, so results
// are reproducible; WithWorkers only spreads independent head slots.
//
// Support returns the non-empty head slots as a roaring bitmap. Write and
// Read serialize a Csr with optional LZ4 or Zstandard block compression.
package csr

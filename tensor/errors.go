// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every failure is detected at construction or at the call boundary, before
// any storage is touched. Callers match with errors.Is.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleIndex reports a structured index built over naturals of
	// different extents, a Young tableau whose rank differs from the number
	// of naturals, or an accessor that names the same natural twice.
	ErrIncompatibleIndex = errors.New("tensor: incompatible index")

	// ErrIndexMismatch reports a product or metric application over
	// incompatible domains: contracted extents differ, contracted variances
	// are not opposite, or an output index has no source.
	ErrIndexMismatch = errors.New("tensor: index mismatch")

	// ErrDomainMismatch reports an elementwise operation over structurally
	// different compressed domains.
	ErrDomainMismatch = errors.New("tensor: domain mismatch")

	// ErrZeroComponentWrite reports a write through a natural multi-index
	// that the index symmetry forces to zero (e.g. a repeated coordinate
	// under antisymmetry, an off-diagonal entry of a diagonal index).
	ErrZeroComponentWrite = errors.New("tensor: write to an annihilated component")

	// ErrNonCanonicalWrite reports a write through a natural multi-index
	// that a Young-symmetrized index expresses as a combination of several
	// stored components.
	ErrNonCanonicalWrite = errors.New("tensor: write through a non-canonical component")

	// ErrImplicitWrite reports a write through an implicit index (Identity,
	// LorentzianSign), whose values are fixed and not stored.
	ErrImplicitWrite = errors.New("tensor: write through an implicit index")

	// ErrOutOfRange reports a coordinate outside its extent or a multi-index
	// of the wrong length.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrStorageSize reports a backing slice whose length differs from the
	// accessor's compressed size.
	ErrStorageSize = errors.New("tensor: storage size mismatch")

	// ErrNotMetric reports a tensor that cannot act as a metric (it must be a
	// single rank-2 index kind over one extent).
	ErrNotMetric = errors.New("tensor: not a metric")
)

// tensorErrorf prefixes err with an operation tag, keeping the sentinel reachable.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("tensor.%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sum writes the elementwise sum of terms into out. All tensors must share
// the same compressed domain (Accessor.Equal); out may alias any term.
//
// Errors:
//   - ErrDomainMismatch when a domain differs or no term is given.
//   - ErrImplicitWrite when the shared domain is implicit-only (nothing stored).
func Sum[T constraints.Float](out *Tensor[T], terms ...*Tensor[T]) error {
	if len(terms) == 0 {
		return tensorErrorf("Sum", fmt.Errorf("no terms: %w", ErrDomainMismatch))
	}
	for i, t := range terms {
		if !out.acc.Equal(t.acc) {
			return tensorErrorf("Sum", fmt.Errorf("term %d over %s, output over %s: %w", i, t.acc, out.acc, ErrDomainMismatch))
		}
	}
	if out.acc.constant() {
		return tensorErrorf("Sum", ErrImplicitWrite)
	}
	for c := range out.data {
		var v T
		for _, t := range terms {
			v += t.data[c]
		}
		out.data[c] = v
	}

	return nil
}

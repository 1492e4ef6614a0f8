// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvtensor/young"
)

// Young compresses naturals carrying the mixed symmetry of a Young tableau:
// label k of the tableau is natural k-1. Its size is the hook-content
// dimension; a natural component is in general a linear combination of
// stored components (see young.Basis).
type Young struct {
	naturals []Natural
	tableau  *young.Tableau
	basis    *young.Basis
}

// NewYoung builds a Young-symmetrized index over ns.
//
// The basis is computed from the dense projector over all n^rank natural
// components, so n^rank is capped at young.MaxProjectorSize.
//
// Errors:
//   - ErrIncompatibleIndex when extents differ or len(ns) != t.Rank().
//   - young.ErrExtent (wrapped) when n^rank exceeds young.MaxProjectorSize.
func NewYoung(t *young.Tableau, ns ...Natural) (*Young, error) {
	if t == nil || t.Rank() != len(ns) {
		return nil, tensorErrorf("NewYoung", fmt.Errorf("tableau rank does not match %d naturals: %w", len(ns), ErrIncompatibleIndex))
	}
	n, err := commonExtent("NewYoung", ns)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		n = 1
	}
	b, err := t.Basis(n)
	if err != nil {
		return nil, tensorErrorf("NewYoung", err)
	}

	return &Young{naturals: append([]Natural(nil), ns...), tableau: t, basis: b}, nil
}

// Tableau returns the tableau the index was built from.
func (y *Young) Tableau() *young.Tableau { return y.tableau }

// Naturals implements Kind.
func (y *Young) Naturals() []Natural { return append([]Natural(nil), y.naturals...) }

// Rank implements Kind.
func (y *Young) Rank() int { return len(y.naturals) }

// Size implements Kind.
func (y *Young) Size() int { return y.basis.Size() }

// Implicit implements Kind.
func (y *Young) Implicit() bool { return false }

// Compress implements Kind.
func (y *Young) Compress(m []int) []Term {
	src := y.basis.Compress(m)
	if len(src) == 0 {
		return nil
	}
	out := make([]Term, len(src))
	for i, t := range src {
		out[i] = Term{Index: t.Index, Factor: t.Coeff}
	}

	return out
}

// Representative implements Kind.
func (y *Young) Representative(c int) []int { return y.basis.Canonical(c) }

// Expand implements Kind.
func (y *Young) Expand(c int) iter.Seq2[[]int, float64] { return y.basis.Expand(c) }

func (y *Young) String() string {
	return describe("Young", y.naturals, fmt.Sprintf("%v", y.tableau.Filling()))
}

func (y *Young) withNaturals(ns []Natural) Kind {
	cp := *y
	cp.naturals = ns

	return &cp
}

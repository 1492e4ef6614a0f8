// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"iter"
)

// Full stores every natural component of its naturals in row-major order.
// Extents may differ.
type Full struct {
	naturals []Natural
	size     int
}

// NewFull builds a dense index over ns.
func NewFull(ns ...Natural) (*Full, error) {
	size := 1
	for _, n := range ns {
		if n.Extent <= 0 {
			return nil, tensorErrorf("NewFull", fmt.Errorf("%s has extent %d: %w", n, n.Extent, ErrIncompatibleIndex))
		}
		size *= n.Extent
	}

	return &Full{naturals: append([]Natural(nil), ns...), size: size}, nil
}

// Naturals implements Kind.
func (f *Full) Naturals() []Natural { return append([]Natural(nil), f.naturals...) }

// Rank implements Kind.
func (f *Full) Rank() int { return len(f.naturals) }

// Size implements Kind.
func (f *Full) Size() int { return f.size }

// Implicit implements Kind.
func (f *Full) Implicit() bool { return false }

// Compress implements Kind.
func (f *Full) Compress(m []int) []Term {
	off := 0
	for i, v := range m {
		off = off*f.naturals[i].Extent + v
	}

	return []Term{{Index: off, Factor: 1}}
}

// Representative implements Kind.
func (f *Full) Representative(c int) []int {
	m := make([]int, len(f.naturals))
	for i := len(m) - 1; i >= 0; i-- {
		m[i] = c % f.naturals[i].Extent
		c /= f.naturals[i].Extent
	}

	return m
}

// Expand implements Kind.
func (f *Full) Expand(c int) iter.Seq2[[]int, float64] {
	return func(yield func([]int, float64) bool) { yield(f.Representative(c), 1) }
}

func (f *Full) String() string { return describe("Full", f.naturals) }

func (f *Full) withNaturals(ns []Natural) Kind {
	return &Full{naturals: ns, size: f.size}
}

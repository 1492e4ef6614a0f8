// SPDX-License-Identifier: MIT

// Package tensor - Accessor: the composed codec over an ordered list of
// index kinds.
//
// Layout:
//   - The natural multi-index is the concatenation of every kind's naturals.
//   - Storage is row-major over the stored (non-implicit) kinds, the last
//     kind varying fastest; implicit kinds contribute only their factor.
//
// Complexity quicksheet:
//   - ToCompressed: O(rank + product of per-kind term counts).
//   - ToNatural: lazy; O(product of per-kind expansion lengths) to drain.

package tensor

import (
	"fmt"
	"iter"
	"strings"
)

// Accessor maps between natural multi-indices and compressed storage.
type Accessor struct {
	kinds    []Kind
	naturals []Natural
	offsets  []int // first natural position of each kind
	strides  []int // storage stride of each kind; 0 for implicit kinds
	stored   []int // positions (in kinds) of stored kinds
	size     int
}

// NewAccessor composes kinds in order. No kinds gives a scalar (size 1).
//
// Errors:
//   - ErrIncompatibleIndex when two naturals denote the same index.
func NewAccessor(kinds ...Kind) (*Accessor, error) {
	a := &Accessor{kinds: append([]Kind(nil), kinds...)}
	seen := make(map[string]Natural)
	for _, k := range kinds {
		a.offsets = append(a.offsets, len(a.naturals))
		for _, n := range k.Naturals() {
			if prev, dup := seen[n.ID()]; dup {
				return nil, tensorErrorf("NewAccessor", fmt.Errorf("%s and %s: %w", prev, n, ErrIncompatibleIndex))
			}
			seen[n.ID()] = n
			a.naturals = append(a.naturals, n)
		}
	}
	a.strides = make([]int, len(kinds))
	a.size = 1
	for i := len(kinds) - 1; i >= 0; i-- {
		if kinds[i].Implicit() {
			continue
		}
		a.strides[i] = a.size
		a.size *= kinds[i].Size()
	}
	for i, k := range kinds {
		if !k.Implicit() {
			a.stored = append(a.stored, i)
		}
	}
	if a.constant() {
		a.size = 0
	}

	return a, nil
}

// MustAccessor is NewAccessor that panics on error, for literals in tests
// and examples.
func MustAccessor(kinds ...Kind) *Accessor {
	a, err := NewAccessor(kinds...)
	if err != nil {
		panic(err)
	}

	return a
}

// constant reports an accessor made only of implicit kinds: nothing is
// stored and every component is its factor.
func (a *Accessor) constant() bool { return len(a.kinds) > 0 && len(a.stored) == 0 }

// Size is the compressed size: the product of the stored kinds' sizes
// (1 for a scalar, 0 when every kind is implicit).
func (a *Accessor) Size() int { return a.size }

// Rank is the number of naturals.
func (a *Accessor) Rank() int { return len(a.naturals) }

// Kinds returns the kinds in order.
func (a *Accessor) Kinds() []Kind { return append([]Kind(nil), a.kinds...) }

// Naturals returns the natural domain in order.
func (a *Accessor) Naturals() []Natural { return append([]Natural(nil), a.naturals...) }

// Extents returns the extent of each natural.
func (a *Accessor) Extents() []int {
	out := make([]int, len(a.naturals))
	for i, n := range a.naturals {
		out[i] = n.Extent
	}

	return out
}

// Position returns where n sits in the natural domain, or -1.
func (a *Accessor) Position(n Natural) int {
	for i, x := range a.naturals {
		if x.Same(n) {
			return i
		}
	}

	return -1
}

// HasImplicit reports whether any kind is implicit.
func (a *Accessor) HasImplicit() bool { return len(a.stored) != len(a.kinds) }

func (a *Accessor) checkNatural(m []int) error {
	if len(m) != len(a.naturals) {
		return fmt.Errorf("got %d coordinates, want %d: %w", len(m), len(a.naturals), ErrOutOfRange)
	}
	for i, v := range m {
		if v < 0 || v >= a.naturals[i].Extent {
			return fmt.Errorf("%s=%d: %w", a.naturals[i], v, ErrOutOfRange)
		}
	}

	return nil
}

// ToCompressed composes every kind's Compress. Each term is a flat storage
// offset with its factor; Index is -1 when nothing is stored (all kinds
// implicit). An empty result means the component is annihilated.
func (a *Accessor) ToCompressed(m []int) ([]Term, error) {
	if err := a.checkNatural(m); err != nil {
		return nil, tensorErrorf("ToCompressed", err)
	}
	terms := []Term{{Index: 0, Factor: 1}}
	for i, k := range a.kinds {
		kt := k.Compress(m[a.offsets[i] : a.offsets[i]+k.Rank()])
		if len(kt) == 0 {
			return nil, nil
		}
		if len(kt) == 1 {
			for j := range terms {
				terms[j].Index += kt[0].Index * a.strides[i]
				terms[j].Factor *= kt[0].Factor
			}

			continue
		}
		next := make([]Term, 0, len(terms)*len(kt))
		for _, t := range terms {
			for _, u := range kt {
				next = append(next, Term{Index: t.Index + u.Index*a.strides[i], Factor: t.Factor * u.Factor})
			}
		}
		terms = next
	}
	if a.constant() {
		for j := range terms {
			terms[j].Index = -1
		}
	}

	return terms, nil
}

// Compressed splits a flat storage offset into one component per stored kind.
func (a *Accessor) Compressed(flat int) []int {
	out := make([]int, len(a.stored))
	for j, i := range a.stored {
		out[j] = flat / a.strides[i] % a.kinds[i].Size()
	}

	return out
}

// Flat is the inverse of Compressed.
func (a *Accessor) Flat(c []int) (int, error) {
	if len(c) != len(a.stored) {
		return 0, tensorErrorf("Flat", fmt.Errorf("got %d components, want %d: %w", len(c), len(a.stored), ErrOutOfRange))
	}
	off := 0
	for j, i := range a.stored {
		if c[j] < 0 || c[j] >= a.kinds[i].Size() {
			return 0, tensorErrorf("Flat", fmt.Errorf("component %d of %s: %w", c[j], a.kinds[i], ErrOutOfRange))
		}
		off += c[j] * a.strides[i]
	}

	return off, nil
}

// Representative returns the natural multi-index whose value is exactly the
// stored component at flat. Implicit kinds contribute their first diagonal
// entry.
func (a *Accessor) Representative(flat int) []int {
	m := make([]int, 0, len(a.naturals))
	for i, k := range a.kinds {
		c := 0
		if !k.Implicit() {
			c = flat / a.strides[i] % k.Size()
		}
		m = append(m, k.Representative(c)...)
	}

	return m
}

// ToNatural yields every natural multi-index the stored component at flat
// contributes to, with the product of the kinds' factors. Implicit kinds
// expand over all of their components.
func (a *Accessor) ToNatural(flat int) iter.Seq2[[]int, float64] {
	return func(yield func([]int, float64) bool) {
		buf := make([]int, len(a.naturals))
		var rec func(i int, f float64) bool
		rec = func(i int, f float64) bool {
			if i == len(a.kinds) {
				return yield(append([]int(nil), buf...), f)
			}
			k := a.kinds[i]
			expandOne := func(c int) bool {
				for m, g := range k.Expand(c) {
					copy(buf[a.offsets[i]:], m)
					if !rec(i+1, f*g) {
						return false
					}
				}

				return true
			}
			if k.Implicit() {
				for c := 0; c < k.Size(); c++ {
					if !expandOne(c) {
						return false
					}
				}

				return true
			}

			return expandOne(flat / a.strides[i] % k.Size())
		}
		rec(0, 1)
	}
}

// Relabel returns an accessor over the same kinds where every natural Same
// as from[i] becomes to[i].
//
// Errors:
//   - ErrIncompatibleIndex when lengths differ, an extent changes, or the
//     result names an index twice.
func (a *Accessor) Relabel(from, to []Natural) (*Accessor, error) {
	if len(from) != len(to) {
		return nil, tensorErrorf("Relabel", fmt.Errorf("%d sources, %d targets: %w", len(from), len(to), ErrIncompatibleIndex))
	}
	kinds := make([]Kind, len(a.kinds))
	for i, k := range a.kinds {
		ns := k.Naturals()
		for j, n := range ns {
			for p, f := range from {
				if !n.Same(f) {
					continue
				}
				if to[p].Extent != n.Extent {
					return nil, tensorErrorf("Relabel", fmt.Errorf("%s -> %s: %w", n, to[p], ErrIncompatibleIndex))
				}
				ns[j] = to[p]

				break
			}
		}
		kinds[i] = k.withNaturals(ns)
	}

	return NewAccessor(kinds...)
}

// Equal reports structural equality: same kinds with the same naturals in
// the same order.
func (a *Accessor) Equal(o *Accessor) bool {
	if a == nil || o == nil || len(a.kinds) != len(o.kinds) {
		return a == o
	}
	for i := range a.kinds {
		if a.kinds[i].String() != o.kinds[i].String() {
			return false
		}
	}

	return true
}

func (a *Accessor) String() string {
	if len(a.kinds) == 0 {
		return "Scalar"
	}
	parts := make([]string, len(a.kinds))
	for i, k := range a.kinds {
		parts[i] = k.String()
	}

	return strings.Join(parts, " ⊗ ")
}

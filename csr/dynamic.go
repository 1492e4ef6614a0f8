// SPDX-License-Identifier: MIT

package csr

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtensor/tensor"
	"golang.org/x/exp/constraints"
)

// store is the array triple shared by Dynamic and Csr.
//
//	coalesc  len = head.Size() + 1, coalesc[0] = 0, non-decreasing;
//	         slot h owns nonzeros [coalesc[h], coalesc[h+1]).
//	idx      one slice per tail natural, each of len nnz.
//	values   len nnz.
type store[T constraints.Float] struct {
	head    tensor.Kind
	tails   []tensor.Natural
	coalesc []int
	idx     [][]int
	values  []T
}

func newStore[T constraints.Float](tag string, head tensor.Kind, tails []tensor.Natural) (store[T], error) {
	if head == nil || head.Rank() == 0 || head.Implicit() {
		return store[T]{}, csrErrorf(tag, fmt.Errorf("head %v must be a stored index of rank >= 1: %w", head, ErrInvalidLayout))
	}
	kinds := []tensor.Kind{head}
	for _, n := range tails {
		kinds = append(kinds, n)
	}
	if _, err := tensor.NewAccessor(kinds...); err != nil {
		return store[T]{}, csrErrorf(tag, err)
	}
	for _, n := range tails {
		if n.Extent <= 0 {
			return store[T]{}, csrErrorf(tag, fmt.Errorf("tail %s: %w", n, ErrInvalidLayout))
		}
	}

	return store[T]{
		head:    head,
		tails:   slices.Clone(tails),
		coalesc: make([]int, head.Size()+1),
		idx:     make([][]int, len(tails)),
	}, nil
}

// Head returns the head index kind.
func (s *store[T]) Head() tensor.Kind { return s.head }

// Tails returns the tail naturals.
func (s *store[T]) Tails() []tensor.Natural { return slices.Clone(s.tails) }

// NNZ is the number of stored nonzeros.
func (s *store[T]) NNZ() int { return len(s.values) }

// Coalesc returns a copy of the coalesced head index.
func (s *store[T]) Coalesc() []int { return slices.Clone(s.coalesc) }

// Idx returns a copy of the tail coordinates, one slice per tail natural.
func (s *store[T]) Idx() [][]int {
	out := make([][]int, len(s.idx))
	for i, col := range s.idx {
		out[i] = slices.Clone(col)
	}

	return out
}

// Values returns a copy of the stored values.
func (s *store[T]) Values() []T { return slices.Clone(s.values) }

// tailOffset is the row-major offset of the j-th nonzero in the tail domain.
func (s *store[T]) tailOffset(j int) int {
	off := 0
	for k, n := range s.tails {
		off = off*n.Extent + s.idx[k][j]
	}

	return off
}

func (s *store[T]) tailCoord(j int, dst []int) []int {
	for k := range s.tails {
		dst[k] = s.idx[k][j]
	}

	return dst
}

// validate checks the invariants listed on store, accepting a coalesced
// index that covers only a prefix of the head slots.
func (s *store[T]) validate() error {
	if len(s.coalesc) == 0 || s.coalesc[0] != 0 {
		return fmt.Errorf("coalesced index must start at 0: %w", ErrInvalidLayout)
	}
	if len(s.coalesc)-1 > s.head.Size() {
		return fmt.Errorf("%d head slots, head %s has %d: %w", len(s.coalesc)-1, s.head, s.head.Size(), ErrInvalidLayout)
	}
	for h := 1; h < len(s.coalesc); h++ {
		if s.coalesc[h] < s.coalesc[h-1] {
			return fmt.Errorf("coalesced index decreases at slot %d: %w", h, ErrInvalidLayout)
		}
	}
	nnz := len(s.values)
	if s.coalesc[len(s.coalesc)-1] != nnz {
		return fmt.Errorf("coalesced index ends at %d, %d values: %w", s.coalesc[len(s.coalesc)-1], nnz, ErrInvalidLayout)
	}
	if len(s.idx) != len(s.tails) {
		return fmt.Errorf("%d index arrays for %d tails: %w", len(s.idx), len(s.tails), ErrInvalidLayout)
	}
	for k, col := range s.idx {
		if len(col) != nnz {
			return fmt.Errorf("tail %s has %d coordinates, %d values: %w", s.tails[k], len(col), nnz, ErrInvalidLayout)
		}
		for _, v := range col {
			if v < 0 || v >= s.tails[k].Extent {
				return fmt.Errorf("tail %s coordinate %d: %w", s.tails[k], v, ErrInvalidLayout)
			}
		}
	}
	for h := 0; h+1 < len(s.coalesc); h++ {
		for j := s.coalesc[h] + 1; j < s.coalesc[h+1]; j++ {
			if s.tailOffset(j) <= s.tailOffset(j-1) {
				return fmt.Errorf("slot %d: tails not strictly ascending at nonzero %d: %w", h, j, ErrInvalidLayout)
			}
		}
	}

	return nil
}

// Dynamic is a CSR under construction: head slots are filled in order,
// each from a dense tensor over the tails. Every head slot exists from the
// start with zero nonzeros; slots after the push cursor stay empty.
// Freeze turns it into a Csr.
type Dynamic[T constraints.Float] struct {
	store[T]
	pushed int
}

// NewDynamic returns a builder over head ⊗ tails holding zero nonzeros in
// every head slot.
//
// Errors:
//   - ErrInvalidLayout for an implicit or rank-0 head, or a non-positive
//     tail extent.
//   - tensor.ErrIncompatibleIndex when a natural appears twice.
func NewDynamic[T constraints.Float](head tensor.Kind, tails ...tensor.Natural) (*Dynamic[T], error) {
	s, err := newStore[T]("NewDynamic", head, tails)
	if err != nil {
		return nil, err
	}

	return &Dynamic[T]{store: s}, nil
}

// NewDynamicFrom builds a builder from pre-sorted arrays, which it takes
// ownership of. coalesc may cover fewer head slots than head.Size(); the
// remaining slots are empty and PushBack continues after the last given
// one.
//
// Errors:
//   - as NewDynamic, plus ErrInvalidLayout when the arrays break the CSR
//     invariants.
func NewDynamicFrom[T constraints.Float](head tensor.Kind, tails []tensor.Natural, coalesc []int, idx [][]int, values []T) (*Dynamic[T], error) {
	s, err := newStore[T]("NewDynamicFrom", head, tails)
	if err != nil {
		return nil, err
	}
	full := s.coalesc
	s.coalesc, s.idx, s.values = coalesc, idx, values
	if err = s.validate(); err != nil {
		return nil, csrErrorf("NewDynamicFrom", err)
	}
	pushed := copy(full, coalesc) - 1
	s.coalesc = full

	return &Dynamic[T]{store: s, pushed: pushed}, nil
}

// Len is the number of head slots pushed so far.
func (d *Dynamic[T]) Len() int { return d.pushed }

// Complete reports whether every head slot has been pushed.
func (d *Dynamic[T]) Complete() bool { return d.pushed == d.head.Size() }

// Coalesc returns a copy of the coalesced index, head.Size()+1 entries.
// Slots after the push cursor are empty.
func (d *Dynamic[T]) Coalesc() []int { return d.coalesced() }

// coalesced fills the entries past the push cursor, which PushBack leaves
// stale, with the running nonzero count.
func (d *Dynamic[T]) coalesced() []int {
	out := slices.Clone(d.coalesc)
	for h := d.pushed + 1; h < len(out); h++ {
		out[h] = len(d.values)
	}

	return out
}

// PushBack fills the head slot at the cursor, recording the nonzero
// components of dense in row-major tail order. dense must span exactly the
// tail naturals (matched by label, prime and extent); any layout is read
// through Get.
//
// Errors:
//   - ErrInvalidLayout when every head slot has already been pushed.
//   - tensor.ErrIndexMismatch when dense does not span the tails.
func (d *Dynamic[T]) PushBack(dense *tensor.Tensor[T]) error {
	if d.Complete() {
		return csrErrorf("PushBack", fmt.Errorf("all %d head slots pushed: %w", d.head.Size(), ErrInvalidLayout))
	}
	if err := matchNaturals(dense.Naturals(), d.tails); err != nil {
		return csrErrorf("PushBack", err)
	}
	m := make([]int, len(d.tails))
	for off := 0; off < tailVolume(d.tails); off++ {
		unflatten(off, d.tails, m)
		v, err := dense.Get(m...)
		if err != nil {
			return csrErrorf("PushBack", err)
		}
		if v == 0 {
			continue
		}
		for k := range d.tails {
			d.idx[k] = append(d.idx[k], m[k])
		}
		d.values = append(d.values, v)
	}
	d.pushed++
	d.coalesc[d.pushed] = len(d.values)

	return nil
}

func tailVolume(tails []tensor.Natural) int {
	v := 1
	for _, n := range tails {
		v *= n.Extent
	}

	return v
}

func unflatten(off int, tails []tensor.Natural, dst []int) {
	for k := len(tails) - 1; k >= 0; k-- {
		dst[k] = off % tails[k].Extent
		off /= tails[k].Extent
	}
}

// matchNaturals requires got to list the same indices as want, in order,
// with equal extents.
func matchNaturals(got, want []tensor.Natural) error {
	if len(got) != len(want) {
		return fmt.Errorf("%v vs %v: %w", got, want, tensor.ErrIndexMismatch)
	}
	for i := range want {
		if !got[i].Same(want[i]) || got[i].Extent != want[i].Extent {
			return fmt.Errorf("%s vs %s: %w", got[i], want[i], tensor.ErrIndexMismatch)
		}
	}

	return nil
}

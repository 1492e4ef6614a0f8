// SPDX-License-Identifier: MIT

package csr

import (
	"fmt"
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/lvtensor/tensor"
	"golang.org/x/exp/constraints"
)

// Csr is the frozen form: one coalesced entry per head slot, arrays sized
// exactly to the nonzero count. It is read-only and safe for concurrent
// readers.
type Csr[T constraints.Float] struct {
	store[T]
}

// Freeze converts a builder holding exactly n nonzeros. Head slots never
// pushed are empty in the result. The arrays are copied, so d may keep
// being used.
//
// Errors:
//   - ErrCapacityMismatch when n differs from d.NNZ().
func Freeze[T constraints.Float](n int, d *Dynamic[T]) (*Csr[T], error) {
	if n != d.NNZ() {
		return nil, csrErrorf("Freeze", fmt.Errorf("declared %d nonzeros, accumulated %d: %w", n, d.NNZ(), ErrCapacityMismatch))
	}
	s := d.store
	s.tails = slices.Clone(s.tails)
	s.coalesc = d.coalesced()
	s.idx = d.Idx()
	s.values = slices.Clip(slices.Clone(s.values))

	return &Csr[T]{s}, nil
}

// New builds a Csr directly from literal arrays covering every head slot.
//
// Errors:
//   - as NewDynamicFrom, plus ErrInvalidLayout when coalesc does not have
//     head.Size()+1 entries.
func New[T constraints.Float](head tensor.Kind, tails []tensor.Natural, coalesc []int, idx [][]int, values []T) (*Csr[T], error) {
	if head != nil && len(coalesc) != head.Size()+1 {
		return nil, csrErrorf("New", fmt.Errorf("%d coalesced entries for %d head slots: %w", len(coalesc), head.Size(), ErrInvalidLayout))
	}
	d, err := NewDynamicFrom(head, tails, coalesc, idx, values)
	if err != nil {
		return nil, err
	}

	return Freeze(len(values), d)
}

// HeadSize is the number of head slots, head.Size().
func (c *Csr[T]) HeadSize() int { return len(c.coalesc) - 1 }

// SlotLen is the number of nonzeros in head slot h.
func (c *Csr[T]) SlotLen(h int) int { return c.coalesc[h+1] - c.coalesc[h] }

// Coord locates one nonzero: its head slot (a compressed head component)
// and its tail multi-index.
type Coord struct {
	Head int
	Tail []int
}

// All yields every nonzero in stored order: ascending head slot, then
// ascending row-major tail. The Tail slice is reused between iterations.
func (c *Csr[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		buf := make([]int, len(c.tails))
		for h := 0; h < c.HeadSize(); h++ {
			for j := c.coalesc[h]; j < c.coalesc[h+1]; j++ {
				if !yield(Coord{Head: h, Tail: c.tailCoord(j, buf)}, c.values[j]) {
					return
				}
			}
		}
	}
}

// Get returns head slot h as a Csr with a single head slot. Its head is the
// first head natural with extent 1.
//
// Errors:
//   - ErrInvalidLayout when h is out of range.
func (c *Csr[T]) Get(h int) (*Csr[T], error) {
	if h < 0 || h >= c.HeadSize() {
		return nil, csrErrorf("Get", fmt.Errorf("head slot %d of %d: %w", h, c.HeadSize(), ErrInvalidLayout))
	}
	lo, hi := c.coalesc[h], c.coalesc[h+1]
	slot := c.head.Naturals()[0]
	slot.Extent = 1
	s := store[T]{
		head:    slot,
		tails:   slices.Clone(c.tails),
		coalesc: []int{0, hi - lo},
		idx:     make([][]int, len(c.tails)),
		values:  slices.Clone(c.values[lo:hi]),
	}
	for k := range c.idx {
		s.idx[k] = slices.Clone(c.idx[k][lo:hi])
	}

	return &Csr[T]{s}, nil
}

// Support returns the head slots holding at least one nonzero.
func (c *Csr[T]) Support() *roaring.Bitmap {
	bm := roaring.New()
	for h := 0; h < c.HeadSize(); h++ {
		if c.coalesc[h+1] > c.coalesc[h] {
			bm.Add(uint32(h))
		}
	}

	return bm
}

// CommonSupport returns the head slots non-empty in every c. Operands with
// a different head size are rejected.
//
// Errors:
//   - tensor.ErrIndexMismatch when head sizes differ.
func CommonSupport[T constraints.Float](cs ...*Csr[T]) (*roaring.Bitmap, error) {
	if len(cs) == 0 {
		return roaring.New(), nil
	}
	out := cs[0].Support()
	for _, c := range cs[1:] {
		if c.HeadSize() != cs[0].HeadSize() {
			return nil, csrErrorf("CommonSupport", fmt.Errorf("head sizes %d and %d: %w", cs[0].HeadSize(), c.HeadSize(), tensor.ErrIndexMismatch))
		}
		out.And(c.Support())
	}

	return out, nil
}

func (c *Csr[T]) String() string {
	return fmt.Sprintf("Csr(%s | %v, nnz=%d)", c.head, c.tails, c.NNZ())
}

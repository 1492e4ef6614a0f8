// SPDX-License-Identifier: MIT

package csr

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/tensor"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// forSlots runs fn over every head slot, in chunks on up to o.workers
// goroutines. fn must only write outputs owned by its slot.
func forSlots(op string, slots int, o Options, fn func(h int)) error {
	workers := o.workers
	if slots <= o.chunk {
		workers = 1
	}
	o.logger.LogKernel(o.ctx, op, slots, workers)
	if workers == 1 {
		for h := 0; h < slots; h++ {
			fn(h)
		}

		return nil
	}
	g, ctx := errgroup.WithContext(o.ctx)
	g.SetLimit(workers)
	for lo := 0; lo < slots; lo += o.chunk {
		hi := min(lo+o.chunk, slots)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for h := lo; h < hi; h++ {
				fn(h)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.LogError(o.ctx, op, err)

		return csrErrorf(op, err)
	}

	return nil
}

// headAccessor is the layout a tensor over the head alone must have.
func (s *store[T]) headAccessor() *tensor.Accessor { return tensor.MustAccessor(s.head) }

// checkRowMajor requires x to be laid out as plain naturals (or Full
// blocks) spanning the tails, so that its storage is row-major over them.
func checkRowMajor(acc *tensor.Accessor, tails []tensor.Natural) error {
	if err := matchNaturals(acc.Naturals(), tails); err != nil {
		return err
	}
	for _, k := range acc.Kinds() {
		switch k.(type) {
		case tensor.Natural, *tensor.Full:
		default:
			return fmt.Errorf("%s is not a row-major layout: %w", acc, tensor.ErrIndexMismatch)
		}
	}

	return nil
}

// ProdCsrDense computes prod[h] = Σ_j values[j] · dense[tail_j] for every
// head slot h, contracting the tails. prod must be laid out over the head
// kind alone; dense must span the tails in any layout. Each head slot
// accumulates in stored order, so the result does not depend on the
// worker count.
//
// Errors:
//   - tensor.ErrIndexMismatch when prod or dense do not match c.
//   - context errors when the context of WithContext is cancelled.
//
// Complexity:
//   - Time O(nnz · dense read cost), independent of the dense tail volume.
func ProdCsrDense[T constraints.Float](prod *tensor.Tensor[T], c *Csr[T], dense *tensor.Tensor[T], opts ...Option) error {
	if !prod.Accessor().Equal(c.headAccessor()) {
		return csrErrorf("ProdCsrDense", fmt.Errorf("output %s, head %s: %w", prod.Accessor(), c.head, tensor.ErrIndexMismatch))
	}
	if err := matchNaturals(dense.Naturals(), c.tails); err != nil {
		return csrErrorf("ProdCsrDense", err)
	}
	out := prod.Data()
	scratch := make([]T, len(out))

	err := forSlots("ProdCsrDense", c.HeadSize(), gatherOptions(opts...), func(h int) {
		var (
			sum T
			m   = make([]int, len(c.tails))
		)
		for j := c.coalesc[h]; j < c.coalesc[h+1]; j++ {
			v, _ := dense.Get(c.tailCoord(j, m)...)
			sum += c.values[j] * v
		}
		scratch[h] = sum
	})
	if err != nil {
		return err
	}
	copy(out, scratch)

	return nil
}

// ProdDenseCsr computes prod[tail] = Σ_h dense[h] · values over every
// nonzero of c: the head is contracted. prod must be a row-major layout
// (naturals or Full) over the tails; dense must be laid out over the head
// kind alone. Head slots write overlapping outputs, so this kernel runs
// sequentially in stored order over the non-empty slots of Support.
//
// Errors:
//   - tensor.ErrIndexMismatch when prod or dense do not match c.
func ProdDenseCsr[T constraints.Float](prod *tensor.Tensor[T], dense *tensor.Tensor[T], c *Csr[T], opts ...Option) error {
	if err := checkRowMajor(prod.Accessor(), c.tails); err != nil {
		return csrErrorf("ProdDenseCsr", err)
	}
	if !dense.Accessor().Equal(c.headAccessor()) {
		return csrErrorf("ProdDenseCsr", fmt.Errorf("dense %s, head %s: %w", dense.Accessor(), c.head, tensor.ErrIndexMismatch))
	}
	o := gatherOptions(opts...)
	support := c.Support()
	o.logger.LogKernel(o.ctx, "ProdDenseCsr", int(support.GetCardinality()), 1)

	out := make([]T, len(prod.Data()))
	in := dense.Data()
	for it := support.Iterator(); it.HasNext(); {
		h := int(it.Next())
		for j := c.coalesc[h]; j < c.coalesc[h+1]; j++ {
			out[c.tailOffset(j)] += in[h] * c.values[j]
		}
	}
	copy(prod.Data(), out)

	return nil
}

// ToDense zero-fills out and scatters every nonzero of c into it. out must
// be laid out as the head kind followed by the tails as plain naturals.
//
// Errors:
//   - tensor.ErrIndexMismatch when out has another layout.
func ToDense[T constraints.Float](out *tensor.Tensor[T], c *Csr[T]) error {
	kinds := []tensor.Kind{c.head}
	for _, n := range c.tails {
		kinds = append(kinds, n)
	}
	want, err := tensor.NewAccessor(kinds...)
	if err != nil {
		return csrErrorf("ToDense", err)
	}
	if !out.Accessor().Equal(want) {
		return csrErrorf("ToDense", fmt.Errorf("output %s, want %s: %w", out.Accessor(), want, tensor.ErrIndexMismatch))
	}
	out.Fill(0)
	coord := make([]int, 1+len(c.tails))
	for at, v := range c.All() {
		coord[0] = at.Head
		copy(coord[1:], at.Tail)
		if err = out.SetAt(v, coord...); err != nil {
			return csrErrorf("ToDense", err)
		}
	}

	return nil
}

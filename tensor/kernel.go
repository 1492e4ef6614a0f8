// SPDX-License-Identifier: MIT

package tensor

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// fillStored computes every stored component of out as fn(representative)
// and writes the results once all are known, so out may alias an input.
// With Workers > 1, chunks of components run concurrently; fn owns the
// whole accumulation of one component, so results do not depend on the
// worker count.
func fillStored[T constraints.Float](op string, out *Tensor[T], o Options, fn func(m []int) T) error {
	if out.acc.HasImplicit() {
		return tensorErrorf(op, ErrImplicitWrite)
	}
	n := len(out.data)
	scratch := make([]T, n)
	run := func(lo, hi int) {
		for c := lo; c < hi; c++ {
			scratch[c] = fn(out.acc.Representative(c))
		}
	}

	workers := o.workers
	if n <= o.chunk {
		workers = 1
	}
	o.logger.LogKernel(o.ctx, op, n, workers)
	if workers == 1 {
		run(0, n)
	} else {
		g, ctx := errgroup.WithContext(o.ctx)
		g.SetLimit(workers)
		for lo := 0; lo < n; lo += o.chunk {
			hi := min(lo+o.chunk, n)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				run(lo, hi)

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			o.logger.LogError(o.ctx, op, err)

			return tensorErrorf(op, err)
		}
	}
	copy(out.data, scratch)

	return nil
}

// odometer calls fn with every multi-index over extents in row-major order.
// An empty extents list calls fn once with an empty index.
func odometer(extents []int, fn func(k []int)) {
	for _, e := range extents {
		if e <= 0 {
			return
		}
	}
	k := make([]int, len(extents))
	for {
		fn(k)
		i := len(k) - 1
		for ; i >= 0; i-- {
			k[i]++
			if k[i] < extents[i] {
				break
			}
			k[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

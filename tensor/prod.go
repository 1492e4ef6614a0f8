// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CheckCompatibility verifies that every index shared by a and b can be
// contracted: same extent, opposite variance.
//
// Errors:
//   - ErrIndexMismatch naming the first offending pair.
func CheckCompatibility(a, b *Accessor) error {
	for _, x := range a.naturals {
		for _, y := range b.naturals {
			if !x.Same(y) {
				continue
			}
			if x.Extent != y.Extent {
				return tensorErrorf("CheckCompatibility", fmt.Errorf("%s vs %s: extent: %w", x, y, ErrIndexMismatch))
			}
			if x.Variance == y.Variance {
				return tensorErrorf("CheckCompatibility", fmt.Errorf("%s vs %s: contraction needs opposite variance: %w", x, y, ErrIndexMismatch))
			}
		}
	}

	return nil
}

// source tells where a natural of an operand takes its coordinate from:
// the output multi-index (out >= 0) or the contracted multi-index.
type source struct {
	out, dummy int
}

// prodPlan resolves the index bookkeeping of a product once.
type prodPlan struct {
	dummies []Natural
	fromA   []source
	fromB   []source
}

func planProd(prod, a, b *Accessor) (*prodPlan, error) {
	if err := CheckCompatibility(a, b); err != nil {
		return nil, err
	}
	p := &prodPlan{}
	for _, x := range a.naturals {
		if b.Position(x) >= 0 && prod.Position(x) < 0 {
			p.dummies = append(p.dummies, x)
		}
	}
	dummyPos := func(n Natural) int {
		for i, d := range p.dummies {
			if d.Same(n) {
				return i
			}
		}

		return -1
	}
	resolve := func(op *Accessor, other *Accessor) ([]source, error) {
		out := make([]source, len(op.naturals))
		for i, x := range op.naturals {
			if d := dummyPos(x); d >= 0 {
				out[i] = source{out: -1, dummy: d}

				continue
			}
			pos := prod.Position(x)
			if pos < 0 {
				return nil, fmt.Errorf("%s is neither contracted nor in the output: %w", x, ErrIndexMismatch)
			}
			if other.Position(x) >= 0 {
				return nil, fmt.Errorf("%s appears in both operands and the output: %w", x, ErrIndexMismatch)
			}
			y := prod.naturals[pos]
			if y.Extent != x.Extent || y.Variance != x.Variance {
				return nil, fmt.Errorf("output %s vs operand %s: %w", y, x, ErrIndexMismatch)
			}
			out[i] = source{out: pos, dummy: -1}
		}

		return out, nil
	}
	var err error
	if p.fromA, err = resolve(a, b); err != nil {
		return nil, err
	}
	if p.fromB, err = resolve(b, a); err != nil {
		return nil, err
	}
	for _, y := range prod.naturals {
		if a.Position(y) < 0 && b.Position(y) < 0 {
			return nil, fmt.Errorf("output %s has no source: %w", y, ErrIndexMismatch)
		}
	}

	return p, nil
}

func gather(dst []int, src []source, out, dummy []int) {
	for i, s := range src {
		if s.out >= 0 {
			dst[i] = out[s.out]
		} else {
			dst[i] = dummy[s.dummy]
		}
	}
}

// Prod computes prod = a ⊗ b contracted over every index present in both
// operands and absent from prod (Einstein summation). Indices are matched
// by label and prime. Every other index of a and b must appear in prod
// with the same extent and variance. prod may use any symmetry: each of
// its stored components is computed at its representative natural index.
//
// Errors:
//   - ErrIndexMismatch (see CheckCompatibility and the rules above).
//   - ErrImplicitWrite when prod has an implicit index.
//
// Complexity:
//   - Time O(|prod storage| · |contracted domain| · terms).
func Prod[T constraints.Float](prod, a, b *Tensor[T], opts ...Option) error {
	plan, err := planProd(prod.acc, a.acc, b.acc)
	if err != nil {
		return tensorErrorf("Prod", err)
	}
	o := gatherOptions(opts...)
	ext := make([]int, len(plan.dummies))
	for i, d := range plan.dummies {
		ext[i] = d.Extent
	}

	return fillStored("Prod", prod, o, func(m []int) T {
		var (
			sum T
			ma  = make([]int, a.acc.Rank())
			mb  = make([]int, b.acc.Rank())
		)
		odometer(ext, func(k []int) {
			gather(ma, plan.fromA, m, k)
			ta, _ := a.acc.ToCompressed(ma)
			if len(ta) == 0 {
				return
			}
			va := a.eval(ta)
			if va == 0 {
				return
			}
			gather(mb, plan.fromB, m, k)
			tb, _ := b.acc.ToCompressed(mb)
			sum += va * b.eval(tb)
		})

		return sum
	})
}

// Scale multiplies every stored component of t by alpha in place.
func Scale[T constraints.Float](t *Tensor[T], alpha T) {
	for i := range t.data {
		t.data[i] *= alpha
	}
}

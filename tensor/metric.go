// SPDX-License-Identifier: MIT

// Package tensor - metric application.
//
// A metric is a tensor over exactly one rank-2 index kind whose two naturals
// share extent and variance (Symmetric, Diagonal, Identity, LorentzianSign,
// Full or a rank-2 Young kind). Its labels are placeholders: RelabelMetric
// binds them to the indices it acts on.

package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
	"golang.org/x/exp/constraints"
)

// metricKind validates g and returns its single kind.
func metricKind(acc *Accessor) (Kind, error) {
	if len(acc.kinds) != 1 || acc.kinds[0].Rank() != 2 {
		return nil, fmt.Errorf("%s: %w", acc, ErrNotMetric)
	}
	ns := acc.naturals
	if ns[0].Extent != ns[1].Extent || ns[0].Variance != ns[1].Variance {
		return nil, fmt.Errorf("%s: naturals differ in extent or variance: %w", acc, ErrNotMetric)
	}

	return acc.kinds[0], nil
}

// RelabelMetric returns a view of metric g whose two naturals carry the
// labels and primes of i1 and i2. The metric keeps its own variance.
//
// Errors:
//   - ErrNotMetric, ErrIncompatibleIndex (extent mismatch).
func RelabelMetric[T constraints.Float](g *Tensor[T], i1, i2 Natural) (*Tensor[T], error) {
	if _, err := metricKind(g.acc); err != nil {
		return nil, tensorErrorf("RelabelMetric", err)
	}
	ns := g.acc.naturals
	to := []Natural{
		{Label: i1.Label, Prime: i1.Prime, Extent: i1.Extent, Variance: ns[0].Variance},
		{Label: i2.Label, Prime: i2.Prime, Extent: i2.Extent, Variance: ns[1].Variance},
	}
	if i1.Same(i2) {
		return nil, tensorErrorf("RelabelMetric", fmt.Errorf("%s twice: %w", i1, ErrIncompatibleIndex))
	}
	acc, err := g.acc.Relabel(ns, to)
	if err != nil {
		return nil, err
	}

	return &Tensor[T]{acc: acc, data: g.data}, nil
}

// FillMetricProd fills prod with g_{from[0] to[0]} · g_{from[1] to[1]} · …,
// the product of one metric copy per index pair. prod must hold exactly the
// naturals of from and to, with the metric's variance.
//
// Errors:
//   - ErrNotMetric, ErrIndexMismatch, ErrImplicitWrite.
func FillMetricProd[T constraints.Float](prod, g *Tensor[T], from, to []Natural, opts ...Option) error {
	if _, err := metricKind(g.acc); err != nil {
		return tensorErrorf("FillMetricProd", err)
	}
	if len(from) != len(to) || prod.acc.Rank() != 2*len(from) {
		return tensorErrorf("FillMetricProd", fmt.Errorf("%d/%d pairs for a rank-%d product: %w", len(from), len(to), prod.acc.Rank(), ErrIndexMismatch))
	}
	gv := g.acc.naturals[0].Variance
	pos := make([][2]int, len(from))
	views := make([]*Tensor[T], len(from))
	for k := range from {
		for s, n := range []Natural{from[k], to[k]} {
			p := prod.acc.Position(n)
			if p < 0 {
				return tensorErrorf("FillMetricProd", fmt.Errorf("%s missing from product: %w", n, ErrIndexMismatch))
			}
			if y := prod.acc.naturals[p]; y.Variance != gv || y.Extent != g.acc.naturals[0].Extent {
				return tensorErrorf("FillMetricProd", fmt.Errorf("product %s vs metric %s: %w", y, g.acc.naturals[0], ErrIndexMismatch))
			}
			pos[k][s] = p
		}
		v, err := RelabelMetric(g, from[k], to[k])
		if err != nil {
			return tensorErrorf("FillMetricProd", err)
		}
		views[k] = v
	}

	return fillStored("FillMetricProd", prod, gatherOptions(opts...), func(m []int) T {
		v := T(1)
		for k, view := range views {
			tk, _ := view.acc.ToCompressed([]int{m[pos[k][0]], m[pos[k][1]]})
			v *= view.eval(tk)
			if v == 0 {
				break
			}
		}

		return v
	})
}

// ApplyMetric raises or lowers the indices idx of t in place:
// t'_{…μ…} = g_{μμ'} t^{…μ'…}. Each index in idx must have the variance
// opposite to the metric's; afterwards it carries the metric's variance.
// The storage of t is overwritten and the returned view, sharing it,
// carries the new variances; t itself must no longer be used.
//
// A symmetric-family kind of t must have all or none of its naturals in
// idx, and a diagonal kind may only be transformed by a diagonal metric, so
// the result keeps the layout of t.
//
// Errors:
//   - ErrNotMetric, ErrIndexMismatch, ErrImplicitWrite.
func ApplyMetric[T constraints.Float](t, g *Tensor[T], idx []Natural, opts ...Option) (*Tensor[T], error) {
	gk, err := metricKind(g.acc)
	if err != nil {
		return nil, tensorErrorf("ApplyMetric", err)
	}
	gv, ge := g.acc.naturals[0].Variance, g.acc.naturals[0].Extent
	pos := make([]int, len(idx))
	to := make([]Natural, len(idx))
	for k, n := range idx {
		p := t.acc.Position(n)
		if p < 0 {
			return nil, tensorErrorf("ApplyMetric", fmt.Errorf("%s not in %s: %w", n, t.acc, ErrIndexMismatch))
		}
		x := t.acc.naturals[p]
		if x.Variance == gv || x.Extent != ge {
			return nil, tensorErrorf("ApplyMetric", fmt.Errorf("%s against metric %s: %w", x, g.acc.naturals[0], ErrIndexMismatch))
		}
		pos[k] = p
		to[k] = x.SwapCharacter()
	}
	if err = checkLayoutPreserved(t.acc, gk, idx); err != nil {
		return nil, tensorErrorf("ApplyMetric", err)
	}
	acc, err := t.acc.Relabel(idx, to)
	if err != nil {
		return nil, err
	}
	out := &Tensor[T]{acc: acc, data: t.data}

	ext := make([]int, len(idx))
	for k := range ext {
		ext[k] = ge
	}
	err = fillStored("ApplyMetric", out, gatherOptions(opts...), func(m []int) T {
		var (
			sum T
			mt  = make([]int, len(m))
			gm  = make([]int, 2)
		)
		odometer(ext, func(k []int) {
			w := T(1)
			copy(mt, m)
			for j, p := range pos {
				gm[0], gm[1] = m[p], k[j]
				tg, _ := g.acc.ToCompressed(gm)
				if w *= g.eval(tg); w == 0 {
					return
				}
				mt[p] = k[j]
			}
			tt, _ := t.acc.ToCompressed(mt)
			sum += w * t.eval(tt)
		})

		return sum
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func checkLayoutPreserved(acc *Accessor, metric Kind, idx []Natural) error {
	diagonalMetric := false
	switch metric.(type) {
	case *Diagonal, *Identity, *LorentzianSign:
		diagonalMetric = true
	}
	for _, k := range acc.kinds {
		switch k.(type) {
		case Natural, *Full:
			continue
		}
		touched := 0
		for _, n := range k.Naturals() {
			for _, x := range idx {
				if n.Same(x) {
					touched++
				}
			}
		}
		if touched == 0 {
			continue
		}
		if touched != k.Rank() {
			return fmt.Errorf("%s only partly transformed: %w", k, ErrIndexMismatch)
		}
		if _, diag := k.(*Diagonal); diag && !diagonalMetric {
			return fmt.Errorf("%s needs a diagonal metric: %w", k, ErrIndexMismatch)
		}
	}

	return nil
}

// InverseMetric returns the inverse of metric g as a new tensor with the
// same layout and swapped variance, so that g^{μν} g_{νρ} = δ^μ_ρ.
// Identity and LorentzianSign metrics are their own inverse and store
// nothing; other layouts are inverted densely.
//
// Errors:
//   - ErrNotMetric; matrix.ErrSingular (wrapped) for a singular metric.
func InverseMetric[T constraints.Float](g *Tensor[T]) (*Tensor[T], error) {
	if _, err := metricKind(g.acc); err != nil {
		return nil, tensorErrorf("InverseMetric", err)
	}
	ns := g.acc.naturals
	acc, err := g.acc.Relabel(ns, []Natural{ns[0].SwapCharacter(), ns[1].SwapCharacter()})
	if err != nil {
		return nil, err
	}
	inv := Zeros[T](acc)
	if acc.constant() {
		return inv, nil
	}

	n := ns[0].Extent
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			v, _ := g.Get(i, j)
			rows[i][j] = float64(v)
		}
	}
	dense, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, tensorErrorf("InverseMetric", err)
	}
	m, err := matrix.Inverse(dense)
	if err != nil {
		return nil, tensorErrorf("InverseMetric", err)
	}
	for c := range inv.data {
		r := acc.Representative(c)
		v, _ := m.At(r[0], r[1])
		inv.data[c] = T(v)
	}

	return inv, nil
}

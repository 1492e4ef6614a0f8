// SPDX-License-Identifier: MIT

package exterior

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/tensor"
	"golang.org/x/exp/constraints"
)

// TangentBasis returns the C(dim, k) positive unit k-simplices at the
// origin of a dim-dimensional lattice. The i-th simplex spans the axes of
// the i-th component of a rank-k tensor.Antisymmetric index of extent dim,
// so an antisymmetric tensor's storage lines up with the basis.
//
// Errors:
//   - ErrDimension unless 0 <= k <= dim.
func TangentBasis(k, dim int) (*Chain, error) {
	if k < 0 || k > dim {
		return nil, exteriorErrorf("TangentBasis", fmt.Errorf("k = %d in dimension %d: %w", k, dim, ErrDimension))
	}
	c := &Chain{k: k}
	origin := make([]int, dim)
	combinations(dim, k, func(axes []int) {
		vect := make([]int, dim)
		for _, a := range axes {
			vect[a] = 1
		}
		c.simplices = append(c.simplices, Simplex{origin: origin, vect: vect})
	})

	return c, nil
}

// combinations calls fn with every strictly increasing k-tuple over
// [0, n) in lexicographic order. fn must not retain the slice.
func combinations(n, k int, fn func([]int)) {
	t := make([]int, k)
	for i := range t {
		t[i] = i
	}
	for {
		fn(t)
		i := k - 1
		for i >= 0 && t[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		t[i]++
		for j := i + 1; j < k; j++ {
			t[j] = t[j-1] + 1
		}
	}
}

// basisIndex maps the span vector of each basis simplex to its position.
func basisIndex(c *Chain) map[string]int {
	idx := make(map[string]int, c.Len())
	for i, s := range c.simplices {
		idx[cellKey(nil, s.vect)] = i
	}

	return idx
}

// formKind returns the rank and extent of a tensor.Kind usable as the
// fibre of a k-form.
func formKind(k tensor.Kind) (rank, extent int, ok bool) {
	a, isAnti := k.(*tensor.Antisymmetric)
	if !isAnti || a.Rank() == 0 {
		return 0, 0, false
	}

	return a.Rank(), a.Naturals()[0].Extent, true
}

// CochainFromTensor reads a tensor over a single antisymmetric index of
// rank k and extent dim as a cochain on TangentBasis(k, dim).
//
// Errors:
//   - ErrDimension when t is not laid out over one antisymmetric index.
func CochainFromTensor[T constraints.Float](t *tensor.Tensor[T]) (*Cochain[T], error) {
	kinds := t.Accessor().Kinds()
	if len(kinds) != 1 {
		return nil, exteriorErrorf("CochainFromTensor", fmt.Errorf("layout %s: %w", t.Accessor(), ErrDimension))
	}
	rank, extent, ok := formKind(kinds[0])
	if !ok {
		return nil, exteriorErrorf("CochainFromTensor", fmt.Errorf("layout %s is not antisymmetric: %w", t.Accessor(), ErrDimension))
	}
	basis, err := TangentBasis(rank, extent)
	if err != nil {
		return nil, exteriorErrorf("CochainFromTensor", err)
	}

	return NewCochain(basis, t.Data())
}

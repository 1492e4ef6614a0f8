// SPDX-License-Identifier: MIT

package exterior

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/tensor"
	"golang.org/x/exp/constraints"
)

// fieldLayout splits a form field layout into its leading grid naturals and
// the antisymmetric fibre. A layout made only of naturals is a 0-form and
// reports extent -1.
func fieldLayout(acc *tensor.Accessor) (grid []tensor.Natural, rank, extent int, err error) {
	kinds := acc.Kinds()
	for _, k := range kinds {
		n, ok := k.(tensor.Natural)
		if !ok {
			break
		}
		grid = append(grid, n)
	}
	switch rest := kinds[len(grid):]; len(rest) {
	case 0:
		return grid, 0, -1, nil
	case 1:
		if r, e, ok := formKind(rest[0]); ok {
			return grid, r, e, nil
		}
	}

	return nil, 0, 0, fmt.Errorf("layout %s is not grid naturals followed by an antisymmetric index: %w", acc, ErrDimension)
}

// Derivative computes the discrete exterior derivative of a k-form field:
// for every grid point p and every basis (k+1)-simplex s at p, out[p, s]
// is the integral of in over the boundary of s. Faces leaving the grid
// read the value at p.
//
// in is laid out as d grid naturals followed by a rank-k antisymmetric
// index of extent d (no fibre for k = 0); out as the same grid naturals
// followed by a rank-(k+1) antisymmetric index of extent d.
//
// Errors:
//   - ErrDimension when the layouts are not forms of consecutive degree.
//   - tensor.ErrIndexMismatch when the grids differ.
func Derivative[T constraints.Float](out, in *tensor.Tensor[T]) error {
	gridIn, kIn, dIn, err := fieldLayout(in.Accessor())
	if err != nil {
		return exteriorErrorf("Derivative", err)
	}
	grid, kOut, dOut, err := fieldLayout(out.Accessor())
	if err != nil {
		return exteriorErrorf("Derivative", err)
	}
	d := len(grid)
	if kOut != kIn+1 || dOut != d || (kIn > 0 && dIn != d) {
		return exteriorErrorf("Derivative", fmt.Errorf("%d-form into %d-form over a %d-dimensional grid: %w", kIn, kOut, d, ErrDimension))
	}
	if len(gridIn) != d {
		return exteriorErrorf("Derivative", fmt.Errorf("grids %v and %v: %w", gridIn, grid, tensor.ErrIndexMismatch))
	}
	extents := make([]int, d)
	for i, n := range grid {
		if !n.Same(gridIn[i]) || n.Extent != gridIn[i].Extent {
			return exteriorErrorf("Derivative", fmt.Errorf("grid %s vs %s: %w", gridIn[i], n, tensor.ErrIndexMismatch))
		}
		extents[i] = n.Extent
	}

	lower, err := TangentBasis(kIn, d)
	if err != nil {
		return exteriorErrorf("Derivative", err)
	}
	upper, err := TangentBasis(kOut, d)
	if err != nil {
		return exteriorErrorf("Derivative", err)
	}
	faceIdx := basisIndex(lower)

	coords := make([]int, 0, d+1)
	forEachPoint(extents, func(p []int) {
		if err != nil {
			return
		}
		for c, u := range upper.simplices {
			var sum T
			for _, f := range boundaryFaces(Simplex{origin: p, vect: u.vect}) {
				at := f.origin
				if _, inside := flatten(at, extents); !inside {
					at = p
				}
				coords = append(coords[:0], at...)
				if kIn > 0 {
					coords = append(coords, faceIdx[cellKey(nil, f.vect)])
				}
				var v T
				if v, err = in.At(coords...); err != nil {
					return
				}
				if f.negative {
					sum -= v
				} else {
					sum += v
				}
			}
			coords = append(append(coords[:0], p...), c)
			if err = out.SetAt(sum, coords...); err != nil {
				return
			}
		}
	})
	if err != nil {
		return exteriorErrorf("Derivative", err)
	}

	return nil
}

// forEachPoint visits every point of the grid in row-major order. fn must
// not retain p.
func forEachPoint(extents []int, fn func(p []int)) {
	p := make([]int, len(extents))
	for _, e := range extents {
		if e <= 0 {
			return
		}
	}
	for {
		fn(p)
		i := len(p) - 1
		for i >= 0 {
			p[i]++
			if p[i] < extents[i] {
				break
			}
			p[i] = 0
			i--
		}
		if i < 0 {
			return
		}
	}
}

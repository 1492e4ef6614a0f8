// SPDX-License-Identifier: MIT

package matrix

import "math"

// Orthonormalize runs modified Gram–Schmidt (with one re-orthogonalization
// pass) over the columns of m, in column order. Columns whose residual norm
// falls to eps or below are dropped.
//
// Returns:
//   - *Dense: r×rank matrix with orthonormal columns spanning range(m).
//   - []int: source column index of every kept column.
//
// Complexity:
//   - Time O(r*c*rank), Space O(r*rank).
func Orthonormalize(m Matrix, opts ...Option) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opOrthonormalize, err)
	}
	o := gatherOptions(opts...)
	d := asDense(m)
	vecs, kept := greedyBasis(d.c, d.r, func(j int, dst []float64) {
		for i := 0; i < d.r; i++ {
			dst[i] = d.data[i*d.c+j]
		}
	}, o.eps)

	q := newDenseZeroOK(d.r, len(vecs))
	for k, v := range vecs {
		for i, x := range v {
			q.data[i*len(vecs)+k] = x
		}
	}

	return q, kept, nil
}

// IndependentRows greedily selects rows of m, in row order, that are
// linearly independent of the rows already selected. It stops once limit
// rows are chosen (limit <= 0 means no limit).
func IndependentRows(m Matrix, limit int, opts ...Option) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opOrthonormalize, err)
	}
	o := gatherOptions(opts...)
	d := asDense(m)
	if limit <= 0 || limit > d.r {
		limit = d.r
	}
	_, kept := greedyBasis(d.r, d.c, func(i int, dst []float64) {
		copy(dst, d.data[i*d.c:(i+1)*d.c])
	}, o.eps, limit)

	return kept, nil
}

// greedyBasis orthonormalizes count candidate vectors of length dim, supplied
// by load, keeping those with a residual norm above eps. An optional limit
// stops the scan early.
func greedyBasis(count, dim int, load func(int, []float64), eps float64, limit ...int) ([][]float64, []int) {
	stop := count
	if len(limit) > 0 && limit[0] > 0 {
		stop = limit[0]
	}
	var (
		basis [][]float64
		kept  []int
	)
	for j := 0; j < count && len(kept) < stop && len(basis) < dim; j++ {
		v := make([]float64, dim)
		load(j, v)
		orig := norm(v)
		if orig <= eps {
			continue
		}
		// two passes of projection removal keep the basis orthogonal to
		// working precision.
		for pass := 0; pass < 2; pass++ {
			for _, b := range basis {
				dot := 0.0
				for i := range v {
					dot += v[i] * b[i]
				}
				for i := range v {
					v[i] -= dot * b[i]
				}
			}
		}
		nv := norm(v)
		if nv <= eps*math.Max(1, orig) {
			continue
		}
		for i := range v {
			v[i] /= nv
		}
		basis = append(basis, v)
		kept = append(kept, j)
	}

	return basis, kept
}

func norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}

	return math.Sqrt(s)
}

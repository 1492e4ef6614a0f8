// SPDX-License-Identifier: MIT

// Package matrix - linear algebra kernels.
//
// Purpose:
//   - Mul on row-major buffers.
//   - LU with partial pivoting (PA = LU) plus triangular Solve.
//   - Inverse through n column solves of one LU factorization.
//
// AI-Hints:
//   - Reuse one *LU for several right-hand sides; forming the inverse is only
//     worth it when every entry is needed (metric inversion).

package matrix

import (
	"fmt"
	"math"
)

// Mul returns a*b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, bd := asDense(a), asDense(b)
	r, k, c := ad.r, ad.c, bd.c
	out := newDenseZeroOK(r, c)

	var (
		i, j, p int
		aip     float64
	)
	// i-p-j order streams both b and out rows.
	for i = 0; i < r; i++ {
		for p = 0; p < k; p++ {
			aip = ad.data[i*k+p]
			if aip == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				out.data[i*c+j] += aip * bd.data[p*c+j]
			}
		}
	}

	return out, nil
}

// LU holds a partially pivoted factorization P*A = L*U packed in one buffer:
// the strict lower triangle stores L (unit diagonal implied), the upper
// triangle stores U, and perm[i] is the source row of row i.
type LU struct {
	n    int
	lu   []float64
	perm []int
}

// Factorize computes the LU factorization of square m with partial pivoting.
// Implementation:
//   - Stage 1: validate m (not nil, square), copy into a packed buffer.
//   - Stage 2: for each column k pick the row with the largest |a[i,k]| (ties
//     go to the lowest row), swap, eliminate below.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (pivot magnitude <= eps).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Factorize(m Matrix, opts ...Option) (*LU, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	src := asDense(m)
	n := src.r
	f := &LU{n: n, lu: make([]float64, n*n), perm: make([]int, n)}
	copy(f.lu, src.data)
	for i := range f.perm {
		f.perm[i] = i
	}

	var (
		i, j, k, p int
		best, v    float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(f.lu[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= o.eps {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				f.lu[k*n+j], f.lu[p*n+j] = f.lu[p*n+j], f.lu[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
		}
		pivot := f.lu[k*n+k]
		for i = k + 1; i < n; i++ {
			f.lu[i*n+k] /= pivot
			l := f.lu[i*n+k]
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				f.lu[i*n+j] -= l * f.lu[k*n+j]
			}
		}
	}

	return f, nil
}

// Solve returns x with A*x = b.
func (f *LU) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.n
	x := make([]float64, n)
	// forward: L*y = P*b
	for i := 0; i < n; i++ {
		sum := b[f.perm[i]]
		for k := 0; k < i; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// backward: U*x = y
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	return x, nil
}

// Inverse returns m⁻¹ by factorizing once and solving for each column of
// the identity.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := Factorize(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.n
	id, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv := newDenseZeroOK(n, n)
	for col := 0; col < n; col++ {
		x, err := f.Solve(id.Row(col))
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

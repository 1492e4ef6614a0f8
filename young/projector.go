// SPDX-License-Identifier: MIT

package young

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lvtensor/matrix"
)

// snapTol is the distance under which a basis coefficient is snapped to the
// nearest integer, and under which it is dropped as zero.
const snapTol = 1e-9

// MaxProjectorSize caps n^N, the side of the dense projector matrix. At the
// cap the projector takes 32 MiB.
const MaxProjectorSize = 1 << 11

// Term is one canonical component with its coefficient.
type Term struct {
	Index int
	Coeff float64
}

// Flat returns the row-major offset of multi-index m over extent n.
func Flat(m []int, n int) int {
	off := 0
	for _, v := range m {
		off = off*n + v
	}

	return off
}

// Unflat is the inverse of Flat for a rank-r multi-index.
func Unflat(off, n, r int) []int {
	m := make([]int, r)
	for p := r - 1; p >= 0; p-- {
		m[p] = off % n
		off /= n
	}

	return m
}

func factorial(n int) int {
	out := 1
	for i := 2; i <= n; i++ {
		out *= i
	}

	return out
}

// pow returns n^r, or -1 once the product exceeds limit.
func pow(n, r, limit int) int {
	out := 1
	for i := 0; i < r; i++ {
		if out *= n; out > limit {
			return -1
		}
	}

	return out
}

// Projector returns the normalized Young projector of t on the natural space
// of a rank-N tensor over extent n, as an n^N × n^N matrix acting on
// row-major flattened multi-indices.
//
// Errors:
//   - ErrExtent when n <= 0 or n^N exceeds MaxProjectorSize.
//
// Complexity:
//   - Time O(n^N · |R| · |C|), Space O(n^2N).
func (t *Tableau) Projector(n int) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, youngErrorf("Projector", ErrExtent)
	}
	size := pow(n, t.rank, MaxProjectorSize)
	if size < 0 {
		return nil, youngErrorf("Projector", fmt.Errorf("extent %d, rank %d: more than %d natural components: %w", n, t.rank, MaxProjectorSize, ErrExtent))
	}
	p, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, youngErrorf("Projector", err)
	}

	var (
		rowGroup = t.RowGroup()
		colGroup = t.ColumnGroup()
		norm     = float64(t.Count()) / float64(factorial(t.rank))
		col      = make([]float64, size)
	)
	for src := 0; src < size; src++ {
		for i := range col {
			col[i] = 0
		}
		m := Unflat(src, n, t.rank)
		for _, r := range rowGroup {
			mr := r.Apply(m)
			for _, c := range colGroup {
				col[Flat(c.Apply(mr), n)] += float64(c.Sign) * norm
			}
		}
		for dst, v := range col {
			if v == 0 {
				continue
			}
			if err = p.Set(dst, src, v); err != nil {
				return nil, youngErrorf("Projector", err)
			}
		}
	}

	return p, nil
}

// Basis is the canonical decomposition of a Young-symmetrized index space:
// the stored components are the values at Canonical(k), and the value at any
// natural multi-index m is Σ Coeff·stored[Index] over Compress(m).
type Basis struct {
	extent    int
	rank      int
	canonical [][]int
	rows      [][]Term // per natural offset
	cols      [][]Term // per canonical component; Index is a natural offset
}

// Basis computes the canonical decomposition of t over extent n. opts set
// the rank tolerance of the orthonormalization and the inversion.
// Implementation:
//   - Stage 1: orthonormalize the projector columns in natural order (range basis B).
//   - Stage 2: pick, in lexicographic natural order, the positions whose rows
//     of B are independent; those are the canonical components W.
//   - Stage 3: coefficients M = B · B_W⁻¹, snapped to integers when close.
//
// Errors:
//   - ErrExtent, ErrProjectorRank, and matrix errors from the inversion.
func (t *Tableau) Basis(n int, opts ...matrix.Option) (*Basis, error) {
	p, err := t.Projector(n)
	if err != nil {
		return nil, err
	}
	size := p.Rows()
	dim := t.Dimension(n)
	b := &Basis{extent: n, rank: t.rank, rows: make([][]Term, size), cols: make([][]Term, dim)}
	if dim == 0 {
		return b, nil
	}

	q, _, err := matrix.Orthonormalize(p, opts...)
	if err != nil {
		return nil, youngErrorf("Basis", err)
	}
	if q.Cols() != dim {
		return nil, youngErrorf("Basis", fmt.Errorf("rank %d, hook-content %d: %w", q.Cols(), dim, ErrProjectorRank))
	}
	w, err := matrix.IndependentRows(q, dim, opts...)
	if err != nil {
		return nil, youngErrorf("Basis", err)
	}
	if len(w) != dim {
		return nil, youngErrorf("Basis", fmt.Errorf("%d independent rows, want %d: %w", len(w), dim, ErrProjectorRank))
	}

	rows := make([][]float64, len(w))
	for k, off := range w {
		rows[k] = q.Row(off)
	}
	bw, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		return nil, youngErrorf("Basis", err)
	}
	inv, err := matrix.Inverse(bw, opts...)
	if err != nil {
		return nil, youngErrorf("Basis", err)
	}
	coeff, err := matrix.Mul(q, inv)
	if err != nil {
		return nil, youngErrorf("Basis", err)
	}

	b.canonical = make([][]int, dim)
	for k, off := range w {
		b.canonical[k] = Unflat(off, n, t.rank)
	}
	for off := 0; off < size; off++ {
		for k, v := range coeff.Row(off) {
			if v = snap(v); v == 0 {
				continue
			}
			b.rows[off] = append(b.rows[off], Term{Index: k, Coeff: v})
			b.cols[k] = append(b.cols[k], Term{Index: off, Coeff: v})
		}
	}

	return b, nil
}

func snap(v float64) float64 {
	if math.Abs(v) < snapTol {
		return 0
	}
	if r := math.Round(v); math.Abs(v-r) < snapTol {
		return r
	}

	return v
}

// Size returns the number of canonical components.
func (b *Basis) Size() int { return len(b.cols) }

// Extent returns the natural extent n.
func (b *Basis) Extent() int { return b.extent }

// Rank returns the number of natural positions.
func (b *Basis) Rank() int { return b.rank }

// Canonical returns the natural multi-index stored as component k.
func (b *Basis) Canonical(k int) []int { return append([]int(nil), b.canonical[k]...) }

// Compress expresses the natural component m in canonical components.
// An empty result means m lies in the kernel of the projector.
func (b *Basis) Compress(m []int) []Term {
	return b.rows[Flat(m, b.extent)]
}

// Expand yields every natural multi-index whose reconstruction involves
// component k, with the coefficient of k in it.
func (b *Basis) Expand(k int) iter.Seq2[[]int, float64] {
	return func(yield func([]int, float64) bool) {
		for _, term := range b.cols[k] {
			if !yield(Unflat(term.Index, b.extent, b.rank), term.Coeff) {
				return
			}
		}
	}
}

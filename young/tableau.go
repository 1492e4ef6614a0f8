// SPDX-License-Identifier: MIT

package young

import (
	"fmt"
	"math/big"
	"strings"
)

// Tableau is an immutable Young tableau: a shape and a standard filling.
type Tableau struct {
	shape []int   // row lengths, non-increasing, all > 0
	rows  [][]int // labels 1..N, rows and columns strictly increasing
	rank  int     // N
}

// New returns the tableau of the given shape filled in row-reading order
// (first row 1..λ0, second row λ0+1.., and so on).
//
// Errors:
//   - ErrShape when a row length is <= 0 or rows increase.
func New(shape ...int) (*Tableau, error) {
	if err := validateShape(shape); err != nil {
		return nil, youngErrorf("New", err)
	}
	rows := make([][]int, len(shape))
	label := 1
	for i, l := range shape {
		rows[i] = make([]int, l)
		for j := range rows[i] {
			rows[i][j] = label
			label++
		}
	}

	return &Tableau{shape: append([]int(nil), shape...), rows: rows, rank: label - 1}, nil
}

// NewWithDimension is New plus a check that the shape holds exactly dim cells.
func NewWithDimension(dim int, shape ...int) (*Tableau, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if t.rank != dim {
		return nil, youngErrorf("NewWithDimension", fmt.Errorf("shape %v has %d cells, want %d: %w", shape, t.rank, dim, ErrShape))
	}

	return t, nil
}

// NewFilled builds a tableau from an explicit filling. The filling must be
// standard: labels are exactly 1..N, rows non-increasing in length, and
// labels strictly increase along rows and down columns.
func NewFilled(rows [][]int) (*Tableau, error) {
	shape := make([]int, len(rows))
	for i, r := range rows {
		shape[i] = len(r)
	}
	if err := validateShape(shape); err != nil {
		return nil, youngErrorf("NewFilled", err)
	}
	n := 0
	for _, l := range shape {
		n += l
	}
	seen := make([]bool, n+1)
	cp := make([][]int, len(rows))
	for i, r := range rows {
		cp[i] = append([]int(nil), r...)
		for j, v := range r {
			if v < 1 || v > n || seen[v] {
				return nil, youngErrorf("NewFilled", fmt.Errorf("label %d at (%d,%d): %w", v, i, j, ErrShape))
			}
			seen[v] = true
			if j > 0 && r[j-1] >= v {
				return nil, youngErrorf("NewFilled", fmt.Errorf("row %d not increasing: %w", i, ErrShape))
			}
			if i > 0 && rows[i-1][j] >= v {
				return nil, youngErrorf("NewFilled", fmt.Errorf("column %d not increasing: %w", j, ErrShape))
			}
		}
	}

	return &Tableau{shape: shape, rows: cp, rank: n}, nil
}

func validateShape(shape []int) error {
	for i, l := range shape {
		if l <= 0 {
			return fmt.Errorf("row %d has length %d: %w", i, l, ErrShape)
		}
		if i > 0 && l > shape[i-1] {
			return fmt.Errorf("row %d (%d) longer than row %d (%d): %w", i, l, i-1, shape[i-1], ErrShape)
		}
	}

	return nil
}

// Shape returns a copy of the row lengths.
func (t *Tableau) Shape() []int { return append([]int(nil), t.shape...) }

// Rank returns the number of cells (the tensor rank N).
func (t *Tableau) Rank() int { return t.rank }

// Filling returns a copy of the labels, row by row.
func (t *Tableau) Filling() [][]int {
	out := make([][]int, len(t.rows))
	for i, r := range t.rows {
		out[i] = append([]int(nil), r...)
	}

	return out
}

// Conjugate returns the column lengths.
func (t *Tableau) Conjugate() []int {
	if len(t.shape) == 0 {
		return nil
	}
	conj := make([]int, t.shape[0])
	for _, l := range t.shape {
		for j := 0; j < l; j++ {
			conj[j]++
		}
	}

	return conj
}

// Columns returns the labels of each column, top to bottom.
func (t *Tableau) Columns() [][]int {
	conj := t.Conjugate()
	cols := make([][]int, len(conj))
	for j, h := range conj {
		cols[j] = make([]int, h)
		for i := 0; i < h; i++ {
			cols[j][i] = t.rows[i][j]
		}
	}

	return cols
}

// HookLengths returns hook(i,j) for every cell.
func (t *Tableau) HookLengths() [][]int {
	conj := t.Conjugate()
	out := make([][]int, len(t.shape))
	for i, l := range t.shape {
		out[i] = make([]int, l)
		for j := 0; j < l; j++ {
			out[i][j] = (l - j - 1) + (conj[j] - i - 1) + 1
		}
	}

	return out
}

// Count returns f^λ, the number of standard tableaux of this shape, by the
// hook length formula N! / Π hook(i,j).
func (t *Tableau) Count() int {
	num := new(big.Int).MulRange(1, int64(t.rank))
	den := big.NewInt(1)
	for _, row := range t.HookLengths() {
		for _, h := range row {
			den.Mul(den, big.NewInt(int64(h)))
		}
	}

	return int(num.Quo(num, den).Int64())
}

// Dimension returns the number of independent components of a rank-N
// tensor over extent n carrying this symmetry (hook-content formula).
// It is 0 when the shape has more rows than n.
func (t *Tableau) Dimension(n int) int {
	num, den := big.NewInt(1), big.NewInt(1)
	hooks := t.HookLengths()
	for i, l := range t.shape {
		for j := 0; j < l; j++ {
			c := n + j - i
			if c <= 0 {
				return 0
			}
			num.Mul(num, big.NewInt(int64(c)))
			den.Mul(den, big.NewInt(int64(hooks[i][j])))
		}
	}

	return int(num.Quo(num, den).Int64())
}

// String renders the filling, one row per line.
func (t *Tableau) String() string {
	var sb strings.Builder
	for i, r := range t.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range r {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
	}

	return sb.String()
}

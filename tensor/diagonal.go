// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"iter"
	"strconv"
)

// diagonalOf is the shared compression of the diagonal family: n
// components, component i being the natural multi-index (i, i, ..., i).
type diagonalOf struct {
	naturals []Natural
	extent   int
}

func newDiagonalOf(tag string, ns []Natural) (diagonalOf, error) {
	n, err := commonExtent(tag, ns)
	if err != nil {
		return diagonalOf{}, err
	}
	if len(ns) == 0 {
		return diagonalOf{}, tensorErrorf(tag, fmt.Errorf("no naturals: %w", ErrIncompatibleIndex))
	}

	return diagonalOf{naturals: append([]Natural(nil), ns...), extent: n}, nil
}

func (d diagonalOf) Naturals() []Natural { return append([]Natural(nil), d.naturals...) }

func (d diagonalOf) Rank() int { return len(d.naturals) }

func (d diagonalOf) Size() int { return d.extent }

// diagonalIndex returns i when every coordinate of m equals i, else -1.
func diagonalIndex(m []int) int {
	for _, v := range m[1:] {
		if v != m[0] {
			return -1
		}
	}

	return m[0]
}

func (d diagonalOf) Representative(c int) []int {
	m := make([]int, len(d.naturals))
	for i := range m {
		m[i] = c
	}

	return m
}

func (d diagonalOf) expand(c int, f float64) iter.Seq2[[]int, float64] {
	return func(yield func([]int, float64) bool) { yield(d.Representative(c), f) }
}

// Diagonal stores one value per diagonal entry; off-diagonal components are
// annihilated.
type Diagonal struct{ diagonalOf }

// NewDiagonal builds a diagonal index over ns.
func NewDiagonal(ns ...Natural) (*Diagonal, error) {
	d, err := newDiagonalOf("NewDiagonal", ns)
	if err != nil {
		return nil, err
	}

	return &Diagonal{d}, nil
}

// Implicit implements Kind.
func (d *Diagonal) Implicit() bool { return false }

// Compress implements Kind.
func (d *Diagonal) Compress(m []int) []Term {
	if i := diagonalIndex(m); i >= 0 {
		return []Term{{Index: i, Factor: 1}}
	}

	return nil
}

// Expand implements Kind.
func (d *Diagonal) Expand(c int) iter.Seq2[[]int, float64] { return d.expand(c, 1) }

func (d *Diagonal) String() string { return describe("Diagonal", d.naturals) }

func (d *Diagonal) withNaturals(ns []Natural) Kind {
	return &Diagonal{diagonalOf{naturals: ns, extent: d.extent}}
}

// Identity is the Kronecker delta: 1 on the diagonal, 0 elsewhere. It has n
// canonical components but stores nothing.
type Identity struct{ diagonalOf }

// NewIdentity builds an identity index over ns.
func NewIdentity(ns ...Natural) (*Identity, error) {
	d, err := newDiagonalOf("NewIdentity", ns)
	if err != nil {
		return nil, err
	}

	return &Identity{d}, nil
}

// Implicit implements Kind.
func (d *Identity) Implicit() bool { return true }

// Compress implements Kind.
func (d *Identity) Compress(m []int) []Term {
	if i := diagonalIndex(m); i >= 0 {
		return []Term{{Index: i, Factor: 1}}
	}

	return nil
}

// Expand implements Kind.
func (d *Identity) Expand(c int) iter.Seq2[[]int, float64] { return d.expand(c, 1) }

func (d *Identity) String() string { return describe("Identity", d.naturals) }

func (d *Identity) withNaturals(ns []Natural) Kind {
	return &Identity{diagonalOf{naturals: ns, extent: d.extent}}
}

// LorentzianSign is the diagonal sign metric diag(-1 ×q, +1 ×(n-q)). Like
// Identity it stores nothing.
type LorentzianSign struct {
	diagonalOf
	q int
}

// NewLorentzianSign builds a sign index whose first q diagonal entries are -1.
func NewLorentzianSign(q int, ns ...Natural) (*LorentzianSign, error) {
	d, err := newDiagonalOf("NewLorentzianSign", ns)
	if err != nil {
		return nil, err
	}
	if q < 0 || q > d.extent {
		return nil, tensorErrorf("NewLorentzianSign", fmt.Errorf("q=%d outside [0,%d]: %w", q, d.extent, ErrIncompatibleIndex))
	}

	return &LorentzianSign{diagonalOf: d, q: q}, nil
}

// Q returns the number of negative diagonal entries.
func (d *LorentzianSign) Q() int { return d.q }

// Implicit implements Kind.
func (d *LorentzianSign) Implicit() bool { return true }

func (d *LorentzianSign) sign(i int) float64 {
	if i < d.q {
		return -1
	}

	return 1
}

// Compress implements Kind.
func (d *LorentzianSign) Compress(m []int) []Term {
	if i := diagonalIndex(m); i >= 0 {
		return []Term{{Index: i, Factor: d.sign(i)}}
	}

	return nil
}

// Expand implements Kind.
func (d *LorentzianSign) Expand(c int) iter.Seq2[[]int, float64] { return d.expand(c, d.sign(c)) }

func (d *LorentzianSign) String() string {
	return describe("LorentzianSign", d.naturals, "q="+strconv.Itoa(d.q))
}

func (d *LorentzianSign) withNaturals(ns []Natural) Kind {
	return &LorentzianSign{diagonalOf: diagonalOf{naturals: ns, extent: d.extent}, q: d.q}
}

// SPDX-License-Identifier: MIT

package exterior

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Chain is an ordered formal sum of k-simplices with coefficients ±1, the
// sign carried by each simplex's orientation.
type Chain struct {
	k         int
	simplices []Simplex
}

// NewChain builds a chain of k-simplices and runs Check on it.
//
// Errors:
//   - ErrDimension when k < 0 or simplices differ in dimension.
//   - ErrDuplicate when an oriented simplex appears twice.
func NewChain(k int, simplices ...Simplex) (*Chain, error) {
	if k < 0 {
		return nil, exteriorErrorf("NewChain", fmt.Errorf("k = %d: %w", k, ErrDimension))
	}
	c := &Chain{k: k, simplices: slices.Clone(simplices)}
	if err := c.Check(); err != nil {
		return nil, exteriorErrorf("NewChain", err)
	}

	return c, nil
}

// K is the dimension of every simplex in the chain.
func (c *Chain) K() int { return c.k }

// Len is the number of simplices.
func (c *Chain) Len() int { return len(c.simplices) }

// At returns the i-th simplex.
func (c *Chain) At(i int) Simplex { return c.simplices[i] }

// All yields the simplices in order. The sequence can be ranged over any
// number of times.
func (c *Chain) All() iter.Seq2[int, Simplex] {
	return func(yield func(int, Simplex) bool) {
		for i, s := range c.simplices {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Check verifies that every simplex has dimension K, that they share one
// ambient dimension and that no oriented simplex repeats.
func (c *Chain) Check() error {
	seen := make(map[string]struct{}, len(c.simplices))
	for i, s := range c.simplices {
		if s.K() != c.k {
			return fmt.Errorf("simplex %d (%s) has dimension %d, chain %d: %w", i, s, s.K(), c.k, ErrDimension)
		}
		if s.Dim() != c.simplices[0].Dim() {
			return fmt.Errorf("simplex %d lives in dimension %d, simplex 0 in %d: %w", i, s.Dim(), c.simplices[0].Dim(), ErrDimension)
		}
		if _, dup := seen[s.key()]; dup {
			return fmt.Errorf("simplex %d (%s): %w", i, s, ErrDuplicate)
		}
		seen[s.key()] = struct{}{}
	}

	return nil
}

// Optimize returns the chain with every pair s, -s cancelled. The
// remaining simplices keep their order.
func (c *Chain) Optimize() *Chain {
	pending := make(map[string][]int)
	drop := make([]bool, len(c.simplices))
	for j, s := range c.simplices {
		opp := s.Neg().key()
		if waiting := pending[opp]; len(waiting) > 0 {
			drop[waiting[0]], drop[j] = true, true
			pending[opp] = waiting[1:]

			continue
		}
		pending[s.key()] = append(pending[s.key()], j)
	}
	out := &Chain{k: c.k}
	for j, s := range c.simplices {
		if !drop[j] {
			out.simplices = append(out.simplices, s)
		}
	}

	return out
}

// Neg flips every orientation.
func (c *Chain) Neg() *Chain {
	out := &Chain{k: c.k, simplices: make([]Simplex, len(c.simplices))}
	for i, s := range c.simplices {
		out.simplices[i] = s.Neg()
	}

	return out
}

// Add concatenates c and o.
//
// Errors:
//   - ErrDimension when the chains differ in dimension.
//   - ErrDuplicate when a simplex would appear twice.
func (c *Chain) Add(o *Chain) (*Chain, error) {
	if c.k != o.k {
		return nil, exteriorErrorf("Add", fmt.Errorf("%d-chain + %d-chain: %w", c.k, o.k, ErrDimension))
	}
	out := &Chain{k: c.k, simplices: slices.Concat(c.simplices, o.simplices)}
	if err := out.Check(); err != nil {
		return nil, exteriorErrorf("Add", err)
	}

	return out, nil
}

// Equal compares simplices pairwise, in order.
func (c *Chain) Equal(o *Chain) bool {
	return c.k == o.k && slices.EqualFunc(c.simplices, o.simplices, Simplex.Equal)
}

// sameTerms compares c and o as multisets of oriented simplices.
func (c *Chain) sameTerms(o *Chain) bool {
	if c.k != o.k || len(c.simplices) != len(o.simplices) {
		return false
	}
	count := make(map[string]int, len(c.simplices))
	for _, s := range c.simplices {
		count[s.key()]++
	}
	for _, s := range o.simplices {
		if count[s.key()]--; count[s.key()] < 0 {
			return false
		}
	}

	return true
}

// Support returns the row-major offsets, within a grid of the given
// extents, of the origins of the chain's simplices.
//
// Errors:
//   - ErrDimension when the grid rank differs from the ambient dimension or
//     an origin lies outside the grid.
func (c *Chain) Support(extents []int) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for _, s := range c.simplices {
		off, ok := flatten(s.origin, extents)
		if !ok {
			return nil, exteriorErrorf("Support", fmt.Errorf("origin %v outside grid %v: %w", s.origin, extents, ErrDimension))
		}
		bm.Add(uint32(off))
	}

	return bm, nil
}

// flatten returns the row-major offset of p in a grid, or false when p is
// outside it.
func flatten(p, extents []int) (int, bool) {
	if len(p) != len(extents) {
		return 0, false
	}
	off := 0
	for i, v := range p {
		if v < 0 || v >= extents[i] {
			return 0, false
		}
		off = off*extents[i] + v
	}

	return off, true
}

func (c *Chain) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, s := range c.simplices {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteString("]")

	return b.String()
}

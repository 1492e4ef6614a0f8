// SPDX-License-Identifier: MIT

package exterior

import (
	"fmt"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Cochain pairs a chain with one value per simplex: a discrete k-form
// sampled on the chain.
type Cochain[T constraints.Float] struct {
	chain  *Chain
	values []T
}

// NewCochain binds values to the simplices of c, in order. values is
// copied.
//
// Errors:
//   - ErrDimension when len(values) differs from c.Len().
func NewCochain[T constraints.Float](c *Chain, values []T) (*Cochain[T], error) {
	if len(values) != c.Len() {
		return nil, exteriorErrorf("NewCochain", fmt.Errorf("%d values for %d simplices: %w", len(values), c.Len(), ErrDimension))
	}

	return &Cochain[T]{chain: c, values: slices.Clone(values)}, nil
}

// Chain returns the underlying chain.
func (c *Cochain[T]) Chain() *Chain { return c.chain }

// Values returns a copy of the values.
func (c *Cochain[T]) Values() []T { return slices.Clone(c.values) }

// K is the form degree.
func (c *Cochain[T]) K() int { return c.chain.k }

// Len is the number of simplices.
func (c *Cochain[T]) Len() int { return len(c.values) }

// All yields each simplex with its value.
func (c *Cochain[T]) All() iter.Seq2[Simplex, T] {
	return func(yield func(Simplex, T) bool) {
		for i, s := range c.chain.simplices {
			if !yield(s, c.values[i]) {
				return
			}
		}
	}
}

// Integrate sums the values, negated on negatively oriented simplices.
func (c *Cochain[T]) Integrate() T {
	var out T
	for i, s := range c.chain.simplices {
		if s.negative {
			out -= c.values[i]
		} else {
			out += c.values[i]
		}
	}

	return out
}

// Cosimplex is a single simplex carrying a value.
type Cosimplex[T constraints.Float] struct {
	Simplex Simplex
	Value   T
}

// Coboundary applies Stokes' theorem to a cochain living on the boundary
// of one (k+1)-simplex s: the result is s carrying the integral of the
// cochain. A chain equal to -∂s yields -s.
//
// Errors:
//   - ErrNotBoundary when the chain is not ±∂s for any simplex s.
func Coboundary[T constraints.Float](c *Cochain[T]) (Cosimplex[T], error) {
	k := c.K()
	if c.Len() != 2*(k+1) {
		return Cosimplex[T]{}, exteriorErrorf("Coboundary", fmt.Errorf("%d faces, a %d-simplex has %d: %w", c.Len(), k+1, 2*(k+1), ErrNotBoundary))
	}
	first := c.chain.simplices[0]
	origin := first.Origin()
	vect := make([]int, first.Dim())
	for _, s := range c.chain.simplices {
		for i := range origin {
			origin[i] = min(origin[i], s.origin[i])
			vect[i] |= s.vect[i]
		}
	}
	s := Simplex{origin: origin, vect: vect}
	if s.K() != k+1 {
		return Cosimplex[T]{}, exteriorErrorf("Coboundary", fmt.Errorf("faces span %d axes: %w", s.K(), ErrNotBoundary))
	}
	b := &Chain{k: k, simplices: boundaryFaces(s)}
	switch {
	case b.sameTerms(c.chain):
	case b.Neg().sameTerms(c.chain):
		s = s.Neg()
	default:
		return Cosimplex[T]{}, exteriorErrorf("Coboundary", fmt.Errorf("%s: %w", c.chain, ErrNotBoundary))
	}

	return Cosimplex[T]{Simplex: s, Value: c.Integrate()}, nil
}

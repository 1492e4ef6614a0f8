// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tensor is a view over caller-owned storage laid out by an Accessor. It
// never allocates or resizes the storage and must not outlive it.
type Tensor[T constraints.Float] struct {
	acc  *Accessor
	data []T
}

// New wraps data as a tensor over acc.
//
// Errors:
//   - ErrStorageSize when len(data) != acc.Size().
func New[T constraints.Float](acc *Accessor, data []T) (*Tensor[T], error) {
	if len(data) != acc.Size() {
		return nil, tensorErrorf("New", fmt.Errorf("len %d, accessor %s wants %d: %w", len(data), acc, acc.Size(), ErrStorageSize))
	}

	return &Tensor[T]{acc: acc, data: data}, nil
}

// Zeros allocates zeroed storage for acc and wraps it.
func Zeros[T constraints.Float](acc *Accessor) *Tensor[T] {
	return &Tensor[T]{acc: acc, data: make([]T, acc.Size())}
}

// Accessor returns the layout.
func (t *Tensor[T]) Accessor() *Accessor { return t.acc }

// Data returns the backing storage (shared, not copied).
func (t *Tensor[T]) Data() []T { return t.data }

// Naturals returns the natural domain.
func (t *Tensor[T]) Naturals() []Natural { return t.acc.Naturals() }

// Get reads the natural component m: the factor-weighted sum of the stored
// components it resolves to. Annihilated components read 0.
func (t *Tensor[T]) Get(m ...int) (T, error) {
	terms, err := t.acc.ToCompressed(m)
	if err != nil {
		return 0, err
	}

	return t.eval(terms), nil
}

func (t *Tensor[T]) eval(terms []Term) T {
	var v T
	for _, term := range terms {
		if term.Index < 0 {
			v += T(term.Factor)

			continue
		}
		v += T(term.Factor) * t.data[term.Index]
	}

	return v
}

// Set writes v at the natural component m, storing v divided by the factor
// (so an odd permutation of an antisymmetric index stores -v).
//
// Errors:
//   - ErrOutOfRange for a bad multi-index.
//   - ErrZeroComponentWrite when m is annihilated.
//   - ErrImplicitWrite when the layout contains an implicit index.
//   - ErrNonCanonicalWrite when m resolves to several stored components.
func (t *Tensor[T]) Set(v T, m ...int) error {
	terms, err := t.acc.ToCompressed(m)
	if err != nil {
		return err
	}
	switch {
	case len(terms) == 0:
		return tensorErrorf("Set", fmt.Errorf("%v: %w", m, ErrZeroComponentWrite))
	case t.acc.HasImplicit():
		return tensorErrorf("Set", fmt.Errorf("%v: %w", m, ErrImplicitWrite))
	case len(terms) > 1:
		return tensorErrorf("Set", fmt.Errorf("%v resolves to %d components: %w", m, len(terms), ErrNonCanonicalWrite))
	}
	t.data[terms[0].Index] = v / T(terms[0].Factor)

	return nil
}

// At reads storage directly by compressed coordinates (one per stored kind);
// no factor is applied.
func (t *Tensor[T]) At(c ...int) (T, error) {
	off, err := t.acc.Flat(c)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// SetAt writes storage directly by compressed coordinates.
func (t *Tensor[T]) SetAt(v T, c ...int) error {
	off, err := t.acc.Flat(c)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Fill sets every stored component to v.
func (t *Tensor[T]) Fill(v T) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Relabel returns a view over the same storage whose naturals Same as
// from[i] are renamed (and recharactered) to to[i].
func (t *Tensor[T]) Relabel(from, to []Natural) (*Tensor[T], error) {
	acc, err := t.acc.Relabel(from, to)
	if err != nil {
		return nil, err
	}

	return &Tensor[T]{acc: acc, data: t.data}, nil
}

// Dense materializes every natural component in row-major natural order.
// Intended for validation on small domains.
func (t *Tensor[T]) Dense() []T {
	ext := t.acc.Extents()
	size := 1
	for _, e := range ext {
		size *= e
	}
	out := make([]T, size)
	m := make([]int, len(ext))
	for off := range out {
		rem := off
		for i := len(ext) - 1; i >= 0; i-- {
			m[i] = rem % ext[i]
			rem /= ext[i]
		}
		terms, _ := t.acc.ToCompressed(m)
		out[off] = t.eval(terms)
	}

	return out
}

func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor(%s)%v", t.acc, t.data)
}

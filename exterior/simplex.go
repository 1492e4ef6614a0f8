// SPDX-License-Identifier: MIT

package exterior

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Simplex is an oriented unit k-simplex of the integer lattice: the cell
// spanned from origin by the unit axes where vect is 1. k is the number of
// such axes; len(origin) is the ambient dimension.
type Simplex struct {
	origin   []int
	vect     []int
	negative bool
}

// NewSimplex builds a simplex from origin along vect. Entries of vect are
// -1, 0 or 1; a -1 entry steps the origin back along that axis, stores 1
// and flips the orientation.
//
// Errors:
//   - ErrDimension when lengths differ or an entry is outside {-1, 0, 1}.
func NewSimplex(origin, vect []int, negative bool) (Simplex, error) {
	if len(origin) != len(vect) {
		return Simplex{}, exteriorErrorf("NewSimplex", fmt.Errorf("origin %v, vector %v: %w", origin, vect, ErrDimension))
	}
	for i, v := range vect {
		if v < -1 || v > 1 {
			return Simplex{}, exteriorErrorf("NewSimplex", fmt.Errorf("vector entry %d is %d: %w", i, v, ErrDimension))
		}
	}

	return reoriented(origin, vect, negative), nil
}

// MustSimplex is NewSimplex that panics on error.
func MustSimplex(origin, vect []int, negative bool) Simplex {
	s, err := NewSimplex(origin, vect, negative)
	if err != nil {
		panic(err)
	}

	return s
}

// reoriented assumes validated input.
func reoriented(origin, vect []int, negative bool) Simplex {
	s := Simplex{origin: slices.Clone(origin), vect: slices.Clone(vect), negative: negative}
	for i, v := range s.vect {
		if v == -1 {
			s.origin[i]--
			s.vect[i] = 1
			s.negative = !s.negative
		}
	}

	return s
}

// K is the simplex dimension.
func (s Simplex) K() int {
	k := 0
	for _, v := range s.vect {
		k += v
	}

	return k
}

// Dim is the ambient dimension.
func (s Simplex) Dim() int { return len(s.origin) }

// Origin returns a copy of the origin.
func (s Simplex) Origin() []int { return slices.Clone(s.origin) }

// Vect returns a copy of the 0/1 span vector.
func (s Simplex) Vect() []int { return slices.Clone(s.vect) }

// Negative reports the orientation.
func (s Simplex) Negative() bool { return s.negative }

// Neg returns s with the opposite orientation.
func (s Simplex) Neg() Simplex {
	return Simplex{origin: s.origin, vect: s.vect, negative: !s.negative}
}

// Equal compares origin, vector and orientation.
func (s Simplex) Equal(o Simplex) bool {
	return s.negative == o.negative && slices.Equal(s.origin, o.origin) && slices.Equal(s.vect, o.vect)
}

// key identifies the oriented simplex.
func (s Simplex) key() string {
	var b strings.Builder
	if s.negative {
		b.WriteByte('-')
	}
	b.WriteString(cellKey(s.origin, s.vect))

	return b.String()
}

func cellKey(origin, vect []int) string {
	var b strings.Builder
	for _, v := range origin {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, v := range vect {
		b.WriteByte(byte('0' + v))
	}

	return b.String()
}

// axes lists the positions where vect is 1.
func (s Simplex) axes() []int {
	var out []int
	for i, v := range s.vect {
		if v == 1 {
			out = append(out, i)
		}
	}

	return out
}

func (s Simplex) String() string {
	arrow := " -> "
	if s.negative {
		arrow = " <- "
	}
	tip := slices.Clone(s.origin)
	for i, v := range s.vect {
		tip[i] += v
	}

	return fmt.Sprint(s.origin) + arrow + fmt.Sprint(tip)
}

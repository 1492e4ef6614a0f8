// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"iter"
	"strings"
)

// Variance is the algebraic role of an index under metric contraction.
type Variance int

const (
	// Covariant marks a lower index.
	Covariant Variance = iota
	// Contravariant marks an upper index.
	Contravariant
)

// Opposite returns the other variance.
func (v Variance) Opposite() Variance {
	if v == Covariant {
		return Contravariant
	}

	return Covariant
}

func (v Variance) String() string {
	if v == Contravariant {
		return "^"
	}

	return "_"
}

// Natural is one uncompressed tensor slot. Two naturals denote the same
// index when Label and Prime agree; Variance is the index character.
type Natural struct {
	Label    string
	Extent   int
	Variance Variance
	Prime    int
}

// Lower returns a covariant natural.
func Lower(label string, extent int) Natural {
	return Natural{Label: label, Extent: extent, Variance: Covariant}
}

// Upper returns a contravariant natural.
func Upper(label string, extent int) Natural {
	return Natural{Label: label, Extent: extent, Variance: Contravariant}
}

// Lowered returns n with covariant character.
func (n Natural) Lowered() Natural { n.Variance = Covariant; return n }

// Raised returns n with contravariant character.
func (n Natural) Raised() Natural { n.Variance = Contravariant; return n }

// SwapCharacter returns n with the opposite variance.
func (n Natural) SwapCharacter() Natural { n.Variance = n.Variance.Opposite(); return n }

// Primed returns n with one more prime, used to tell apart a repeated
// dummy index (μ → μ').
func (n Natural) Primed() Natural { n.Prime++; return n }

// Unprimed returns n with its primes removed.
func (n Natural) Unprimed() Natural { n.Prime = 0; return n }

// Same reports whether n and o denote the same index (label and prime).
func (n Natural) Same(o Natural) bool { return n.Label == o.Label && n.Prime == o.Prime }

// ID is the label followed by one apostrophe per prime.
func (n Natural) ID() string { return n.Label + strings.Repeat("'", n.Prime) }

func (n Natural) String() string {
	return fmt.Sprintf("%s%s[%d]", n.Variance, n.ID(), n.Extent)
}

// A Natural is also the trivial index kind: one slot, no symmetry.

// Naturals implements Kind.
func (n Natural) Naturals() []Natural { return []Natural{n} }

// Rank implements Kind.
func (n Natural) Rank() int { return 1 }

// Size implements Kind.
func (n Natural) Size() int { return n.Extent }

// Implicit implements Kind.
func (n Natural) Implicit() bool { return false }

// Compress implements Kind.
func (n Natural) Compress(m []int) []Term { return []Term{{Index: m[0], Factor: 1}} }

// Representative implements Kind.
func (n Natural) Representative(c int) []int { return []int{c} }

// Expand implements Kind.
func (n Natural) Expand(c int) iter.Seq2[[]int, float64] {
	return func(yield func([]int, float64) bool) { yield([]int{c}, 1) }
}

func (n Natural) withNaturals(ns []Natural) Kind { return ns[0] }

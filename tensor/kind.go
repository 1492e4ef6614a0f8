// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Term is one compressed position with the factor relating it to a natural
// component: natural = Factor · stored[Index].
type Term struct {
	Index  int
	Factor float64
}

// Kind describes how a group of naturals is compressed.
//
// Contract:
//   - Size is the number of canonical components.
//   - Compress maps a natural multi-index (one coordinate per natural) to
//     the canonical components it is made of. An empty result means the
//     natural component is annihilated (always zero).
//   - Expand lists, lazily and restartably, the natural multi-indices that
//     component c contributes to, with their factor.
//   - Representative is a natural multi-index whose value equals
//     component c exactly (factor 1, single term).
//   - Implicit kinds have fixed values and take no storage; their terms
//     contribute only their factor.
type Kind interface {
	Naturals() []Natural
	Rank() int
	Size() int
	Implicit() bool
	Compress(m []int) []Term
	Expand(c int) iter.Seq2[[]int, float64]
	Representative(c int) []int
	String() string

	withNaturals(ns []Natural) Kind
}

var (
	_ Kind = Natural{}
	_ Kind = (*Symmetric)(nil)
	_ Kind = (*Antisymmetric)(nil)
	_ Kind = (*Diagonal)(nil)
	_ Kind = (*Identity)(nil)
	_ Kind = (*LorentzianSign)(nil)
	_ Kind = (*Full)(nil)
	_ Kind = (*Young)(nil)
)

// commonExtent returns the shared extent of ns, or ErrIncompatibleIndex.
// An empty list has extent 0.
func commonExtent(kind string, ns []Natural) (int, error) {
	if len(ns) == 0 {
		return 0, nil
	}
	n := ns[0].Extent
	for _, x := range ns {
		if x.Extent <= 0 {
			return 0, tensorErrorf(kind, fmt.Errorf("%s has extent %d: %w", x, x.Extent, ErrIncompatibleIndex))
		}
		if x.Extent != n {
			return 0, tensorErrorf(kind, fmt.Errorf("%s and %s differ in extent: %w", ns[0], x, ErrIncompatibleIndex))
		}
	}

	return n, nil
}

func describe(kind string, ns []Natural, extra ...string) string {
	parts := make([]string, 0, len(ns)+len(extra))
	parts = append(parts, extra...)
	for _, n := range ns {
		parts = append(parts, n.String())
	}

	return kind + "(" + strings.Join(parts, ", ") + ")"
}

// binomial returns C(n, k), 0 when k<0 or k>n.
func binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	out := 1
	for i := 1; i <= k; i++ {
		out = out * (n - k + i) / i
	}

	return out
}

// sortedWithParity returns a sorted copy of m and the parity of the sorting
// permutation (+1 even, -1 odd), or 0 when two coordinates are equal and
// distinct is requested.
func sortedWithParity(m []int, distinct bool) ([]int, int) {
	s := slices.Clone(m)
	sign := 1
	// insertion sort: counts transpositions exactly.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
			sign = -sign
		}
	}
	if distinct {
		for i := 1; i < len(s); i++ {
			if s[i] == s[i-1] {
				return s, 0
			}
		}
	}

	return s, sign
}

// nextPermutation advances p to the next lexicographic permutation of its
// multiset, reporting false after the last one.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}

// permutationsOf yields the distinct permutations of sorted tuple t in
// lexicographic order; with signed set, the factor is the parity relative
// to t, otherwise 1.
func permutationsOf(t []int, signed bool) iter.Seq2[[]int, float64] {
	return func(yield func([]int, float64) bool) {
		p := slices.Clone(t)
		for {
			f := 1.0
			if signed {
				_, s := sortedWithParity(p, false)
				f = float64(s)
			}
			if !yield(slices.Clone(p), f) {
				return
			}
			if !nextPermutation(p) {
				return
			}
		}
	}
}

func inRange(m []int, extent int) bool {
	for _, v := range m {
		if v < 0 || v >= extent {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

package tensor

import "iter"

// Symmetric compresses r naturals of extent n that commute: components are
// the non-decreasing tuples in lexicographic order, C(n+r-1, r) of them,
// and every permutation of a tuple maps to it with factor 1.
type Symmetric struct {
	naturals []Natural
	extent   int
	canon    [][]int
}

// NewSymmetric builds a symmetric index over ns.
//
// Errors:
//   - ErrIncompatibleIndex when extents differ.
func NewSymmetric(ns ...Natural) (*Symmetric, error) {
	n, err := commonExtent("NewSymmetric", ns)
	if err != nil {
		return nil, err
	}
	s := &Symmetric{naturals: append([]Natural(nil), ns...), extent: n}
	s.canon = monotoneTuples(n, len(ns), false)

	return s, nil
}

// monotoneTuples lists the non-decreasing (strict=false) or strictly
// increasing (strict=true) r-tuples over [0,n) in lexicographic order.
func monotoneTuples(n, r int, strict bool) [][]int {
	var (
		out [][]int
		cur = make([]int, 0, r)
	)
	var rec func(lo int)
	rec = func(lo int) {
		if len(cur) == r {
			out = append(out, append([]int(nil), cur...))

			return
		}
		for v := lo; v < n; v++ {
			cur = append(cur, v)
			if strict {
				rec(v + 1)
			} else {
				rec(v)
			}
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)

	return out
}

// Naturals implements Kind.
func (s *Symmetric) Naturals() []Natural { return append([]Natural(nil), s.naturals...) }

// Rank implements Kind.
func (s *Symmetric) Rank() int { return len(s.naturals) }

// Size implements Kind.
func (s *Symmetric) Size() int { return len(s.canon) }

// Implicit implements Kind.
func (s *Symmetric) Implicit() bool { return false }

// Compress sorts m and ranks the sorted tuple.
func (s *Symmetric) Compress(m []int) []Term {
	sorted, _ := sortedWithParity(m, false)

	return []Term{{Index: rankMultiset(sorted, s.extent), Factor: 1}}
}

// rankMultiset is the lexicographic rank of a non-decreasing tuple t among
// all non-decreasing tuples of its length over [0,n).
func rankMultiset(t []int, n int) int {
	r := len(t)
	idx, lo := 0, 0
	for p, v := range t {
		rest := r - p - 1
		for w := lo; w < v; w++ {
			idx += binomial(n-w+rest-1, rest)
		}
		lo = v
	}

	return idx
}

// Representative implements Kind.
func (s *Symmetric) Representative(c int) []int { return append([]int(nil), s.canon[c]...) }

// Expand yields every distinct permutation of component c, factor 1.
func (s *Symmetric) Expand(c int) iter.Seq2[[]int, float64] {
	return permutationsOf(s.canon[c], false)
}

func (s *Symmetric) String() string { return describe("Symmetric", s.naturals) }

func (s *Symmetric) withNaturals(ns []Natural) Kind {
	cp := *s
	cp.naturals = ns

	return &cp
}

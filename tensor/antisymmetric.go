// SPDX-License-Identifier: MIT

package tensor

import "iter"

// Antisymmetric compresses r naturals of extent n that anticommute:
// components are the strictly increasing tuples in lexicographic order,
// C(n, r) of them. A permutation of a tuple maps to it with its parity as
// factor; tuples with a repeated coordinate are annihilated and never
// stored. Rank 0 is a scalar (size 1).
type Antisymmetric struct {
	naturals []Natural
	extent   int
	canon    [][]int
}

// NewAntisymmetric builds an antisymmetric index over ns.
//
// Errors:
//   - ErrIncompatibleIndex when extents differ.
func NewAntisymmetric(ns ...Natural) (*Antisymmetric, error) {
	n, err := commonExtent("NewAntisymmetric", ns)
	if err != nil {
		return nil, err
	}
	a := &Antisymmetric{naturals: append([]Natural(nil), ns...), extent: n}
	a.canon = monotoneTuples(n, len(ns), true)

	return a, nil
}

// Naturals implements Kind.
func (a *Antisymmetric) Naturals() []Natural { return append([]Natural(nil), a.naturals...) }

// Rank implements Kind.
func (a *Antisymmetric) Rank() int { return len(a.naturals) }

// Size implements Kind.
func (a *Antisymmetric) Size() int { return len(a.canon) }

// Implicit implements Kind.
func (a *Antisymmetric) Implicit() bool { return false }

// Compress sorts m, tracking the permutation parity; repeats annihilate.
func (a *Antisymmetric) Compress(m []int) []Term {
	sorted, sign := sortedWithParity(m, true)
	if sign == 0 {
		return nil
	}

	return []Term{{Index: rankCombination(sorted, a.extent), Factor: float64(sign)}}
}

// rankCombination is the lexicographic rank of a strictly increasing tuple
// t among all strictly increasing tuples of its length over [0,n).
func rankCombination(t []int, n int) int {
	r := len(t)
	idx, lo := 0, 0
	for p, v := range t {
		rest := r - p - 1
		for w := lo; w < v; w++ {
			idx += binomial(n-w-1, rest)
		}
		lo = v + 1
	}

	return idx
}

// Representative implements Kind.
func (a *Antisymmetric) Representative(c int) []int { return append([]int(nil), a.canon[c]...) }

// Expand yields every permutation of component c with its parity.
func (a *Antisymmetric) Expand(c int) iter.Seq2[[]int, float64] {
	return permutationsOf(a.canon[c], true)
}

func (a *Antisymmetric) String() string { return describe("Antisymmetric", a.naturals) }

func (a *Antisymmetric) withNaturals(ns []Natural) Kind {
	cp := *a
	cp.naturals = ns

	return &cp
}

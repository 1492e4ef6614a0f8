// SPDX-License-Identifier: MIT

package young

import "iter"

// Seq is an ordered sequence of standard tableaux of one shape.
type Seq []*Tableau

// All iterates the sequence; it can be ranged over any number of times.
func (s Seq) All() iter.Seq2[int, *Tableau] {
	return func(yield func(int, *Tableau) bool) {
		for i, t := range s {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Standard enumerates every standard filling of t's shape. Labels 1..N are
// placed one by one, trying rows top to bottom, so the first element is the
// row-reading filling returned by New. len(Standard()) == Count().
func (t *Tableau) Standard() Seq {
	var (
		out  Seq
		fill = make([][]int, len(t.shape))
	)
	var place func(label int)
	place = func(label int) {
		if label > t.rank {
			rows := make([][]int, len(fill))
			for i, r := range fill {
				rows[i] = append([]int(nil), r...)
			}
			out = append(out, &Tableau{shape: t.Shape(), rows: rows, rank: t.rank})

			return
		}
		for i := range t.shape {
			if len(fill[i]) == t.shape[i] {
				continue
			}
			// a cell is addable when the row above is strictly longer
			if i > 0 && len(fill[i-1]) <= len(fill[i]) {
				continue
			}
			fill[i] = append(fill[i], label)
			place(label + 1)
			fill[i] = fill[i][:len(fill[i])-1]
		}
	}
	place(1)

	return out
}

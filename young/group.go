// SPDX-License-Identifier: MIT

package young

// Perm is a signed permutation of tensor positions: the entry at position p
// moves to position To[p]. Sign is the parity (+1 or -1).
type Perm struct {
	To   []int
	Sign int
}

// Apply returns the multi-index obtained by moving m[p] to position To[p].
func (p Perm) Apply(m []int) []int {
	out := make([]int, len(m))
	for i, v := range m {
		out[p.To[i]] = v
	}

	return out
}

// RowGroup returns every permutation preserving the rows of the filling
// (the symmetrizer group R). Signs are the true parities even though
// symmetrization ignores them.
func (t *Tableau) RowGroup() []Perm {
	return groupOf(t.rank, t.rows)
}

// ColumnGroup returns every permutation preserving the columns of the
// filling (the antisymmetrizer group C).
func (t *Tableau) ColumnGroup() []Perm {
	return groupOf(t.rank, t.Columns())
}

// groupOf builds the direct product of the symmetric groups acting on each
// block of labels.
func groupOf(rank int, blocks [][]int) []Perm {
	id := make([]int, rank)
	for i := range id {
		id[i] = i
	}
	out := []Perm{{To: id, Sign: 1}}
	for _, block := range blocks {
		pos := make([]int, len(block))
		for i, label := range block {
			pos[i] = label - 1
		}
		var next []Perm
		for _, sigma := range Permutations(len(pos)) {
			for _, base := range out {
				to := append([]int(nil), base.To...)
				for i, p := range pos {
					to[p] = pos[sigma.To[i]]
				}
				next = append(next, Perm{To: to, Sign: base.Sign * sigma.Sign})
			}
		}
		out = next
	}

	return out
}

// Permutations lists all permutations of 0..n-1 with their parity, in
// lexicographic order of To.
func Permutations(n int) []Perm {
	var (
		out  []Perm
		cur  = make([]int, 0, n)
		used = make([]bool, n)
	)
	var rec func()
	rec = func() {
		if len(cur) == n {
			to := append([]int(nil), cur...)
			out = append(out, Perm{To: to, Sign: Parity(to)})

			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			cur = append(cur, v)
			rec()
			cur = cur[:len(cur)-1]
			used[v] = false
		}
	}
	rec()

	return out
}

// Parity returns +1 for an even permutation and -1 for an odd one, counting
// inversions. Values need not be 0..n-1; only their relative order matters.
func Parity(p []int) int {
	s := 1
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				s = -s
			}
		}
	}

	return s
}

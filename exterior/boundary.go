// SPDX-License-Identifier: MIT

package exterior

import (
	"fmt"
	"slices"
)

// Boundary returns the oriented boundary of a k-simplex, k >= 1: its 2k
// faces of dimension k-1, the k faces through the origin first, then the k
// faces through the opposite corner.
//
// Errors:
//   - ErrDimension for a 0-simplex.
func Boundary(s Simplex) (*Chain, error) {
	k := s.K()
	if k == 0 {
		return nil, exteriorErrorf("Boundary", fmt.Errorf("0-simplex %s has no boundary: %w", s, ErrDimension))
	}

	return &Chain{k: k - 1, simplices: boundaryFaces(s)}, nil
}

func boundaryFaces(s Simplex) []Simplex {
	k := s.K()
	axes := s.axes()
	faces := make([]Simplex, 0, 2*k)

	// faces through the origin alternate orientation starting from k's parity.
	for i, p := range axes {
		v := slices.Clone(s.vect)
		v[p] = 0
		faces = append(faces, reoriented(s.origin, v, (k+i)%2 == 1))
	}

	// faces through the far corner, spanned along -vect.
	tip := slices.Clone(s.origin)
	back := make([]int, len(s.vect))
	for i, v := range s.vect {
		tip[i] += v
		back[i] = -v
	}
	for i, p := range axes {
		v := slices.Clone(back)
		v[p] = 0
		faces = append(faces, reoriented(tip, v, i%2 == 1))
	}

	if (k%2 == 0) != s.negative {
		for i := range faces {
			faces[i] = faces[i].Neg()
		}
	}

	return faces
}

// BoundaryChain returns the boundary of every simplex of c, concatenated
// and optimized.
//
// Errors:
//   - ErrDimension for a 0-chain.
func BoundaryChain(c *Chain) (*Chain, error) {
	if c.k == 0 {
		return nil, exteriorErrorf("BoundaryChain", fmt.Errorf("0-chain has no boundary: %w", ErrDimension))
	}
	out := &Chain{k: c.k - 1}
	for _, s := range c.simplices {
		out.simplices = append(out.simplices, boundaryFaces(s)...)
	}

	return out.Optimize(), nil
}

// SPDX-License-Identifier: MIT

package young_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/young"
	"github.com/stretchr/testify/require"
)

func TestProjectorIsIdempotent(t *testing.T) {
	t.Parallel()
	for _, shape := range [][]int{{2, 1}, {2, 2}, {3}, {1, 1, 1}} {
		tab, err := young.New(shape...)
		require.NoError(t, err)
		p, err := tab.Projector(3)
		require.NoError(t, err)
		pp, err := matrix.Mul(p, p)
		require.NoError(t, err)
		for i := 0; i < p.Rows(); i++ {
			for j := 0; j < p.Cols(); j++ {
				a, _ := p.At(i, j)
				b, _ := pp.At(i, j)
				require.InDeltaf(t, a, b, 1e-12, "shape %v (%d,%d)", shape, i, j)
			}
		}
	}
}

func TestBasisSingleRowIsSymmetric(t *testing.T) {
	t.Parallel()
	tab, err := young.New(3)
	require.NoError(t, err)
	b, err := tab.Basis(2)
	require.NoError(t, err)
	require.Equal(t, 4, b.Size())
	for k, want := range [][]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {1, 1, 1}} {
		require.Equal(t, want, b.Canonical(k))
	}
	require.Equal(t, []young.Term{{Index: 2, Coeff: 1}}, b.Compress([]int{1, 0, 1}))

	n := 0
	for m, c := range b.Expand(1) {
		require.Equal(t, 1.0, c)
		require.ElementsMatch(t, []int{0, 0, 1}, m)
		n++
	}
	require.Equal(t, 3, n)
}

func TestBasisSingleColumnIsAntisymmetric(t *testing.T) {
	t.Parallel()
	tab, err := young.New(1, 1)
	require.NoError(t, err)
	b, err := tab.Basis(3)
	require.NoError(t, err)
	require.Equal(t, 3, b.Size())
	for k, want := range [][]int{{0, 1}, {0, 2}, {1, 2}} {
		require.Equal(t, want, b.Canonical(k))
	}
	require.Equal(t, []young.Term{{Index: 1, Coeff: -1}}, b.Compress([]int{2, 0}))
	require.Empty(t, b.Compress([]int{1, 1}))
}

func TestBasisScalarShape(t *testing.T) {
	t.Parallel()
	tab, err := young.New()
	require.NoError(t, err)
	b, err := tab.Basis(4)
	require.NoError(t, err)
	require.Equal(t, 1, b.Size())
	require.Equal(t, []young.Term{{Index: 0, Coeff: 1}}, b.Compress(nil))
}

func TestBasisEmptyWhenTooManyRows(t *testing.T) {
	t.Parallel()
	tab, err := young.New(1, 1, 1)
	require.NoError(t, err)
	b, err := tab.Basis(2)
	require.NoError(t, err)
	require.Zero(t, b.Size())
	require.Empty(t, b.Compress([]int{0, 1, 0}))
}

// TestBasisReconstructsProjectorRange fills canonical components at random,
// reconstructs every natural component and checks the result is fixed by P.
func TestBasisReconstructsProjectorRange(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(7, 11))
	for _, shape := range [][]int{{2, 1}, {2, 2}, {3, 1}} {
		tab, err := young.New(shape...)
		require.NoError(t, err)
		const extent = 3
		b, err := tab.Basis(extent)
		require.NoError(t, err)
		require.Equal(t, tab.Dimension(extent), b.Size())

		stored := make([]float64, b.Size())
		for i := range stored {
			stored[i] = rng.Float64()*2 - 1
		}
		size := int(math.Pow(extent, float64(tab.Rank())))
		natural := make([]float64, size)
		for off := range natural {
			for _, term := range b.Compress(young.Unflat(off, extent, tab.Rank())) {
				natural[off] += term.Coeff * stored[term.Index]
			}
		}
		for k := 0; k < b.Size(); k++ {
			require.InDelta(t, stored[k], natural[young.Flat(b.Canonical(k), extent)], 1e-12)
		}

		p, err := tab.Projector(extent)
		require.NoError(t, err)
		for i := range natural {
			var projected float64
			for j, x := range natural {
				v, _ := p.At(i, j)
				projected += v * x
			}
			require.InDeltaf(t, natural[i], projected, 1e-9, "shape %v offset %d", shape, i)
		}
	}
}

func TestProjectorRejectsBadExtent(t *testing.T) {
	t.Parallel()
	tab, err := young.New(2)
	require.NoError(t, err)
	_, err = tab.Projector(0)
	require.ErrorIs(t, err, young.ErrExtent)
}

func TestProjectorRejectsOversizedDomain(t *testing.T) {
	t.Parallel()
	tab, err := young.New(2, 2)
	require.NoError(t, err)
	_, err = tab.Projector(10)
	require.ErrorIs(t, err, young.ErrExtent)
	_, err = tab.Basis(10)
	require.ErrorIs(t, err, young.ErrExtent)

	// 6^4 = 1296 natural components stays under the cap.
	p, err := tab.Projector(6)
	require.NoError(t, err)
	require.Equal(t, 1296, p.Rows())
}

func TestBasisHonoursEpsilon(t *testing.T) {
	t.Parallel()
	tab, err := young.New(2, 1)
	require.NoError(t, err)
	loose, err := tab.Basis(3, matrix.WithEpsilon(1e-6))
	require.NoError(t, err)
	strict, err := tab.Basis(3)
	require.NoError(t, err)
	require.Equal(t, strict.Size(), loose.Size())
	for k := 0; k < strict.Size(); k++ {
		require.Equal(t, strict.Canonical(k), loose.Canonical(k))
	}

	// a tolerance above every column norm leaves no range to span.
	_, err = tab.Basis(3, matrix.WithEpsilon(100))
	require.ErrorIs(t, err, young.ErrProjectorRank)
}

// SPDX-License-Identifier: MIT

package exterior_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/exterior"
	"github.com/stretchr/testify/require"
)

func edge(origin []int, axis int, negative bool) exterior.Simplex {
	vect := make([]int, len(origin))
	vect[axis] = 1

	return exterior.MustSimplex(origin, vect, negative)
}

func TestNewChainChecks(t *testing.T) {
	t.Parallel()
	a := edge([]int{0, 0}, 0, false)
	b := edge([]int{0, 0}, 1, false)

	c, err := exterior.NewChain(1, a, b, a.Neg())
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	require.Equal(t, 1, c.K())

	_, err = exterior.NewChain(1, a, b, a)
	require.ErrorIs(t, err, exterior.ErrDuplicate)
	_, err = exterior.NewChain(0, a)
	require.ErrorIs(t, err, exterior.ErrDimension)
	_, err = exterior.NewChain(1, a, edge([]int{0, 0, 0}, 0, false))
	require.ErrorIs(t, err, exterior.ErrDimension)
	_, err = exterior.NewChain(-1)
	require.ErrorIs(t, err, exterior.ErrDimension)

	empty, err := exterior.NewChain(2)
	require.NoError(t, err)
	require.Zero(t, empty.Len())
}

func TestChainOptimizeCancelsOppositePairs(t *testing.T) {
	t.Parallel()
	a := edge([]int{0, 0}, 0, false)
	b := edge([]int{0, 0}, 1, false)
	c := edge([]int{1, 0}, 1, false)
	ch, err := exterior.NewChain(1, a, b, a.Neg(), c, b.Neg())
	require.NoError(t, err)

	opt := ch.Optimize()
	require.Equal(t, 1, opt.Len())
	require.True(t, opt.At(0).Equal(c))
	require.Equal(t, 5, ch.Len())
}

func TestChainNegAddEqual(t *testing.T) {
	t.Parallel()
	a := edge([]int{0, 0}, 0, false)
	b := edge([]int{0, 0}, 1, true)
	ab, err := exterior.NewChain(1, a, b)
	require.NoError(t, err)

	neg := ab.Neg()
	require.True(t, neg.At(0).Negative())
	require.False(t, neg.At(1).Negative())
	require.True(t, neg.Neg().Equal(ab))
	require.False(t, neg.Equal(ab))

	sum, err := ab.Add(neg)
	require.NoError(t, err)
	require.Equal(t, 4, sum.Len())
	require.Zero(t, sum.Optimize().Len())

	_, err = ab.Add(ab)
	require.ErrorIs(t, err, exterior.ErrDuplicate)
	points, err := exterior.NewChain(0, exterior.MustSimplex([]int{0, 0}, []int{0, 0}, false))
	require.NoError(t, err)
	_, err = ab.Add(points)
	require.ErrorIs(t, err, exterior.ErrDimension)
}

func TestChainAllIsRestartable(t *testing.T) {
	t.Parallel()
	ch, err := exterior.NewChain(1, edge([]int{0}, 0, false), edge([]int{1}, 0, false), edge([]int{2}, 0, false))
	require.NoError(t, err)
	for range 2 {
		var origins []int
		for i, s := range ch.All() {
			require.Equal(t, len(origins), i)
			origins = append(origins, s.Origin()[0])
		}
		require.Equal(t, []int{0, 1, 2}, origins)
	}
	n := 0
	for range ch.All() {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestChainSupport(t *testing.T) {
	t.Parallel()
	ch, err := exterior.NewChain(1,
		edge([]int{0, 1}, 0, false),
		edge([]int{2, 2}, 1, false),
		edge([]int{0, 1}, 1, true),
	)
	require.NoError(t, err)
	bm, err := ch.Support([]int{3, 3})
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 8}, bm.ToArray())

	_, err = ch.Support([]int{2, 2})
	require.ErrorIs(t, err, exterior.ErrDimension)
	_, err = ch.Support([]int{3})
	require.ErrorIs(t, err, exterior.ErrDimension)
}

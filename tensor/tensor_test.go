// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/katalvlaran/lvtensor/young"
	"github.com/stretchr/testify/require"
)

func TestNewChecksStorageSize(t *testing.T) {
	t.Parallel()
	acc := tensor.MustAccessor(must(tensor.NewSymmetric(lowers(3, "a", "b")...)))
	_, err := tensor.New(acc, make([]float64, 9))
	require.ErrorIs(t, err, tensor.ErrStorageSize)

	x, err := tensor.New(acc, make([]float32, 6))
	require.NoError(t, err)
	require.Len(t, x.Data(), 6)
	require.Equal(t, acc.Naturals(), x.Naturals())
}

func TestSymmetricReadsEveryPermutation(t *testing.T) {
	t.Parallel()
	s := newTensor(t, []float64{1, 2, 3, 4, 5, 6}, must(tensor.NewSymmetric(lowers(3, "a", "b")...)))
	requireDense(t, []float64{1, 2, 3, 2, 4, 5, 3, 5, 6}, s, 0)

	require.NoError(t, s.Set(9, 2, 1))
	v, err := s.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)
	require.Equal(t, []float64{1, 2, 3, 4, 9, 6}, s.Data())
}

func TestAntisymmetricSetGet(t *testing.T) {
	t.Parallel()
	f := zeros(t, must(tensor.NewAntisymmetric(lowers(3, "a", "b")...)))

	require.NoError(t, f.Set(5, 0, 1))
	v, err := f.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, -5.0, v)

	require.NoError(t, f.Set(3, 2, 0))
	require.Equal(t, []float64{5, -3, 0}, f.Data())

	v, err = f.Get(1, 1)
	require.NoError(t, err)
	require.Zero(t, v)

	err = f.Set(1, 1, 1)
	require.ErrorIs(t, err, tensor.ErrZeroComponentWrite)
	require.Equal(t, []float64{5, -3, 0}, f.Data())

	_, err = f.Get(3, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
}

func TestDiagonalOffDiagonalWrite(t *testing.T) {
	t.Parallel()
	d := newTensor(t, []float64{1, 2, 3}, must(tensor.NewDiagonal(lowers(3, "a", "b")...)))
	requireDense(t, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3}, d, 0)
	require.ErrorIs(t, d.Set(1, 0, 2), tensor.ErrZeroComponentWrite)
}

func TestImplicitKinds(t *testing.T) {
	t.Parallel()
	eta := newTensor(t, nil, must(tensor.NewLorentzianSign(1, lowers(4, "m", "n")...)))
	requireDense(t, []float64{
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}, eta, 0)
	require.ErrorIs(t, eta.Set(2, 1, 1), tensor.ErrImplicitWrite)

	// identity times a stored vector: delta_{mn} v_x.
	dv := newTensor(t, []float64{2, 3}, must(tensor.NewIdentity(lowers(2, "m", "n")...)), tensor.Lower("x", 2))
	v, err := dv.Get(1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	v, err = dv.Get(0, 1, 1)
	require.NoError(t, err)
	require.Zero(t, v)
	require.ErrorIs(t, dv.Set(1, 0, 0, 0), tensor.ErrImplicitWrite)
}

func TestYoungCanonicalAndNonCanonicalWrites(t *testing.T) {
	t.Parallel()
	tab := must(young.New(2, 1))
	y := must(tensor.NewYoung(tab, lowers(3, "a", "b", "c")...))
	x := zeros(t, y)
	require.Equal(t, 8, x.Accessor().Size())

	for c := 0; c < y.Size(); c++ {
		m := y.Representative(c)
		require.NoError(t, x.Set(float64(c+1), m...))
		v, err := x.Get(m...)
		require.NoError(t, err)
		require.Equal(t, float64(c+1), v)
	}

	// The cyclic identity of the [2,1] symmetry ties distinct-index
	// components together, so some natural index needs several terms.
	var multi []int
	forEachIndex([]int{3, 3, 3}, func(m []int) {
		if multi != nil {
			return
		}
		terms, err := x.Accessor().ToCompressed(m)
		require.NoError(t, err)
		if len(terms) > 1 {
			multi = append([]int(nil), m...)
		}
	})
	require.NotNil(t, multi)
	require.ErrorIs(t, x.Set(1, multi...), tensor.ErrNonCanonicalWrite)
}

func TestCompressedAccess(t *testing.T) {
	t.Parallel()
	x := zeros(t, tensor.Upper("x", 2), must(tensor.NewAntisymmetric(lowers(3, "a", "b")...)))
	require.NoError(t, x.SetAt(7, 1, 2))
	v, err := x.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	// component 2 of the pair is (1,2); reading (2,1) flips the sign.
	v, err = x.Get(1, 2, 1)
	require.NoError(t, err)
	require.Equal(t, -7.0, v)

	_, err = x.At(2, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
	require.ErrorIs(t, x.SetAt(1, 0), tensor.ErrOutOfRange)
}

func TestRelabelSharesStorage(t *testing.T) {
	t.Parallel()
	x := zeros(t, tensor.Upper("a", 3))
	y, err := x.Relabel([]tensor.Natural{tensor.Upper("a", 3)}, []tensor.Natural{tensor.Lower("b", 3)})
	require.NoError(t, err)
	require.NoError(t, y.Set(4, 2))
	v, err := x.Get(2)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	require.Equal(t, tensor.Covariant, y.Naturals()[0].Variance)

	x.Fill(1)
	require.Equal(t, []float64{1, 1, 1}, y.Data())
	require.Contains(t, x.String(), "^a[3]")
}

func TestScalarTensor(t *testing.T) {
	t.Parallel()
	s := zeros(t)
	require.NoError(t, s.Set(2.5))
	v, err := s.Get()
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	require.Equal(t, []float64{2.5}, s.Dense())
}

// SPDX-License-Identifier: MIT

package tensor_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

// TestProdContractOneIndex: prod^{ab}_d = t1^{ab}_c t2^c_d.
func TestProdContractOneIndex(t *testing.T) {
	t.Parallel()
	a, b, c, d := tensor.Upper("a", 3), tensor.Upper("b", 3), tensor.Lower("c", 3), tensor.Lower("d", 3)
	t1 := zeros(t, a, b, c)
	fillFunc(t, t1, func(m []int) float64 { return float64(9*m[0] + 3*m[1] + m[2]) })
	t2 := zeros(t, c.SwapCharacter(), d)
	fillFunc(t, t2, func(m []int) float64 { return float64(3*m[0] + m[1]) })

	prod := zeros(t, a, b, d)
	require.NoError(t, tensor.Prod(prod, t1, t2))

	forEachIndex([]int{3, 3, 3}, func(m []int) {
		base := float64(9*m[0] + 3*m[1])
		want := base*float64(9+3*m[2]) + float64(15+3*m[2])
		got, err := prod.Get(m...)
		require.NoError(t, err)
		require.Equal(t, want, got, "%v", m)
	})
	v, _ := prod.Get(0, 0, 0)
	require.Equal(t, 15.0, v)
	v, _ = prod.Get(2, 2, 2)
	require.Equal(t, 381.0, v)
}

// TestProdContractTwoIndices: prod^a_d = t1^a_{bc} t2^{bc}_d.
func TestProdContractTwoIndices(t *testing.T) {
	t.Parallel()
	a, b, c, d := tensor.Upper("a", 3), tensor.Lower("b", 3), tensor.Lower("c", 3), tensor.Lower("d", 3)
	t1 := zeros(t, a, b, c)
	fillFunc(t, t1, func(m []int) float64 { return float64(9*m[0] + 3*m[1] + m[2]) })
	t2 := zeros(t, b.Raised(), c.Raised(), d)
	fillFunc(t, t2, func(m []int) float64 { return float64(9*m[0] + 3*m[1] + m[2]) })

	prod := zeros(t, a, d)
	require.NoError(t, tensor.Prod(prod, t1, t2))
	require.Equal(t, []float64{
		612, 648, 684,
		1584, 1701, 1818,
		2556, 2754, 2952,
	}, prod.Data())
}

func TestProdSymmetricMatrixVector(t *testing.T) {
	t.Parallel()
	s := newTensor(t, []float64{1, 2, 3, 4, 5, 6}, must(tensor.NewSymmetric(tensor.Upper("a", 3), tensor.Upper("b", 3))))
	v := newTensor(t, []float64{1, 0, -1}, tensor.Lower("b", 3))
	out := zeros(t, tensor.Upper("a", 3))

	require.NoError(t, tensor.Prod(out, s, v))
	require.Equal(t, []float64{-2, -3, -3}, out.Data())

	// contraction order does not matter.
	require.NoError(t, tensor.Prod(out, v, s))
	require.Equal(t, []float64{-2, -3, -3}, out.Data())
}

func TestProdOutputMayAliasOperand(t *testing.T) {
	t.Parallel()
	s := newTensor(t, []float64{1, 2, 3, 4, 5, 6}, must(tensor.NewSymmetric(tensor.Upper("a", 3), tensor.Upper("b", 3))))
	x := newTensor(t, []float64{1, 0, -1}, tensor.Lower("b", 3))
	xa, err := x.Relabel([]tensor.Natural{tensor.Lower("b", 3)}, []tensor.Natural{tensor.Upper("a", 3)})
	require.NoError(t, err)

	require.NoError(t, tensor.Prod(xa, s, x))
	require.Equal(t, []float64{-2, -3, -3}, x.Data())
}

func TestProdIntoSymmetricOutput(t *testing.T) {
	t.Parallel()
	va := newTensor(t, []float64{1, 2, 3}, tensor.Upper("a", 3))
	vb := newTensor(t, []float64{1, 2, 3}, tensor.Upper("b", 3))
	out := zeros(t, must(tensor.NewSymmetric(tensor.Upper("a", 3), tensor.Upper("b", 3))))

	require.NoError(t, tensor.Prod(out, va, vb))
	require.Equal(t, []float64{1, 2, 3, 4, 6, 9}, out.Data())
	requireDense(t, []float64{1, 2, 3, 2, 4, 6, 3, 6, 9}, out, 0)
}

func TestProdWithIdentity(t *testing.T) {
	t.Parallel()
	delta := newTensor(t, nil, must(tensor.NewIdentity(tensor.Upper("a", 3), tensor.Lower("b", 3))))
	v := newTensor(t, []float64{4, 5, 6}, tensor.Upper("b", 3))
	out := zeros(t, tensor.Upper("a", 3))

	require.NoError(t, tensor.Prod(out, delta, v))
	require.Equal(t, []float64{4, 5, 6}, out.Data())
}

func TestProdAntisymmetricWedge(t *testing.T) {
	t.Parallel()
	// F_{ab} u^b for F = e0∧e1 (F_01 = 1 = -F_10).
	f := newTensor(t, []float64{1, 0, 0}, must(tensor.NewAntisymmetric(lowers(3, "a", "b")...)))
	u := newTensor(t, []float64{1, 1, 1}, tensor.Upper("b", 3))
	out := zeros(t, tensor.Lower("a", 3))

	require.NoError(t, tensor.Prod(out, f, u))
	require.Equal(t, []float64{1, -1, 0}, out.Data())
}

func TestProdErrors(t *testing.T) {
	t.Parallel()
	s := zeros(t, must(tensor.NewSymmetric(tensor.Upper("a", 3), tensor.Upper("b", 3))))
	out := zeros(t, tensor.Upper("a", 3))

	sameVariance := zeros(t, tensor.Upper("b", 3))
	require.ErrorIs(t, tensor.Prod(out, s, sameVariance), tensor.ErrIndexMismatch)
	require.ErrorIs(t, tensor.CheckCompatibility(s.Accessor(), sameVariance.Accessor()), tensor.ErrIndexMismatch)

	wrongExtent := zeros(t, tensor.Lower("b", 4))
	require.ErrorIs(t, tensor.Prod(out, s, wrongExtent), tensor.ErrIndexMismatch)

	v := zeros(t, tensor.Lower("b", 3))
	require.NoError(t, tensor.CheckCompatibility(s.Accessor(), v.Accessor()))

	stray := zeros(t, tensor.Upper("a", 3), tensor.Upper("z", 2))
	require.ErrorIs(t, tensor.Prod(stray, s, v), tensor.ErrIndexMismatch)

	missing := zeros(t, tensor.Upper("q", 3))
	require.ErrorIs(t, tensor.Prod(missing, s, v), tensor.ErrIndexMismatch)

	wrongOutVariance := zeros(t, tensor.Lower("a", 3))
	require.ErrorIs(t, tensor.Prod(wrongOutVariance, s, v), tensor.ErrIndexMismatch)

	implicit := zeros(t, must(tensor.NewIdentity(tensor.Upper("a", 3), tensor.Lower("c", 3))))
	w := zeros(t, tensor.Lower("c", 3))
	require.ErrorIs(t, tensor.Prod(implicit, s, w), tensor.ErrIndexMismatch)
	require.ErrorIs(t, tensor.Prod(implicit, zeros(t, tensor.Upper("a", 3)), zeros(t, tensor.Lower("c", 3))), tensor.ErrImplicitWrite)
}

func TestProdWorkersMatchSequential(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(3, 5))
	a := zeros(t, tensor.Upper("a", 5), must(tensor.NewSymmetric(lowers(5, "b", "c")...)))
	for i := range a.Data() {
		a.Data()[i] = rng.Float64()
	}
	b := zeros(t, tensor.Upper("b", 5), tensor.Upper("c", 5), tensor.Lower("d", 5))
	for i := range b.Data() {
		b.Data()[i] = rng.Float64()
	}

	seq := zeros(t, tensor.Upper("a", 5), tensor.Lower("d", 5))
	par := zeros(t, tensor.Upper("a", 5), tensor.Lower("d", 5))
	require.NoError(t, tensor.Prod(seq, a, b))
	require.NoError(t, tensor.Prod(par, a, b,
		tensor.WithWorkers(4),
		tensor.WithChunk(3),
		tensor.WithContext(context.Background()),
		tensor.WithLogger(tensor.NoopLogger()),
	))
	require.Equal(t, seq.Data(), par.Data())
}

func TestProdCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := zeros(t, tensor.Upper("a", 8))
	b := zeros(t, tensor.Upper("b", 8))
	out := zeros(t, tensor.Upper("a", 8), tensor.Upper("b", 8))

	err := tensor.Prod(out, a, b, tensor.WithWorkers(2), tensor.WithChunk(4), tensor.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestScale(t *testing.T) {
	t.Parallel()
	x := newTensor(t, []float64{1, -2, 3}, must(tensor.NewAntisymmetric(lowers(3, "a", "b")...)))
	tensor.Scale(x, 2)
	require.Equal(t, []float64{2, -4, 6}, x.Data())
}

func TestOptionsPanicOnInvalidValues(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { tensor.WithWorkers(0) })
	require.Panics(t, func() { tensor.WithChunk(0) })

	o := tensor.NewOptions(tensor.WithWorkers(3), tensor.WithLogger(nil))
	require.Equal(t, 3, o.Workers())
	require.Equal(t, tensor.DefaultChunk, o.Chunk())
	require.NotNil(t, o.Logger())
	require.NotNil(t, o.Context())
}

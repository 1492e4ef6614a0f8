// SPDX-License-Identifier: MIT
// Package tensor_test contains shared fixtures.

package tensor_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

// must unwraps a constructor result, panicking on error.
func must[K any](k K, err error) K {
	if err != nil {
		panic(err)
	}

	return k
}

// newTensor wraps data over kinds or fails the test.
func newTensor(t *testing.T, data []float64, kinds ...tensor.Kind) *tensor.Tensor[float64] {
	t.Helper()
	acc, err := tensor.NewAccessor(kinds...)
	require.NoError(t, err)
	out, err := tensor.New(acc, data)
	require.NoError(t, err)

	return out
}

// zeros allocates a tensor over kinds or fails the test.
func zeros(t *testing.T, kinds ...tensor.Kind) *tensor.Tensor[float64] {
	t.Helper()
	acc, err := tensor.NewAccessor(kinds...)
	require.NoError(t, err)

	return tensor.Zeros[float64](acc)
}

// fillFunc sets every natural component of a Full/Natural-only tensor to f(m).
func fillFunc(t *testing.T, x *tensor.Tensor[float64], f func(m []int) float64) {
	t.Helper()
	acc := x.Accessor()
	for c := 0; c < acc.Size(); c++ {
		m := acc.Representative(c)
		require.NoError(t, x.Set(f(m), m...))
	}
}

// requireDense compares the natural materialization of x with want.
func requireDense(t *testing.T, want []float64, x *tensor.Tensor[float64], tol float64) {
	t.Helper()
	got := x.Dense()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], tol, "component %d: got %v", i, got)
	}
}

func fmtIndex(m []int) string { return fmt.Sprint(m) }

func naturalExtents(k tensor.Kind) []int {
	ns := k.Naturals()
	out := make([]int, len(ns))
	for i, n := range ns {
		out[i] = n.Extent
	}

	return out
}

// forEachIndex visits every multi-index over extents in row-major order.
func forEachIndex(extents []int, fn func(m []int)) {
	total := 1
	for _, e := range extents {
		total *= e
	}
	m := make([]int, len(extents))
	for off := 0; off < total; off++ {
		rem := off
		for i := len(extents) - 1; i >= 0; i-- {
			m[i] = rem % extents[i]
			rem /= extents[i]
		}
		fn(m)
	}
}

// SPDX-License-Identifier: MIT
// Package csr_test contains shared fixtures.

package csr_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/csr"
	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

var (
	alpha = tensor.Upper("alpha", 3)
	beta  = tensor.Lower("beta", 3)
	gamma = tensor.Lower("gamma", 3)
)

// matrix3 returns a dense 3×3 tensor over beta, gamma with the given
// nonzeros.
func matrix3(t *testing.T, nz map[[2]int]float64) *tensor.Tensor[float64] {
	t.Helper()
	x := tensor.Zeros[float64](tensor.MustAccessor(beta, gamma))
	for at, v := range nz {
		require.NoError(t, x.Set(v, at[0], at[1]))
	}

	return x
}

// exampleDynamic holds nine nonzeros over alpha ⊗ beta ⊗ gamma.
func exampleDynamic(t *testing.T) *csr.Dynamic[float64] {
	t.Helper()
	d, err := csr.NewDynamic[float64](alpha, beta, gamma)
	require.NoError(t, err)
	require.NoError(t, d.PushBack(matrix3(t, map[[2]int]float64{{0, 1}: 1, {2, 1}: 2})))
	require.NoError(t, d.PushBack(matrix3(t, map[[2]int]float64{{0, 0}: 3, {0, 2}: 4, {2, 2}: 5})))
	require.NoError(t, d.PushBack(matrix3(t, map[[2]int]float64{{0, 2}: 6, {1, 1}: 7, {0, 1}: 8, {2, 2}: 9})))

	return d
}

func exampleCsr(t *testing.T) *csr.Csr[float64] {
	t.Helper()
	c, err := csr.Freeze(9, exampleDynamic(t))
	require.NoError(t, err)

	return c
}

func vector(t *testing.T, n tensor.Natural, data ...float64) *tensor.Tensor[float64] {
	t.Helper()
	x, err := tensor.New(tensor.MustAccessor(n), data)
	require.NoError(t, err)

	return x
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense kernels.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type, forcing the generic
// At-based conversion path inside kernels.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireAllClose asserts element-wise |a-b| <= tol.
func requireAllClose(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	for i, row := range want {
		require.Equal(t, len(row), got.Cols())
		for j, w := range row {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.LessOrEqualf(t, math.Abs(v-w), tol, "(%d,%d): got %v want %v", i, j, v, w)
		}
	}
}

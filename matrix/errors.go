// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (possibly wrapped with call-site
// context via %w); tests match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when no usable pivot exists during LU/Inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrRaggedRows is returned by NewFromRows when rows differ in length.
	ErrRaggedRows = errors.New("matrix: ragged rows")
)

// operation tags for matrixErrorf.
const (
	opMul            = "Mul"
	opLU             = "LU"
	opSolve          = "Solve"
	opInverse        = "Inverse"
	opOrthonormalize = "Orthonormalize"
	opFromRows       = "NewFromRows"
)

// matrixErrorf prefixes err with an operation tag, keeping the sentinel reachable.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

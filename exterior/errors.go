// SPDX-License-Identifier: MIT
// Package exterior: sentinel error set.

package exterior

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension reports simplices, chains or forms whose dimensions do not
	// line up: a vector of the wrong length or with entries outside
	// {-1, 0, 1}, chains mixing simplex dimensions, a tensor that is not a
	// form over the expected extent.
	ErrDimension = errors.New("exterior: dimension mismatch")

	// ErrDuplicate reports a chain holding the same oriented simplex twice.
	ErrDuplicate = errors.New("exterior: duplicate simplex")

	// ErrNotBoundary reports a cochain whose chain is not the boundary of a
	// single simplex.
	ErrNotBoundary = errors.New("exterior: chain is not a simplex boundary")
)

func exteriorErrorf(tag string, err error) error {
	return fmt.Errorf("exterior.%s: %w", tag, err)
}

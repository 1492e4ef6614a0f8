// SPDX-License-Identifier: MIT

package young

import (
	"errors"
	"fmt"
)

var (
	// ErrShape reports a malformed tableau: rows not non-increasing, empty
	// rows, a total that differs from the requested dimension, or a filling
	// that is not standard.
	ErrShape = errors.New("young: invalid tableau shape")

	// ErrExtent reports a non-positive natural extent.
	ErrExtent = errors.New("young: extent must be > 0")

	// ErrProjectorRank is returned when the numerically computed projector
	// rank disagrees with the hook-content dimension.
	ErrProjectorRank = errors.New("young: projector rank mismatch")
)

func youngErrorf(tag string, err error) error {
	return fmt.Errorf("young.%s: %w", tag, err)
}

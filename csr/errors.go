// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.
// Layout checks run before any storage is written; callers match with
// errors.Is. Products over mismatched tensors wrap tensor.ErrIndexMismatch.

package csr

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityMismatch reports a freeze whose declared nonzero count
	// differs from the number of nonzeros actually accumulated.
	ErrCapacityMismatch = errors.New("csr: capacity mismatch")

	// ErrInvalidLayout reports inconsistent CSR arrays: a coalesced index
	// that does not start at 0 or decreases, index arrays whose lengths
	// disagree with the values, a tail coordinate out of range, tails not
	// ascending within a head slot, or a head that is implicit or already
	// complete.
	ErrInvalidLayout = errors.New("csr: invalid layout")

	// ErrCorrupt reports a serialized CSR that cannot be decoded: bad magic,
	// unknown codec, truncated block or checksum mismatch.
	ErrCorrupt = errors.New("csr: corrupt data")
)

// csrErrorf prefixes err with an operation tag, keeping the sentinel reachable.
func csrErrorf(tag string, err error) error {
	return fmt.Errorf("csr.%s: %w", tag, err)
}

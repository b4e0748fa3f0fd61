// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rttex

package rttex

import "fmt"

const maxInt = int(^uint(0) >> 1)

// pixelDataLength returns the RGBA8 byte count for a width x height texture.
func pixelDataLength(width, height int32) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	// both factors are below 2^31, so the product fits uint64
	n := uint64(width) * uint64(height) * 4
	if n > uint64(maxInt) {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}

	// #nosec G115 -- bounds checked above.
	return int(n), nil
}

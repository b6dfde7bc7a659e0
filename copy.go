// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// appendBackRef appends length bytes copied from dist bytes back in out.
// If dist < length, source and destination overlap; copy must be byte-by-byte so that
// repeated bytes (RLE) are correct. A single built-in copy would read bytes that
// have not been written yet.
func appendBackRef(out []byte, dist, length int) ([]byte, error) {
	start := len(out) - dist
	if dist < 1 || start < 0 {
		return out, ErrLookBehindUnderrun
	}

	if dist >= length {
		return append(out, out[start:start+length]...), nil
	}

	for i := range length {
		out = append(out, out[start+i])
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// bitReader reads DEFLATE bit fields LSB first. It never loads a byte before
// a bit of it is needed, so pos is always the count of input bytes touched.
type bitReader struct {
	src   []byte
	pos   int
	bits  uint64
	nbits uint
}

// readBits returns the next n bits (n <= 32).
func (r *bitReader) readBits(n uint) (uint32, error) {
	for r.nbits < n {
		if r.pos >= len(r.src) {
			return 0, ErrInputOverrun
		}
		r.bits |= uint64(r.src[r.pos]) << r.nbits
		r.pos++
		r.nbits += 8
	}

	v := uint32(r.bits & (1<<n - 1)) //nolint:gosec // G115: n <= 32
	r.bits >>= n
	r.nbits -= n

	return v, nil
}

// readBit returns the next single bit.
func (r *bitReader) readBit() (uint32, error) {
	if r.nbits == 0 {
		if r.pos >= len(r.src) {
			return 0, ErrInputOverrun
		}
		r.bits = uint64(r.src[r.pos])
		r.pos++
		r.nbits = 8
	}

	v := uint32(r.bits & 1)
	r.bits >>= 1
	r.nbits--

	return v, nil
}

// alignToByte discards the rest of the current partial byte. After it the
// buffer is empty because fields never leave a whole byte unconsumed.
func (r *bitReader) alignToByte() {
	r.bits = 0
	r.nbits = 0
}

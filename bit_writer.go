// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// bitWriter packs DEFLATE bit fields LSB first into a growing byte slice.
type bitWriter struct {
	out   []byte
	bits  uint64
	nbits uint
}

// writeBits appends the low n bits of v (n <= 32).
func (w *bitWriter) writeBits(v uint32, n uint) {
	w.bits |= uint64(v) << w.nbits
	w.nbits += n
	for w.nbits >= 8 {
		w.out = append(w.out, byte(w.bits))
		w.bits >>= 8
		w.nbits -= 8
	}
}

// writeCode appends one Huffman code.
func (w *bitWriter) writeCode(c huffmanCode) {
	w.writeBits(uint32(c.code), uint(c.len))
}

// alignToByte pads the pending partial byte with zero bits.
func (w *bitWriter) alignToByte() {
	if w.nbits > 0 {
		w.out = append(w.out, byte(w.bits))
		w.bits = 0
		w.nbits = 0
	}
}

// writeBytes appends raw bytes; the writer must be byte aligned.
func (w *bitWriter) writeBytes(p []byte) {
	w.out = append(w.out, p...)
}

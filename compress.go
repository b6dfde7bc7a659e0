// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// Operation names carried by Fault.Op, log entries and metric labels.
const (
	opDeflate = "deflate"
	opInflate = "inflate"
)

// Compress encodes src as a raw DEFLATE stream at the normal effort level and
// returns it in a freshly allocated slice. An engine fault is unrecoverable and
// panics with a *Fault; use Deflate to receive it as an error instead.
func Compress(src []byte) []byte {
	out, err := Deflate(src, nil)
	if err != nil {
		panic(err)
	}

	return out
}

// Deflate encodes src as a raw DEFLATE stream at the normal effort level.
// opts may be nil (native engine). Errors are *Fault values wrapping a sentinel.
func Deflate(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	eng, err := engineFor(opts.Engine)
	if err != nil {
		return nil, newFault(opDeflate, err)
	}

	out, err := eng.deflate(src, effortNormal)
	if err != nil {
		return nil, newFault(opDeflate, err)
	}

	return out, nil
}

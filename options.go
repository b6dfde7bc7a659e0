// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// Engine selects the implementation behind Deflate and Inflate.
// Every engine reads and writes raw DEFLATE, so streams are interchangeable.
type Engine int

const (
	// EngineNative is the in-package encoder and decoder.
	EngineNative Engine = iota
	// EngineKlauspost delegates to github.com/klauspost/compress/flate.
	EngineKlauspost
)

// String returns the engine name.
func (e Engine) String() string {
	switch e {
	case EngineNative:
		return "native"
	case EngineKlauspost:
		return "klauspost"
	default:
		return "unknown"
	}
}

// CompressOptions configures compression. The effort level is fixed to normal.
type CompressOptions struct {
	// Engine that produces the stream (default EngineNative).
	Engine Engine
}

// DefaultCompressOptions returns options for the native engine.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Engine: EngineNative}
}

// DecompressOptions configures decompression.
type DecompressOptions struct {
	// Engine that parses the stream (default EngineNative).
	Engine Engine
	// MaxOutputSize limits the decoded size (0 = no limit).
	MaxOutputSize int
	// SizeHint preallocates decoder scratch when the decoded size is roughly known (0 = guess).
	SizeHint int
}

// DefaultDecompressOptions returns options for the native engine with no output limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{Engine: EngineNative}
}

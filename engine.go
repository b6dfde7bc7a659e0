// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// codecEngine is the internal boundary both public directions delegate to.
// Implementations return freshly allocated, exactly sized buffers and keep no
// reference to them.
type codecEngine interface {
	deflate(src []byte, level effortLevel) ([]byte, error)
	inflate(src []byte, opts *DecompressOptions) (out []byte, nRead int, err error)
}

// engineFor resolves an Engine selector.
func engineFor(e Engine) (codecEngine, error) {
	switch e {
	case EngineNative:
		return nativeEngine{}, nil
	case EngineKlauspost:
		return klauspostEngine{}, nil
	default:
		return nil, ErrUnknownEngine
	}
}

// nativeEngine is the in-package encoder and decoder.
type nativeEngine struct{}

func (nativeEngine) deflate(src []byte, level effortLevel) ([]byte, error) {
	return deflateLevel(src, level)
}

func (nativeEngine) inflate(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	return inflateCore(src, opts.MaxOutputSize, opts.SizeHint)
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	kflate "github.com/klauspost/compress/flate"
)

// klauspostEngine delegates to github.com/klauspost/compress/flate, which also
// speaks raw DEFLATE.
type klauspostEngine struct{}

// klauspostLevel maps an effort level onto the library's level scale.
func klauspostLevel(level effortLevel) int {
	switch level {
	case effortNone:
		return kflate.HuffmanOnly
	case effortFast:
		return kflate.BestSpeed
	case effortBest:
		return kflate.BestCompression
	default:
		return kflate.DefaultCompression
	}
}

func (klauspostEngine) deflate(src []byte, level effortLevel) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(src)/4 + 16)

	w, err := kflate.NewWriter(&buf, klauspostLevel(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompressInternal, err)
	}

	if _, err := w.Write(src); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompressInternal, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompressInternal, err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func (klauspostEngine) inflate(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	// bytes.Reader is an io.ByteReader, so the decompressor never reads past the final block.
	in := bytes.NewReader(src)
	r := kflate.NewReader(in)
	defer r.Close()

	var body io.Reader = r
	if opts.MaxOutputSize > 0 {
		body = io.LimitReader(r, int64(opts.MaxOutputSize)+1)
	}

	var buf bytes.Buffer
	if opts.SizeHint > 0 {
		buf.Grow(opts.SizeHint)
	}

	if _, err := buf.ReadFrom(body); err != nil {
		return nil, 0, klauspostInflateError(err)
	}

	if opts.MaxOutputSize > 0 && buf.Len() > opts.MaxOutputSize {
		return nil, 0, ErrOutputTooLarge
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, len(src) - in.Len(), nil
}

// klauspostInflateError maps library errors onto this package's sentinels.
func klauspostInflateError(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrInputOverrun, err)
	}

	// kflate.CorruptInputError and anything else the reader reports.
	return fmt.Errorf("%w: %w", ErrCorruptStream, err)
}

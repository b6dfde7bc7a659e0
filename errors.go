// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

import (
	"errors"
	"fmt"
)

// Sentinel errors for decompression and compression.
var (
	// ErrEmptyInput is returned when Inflate is given no bytes at all.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder needs bits past the end of input (truncated stream).
	ErrInputOverrun = errors.New("input overrun")
	// ErrInvalidBlockType is returned for the reserved block type 3.
	ErrInvalidBlockType = errors.New("invalid block type")
	// ErrInvalidCodeLengths is returned when a dynamic header describes an unusable Huffman code.
	ErrInvalidCodeLengths = errors.New("invalid huffman code lengths")
	// ErrInvalidSymbol is returned when a decoded symbol is not a valid code or is out of range.
	ErrInvalidSymbol = errors.New("invalid huffman symbol")
	// ErrStoredLengthMismatch is returned when a stored block LEN does not match its NLEN complement.
	ErrStoredLengthMismatch = errors.New("stored block length mismatch")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrOutputTooLarge is returned when decoded data exceeds DecompressOptions.MaxOutputSize.
	ErrOutputTooLarge = errors.New("output exceeds MaxOutputSize")
	// ErrCorruptStream is returned by engines that report corruption without a finer cause.
	ErrCorruptStream = errors.New("corrupt stream")
	// ErrUnknownEngine is returned when options name an Engine that does not exist.
	ErrUnknownEngine = errors.New("unknown engine")
	// ErrInvalidConfig is returned by NewCodec for out-of-range Config values.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrCompressInternal is returned when the compressor hits an internal invariant violation
	// (e.g. a used symbol without a code). Callers can use errors.Is(err, flate.ErrCompressInternal).
	ErrCompressInternal = errors.New("internal compressor error")
)

// FaultKind classifies a Fault.
type FaultKind int

const (
	// FaultCorruptStream covers malformed, truncated or otherwise undecodable input.
	FaultCorruptStream FaultKind = iota + 1
	// FaultOutputLimit means decoding stopped at the configured output limit.
	FaultOutputLimit
	// FaultEngine covers engine-internal failures that input data cannot explain.
	FaultEngine
)

// String returns the label used in logs and metrics.
func (k FaultKind) String() string {
	switch k {
	case FaultCorruptStream:
		return "corrupt_stream"
	case FaultOutputLimit:
		return "output_limit"
	case FaultEngine:
		return "engine"
	default:
		return "unknown"
	}
}

// Fault is the single error type produced by the codec. Compress and Decompress
// panic with a *Fault; Deflate, Inflate and Codec return it.
type Fault struct {
	Err  error
	Op   string
	Kind FaultKind
}

func (f *Fault) Error() string {
	return fmt.Sprintf("flate: %s: [%v] %v", f.Op, f.Kind, f.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (f *Fault) Unwrap() error {
	return f.Err
}

// newFault wraps err for operation op, classifying it by sentinel.
func newFault(op string, err error) *Fault {
	var f *Fault
	if errors.As(err, &f) {
		return f
	}

	kind := FaultCorruptStream
	switch {
	case errors.Is(err, ErrOutputTooLarge):
		kind = FaultOutputLimit
	case errors.Is(err, ErrCompressInternal), errors.Is(err, ErrUnknownEngine):
		kind = FaultEngine
	case op == opDeflate:
		// Anything an encoder reports is an engine problem; its input cannot be malformed.
		kind = FaultEngine
	}

	return &Fault{Op: op, Kind: kind, Err: err}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

/*
Package flate implements whole-buffer DEFLATE compression and decompression.

The encoded form is a raw DEFLATE stream (RFC 1951) with no zlib or gzip
framing and no checksum, so any conforming inflater can read it. The encoder
combines a hash-chain LZ77 match finder over a 32 KiB window with per-block
choice of stored, fixed-Huffman or dynamic-Huffman coding. Effort is fixed at
the normal level (128 match candidates per position, lazy matching).

Both directions are stateless and safe for concurrent use. Every call returns a
freshly allocated slice sized exactly to its contents; the input is never
modified.

# Trusted buffers

Compress and Decompress are meant for buffers the caller produced itself. A
fault (corrupt or truncated stream, engine invariant violation) is treated as
unrecoverable and panics with a *Fault:

	packed := flate.Compress(data)
	data = flate.Decompress(packed)

# Untrusted buffers

Deflate, Inflate and InflateN return the same *Fault as an error. Fault.Kind
separates corrupt input from engine failures, and errors.Is reaches the
underlying sentinel:

	out, err := flate.Inflate(packed, &flate.DecompressOptions{MaxOutputSize: 1 << 20})
	if errors.Is(err, flate.ErrInputOverrun) {
		// truncated stream
	}

To walk back-to-back streams, InflateN also reports how many input bytes the
first stream used:

	out, nRead, err := flate.InflateN(packed, nil)
	// advance: packed = packed[nRead:]

# Engines

Options select the engine: EngineNative (default) or EngineKlauspost, which
delegates to github.com/klauspost/compress/flate. Streams are interchangeable.

# Codec

A Codec bundles an engine, an output limit, a zap logger and Prometheus
metrics for callers that want observability:

	metrics := flate.NewMetrics(flate.MetricsConfig{Namespace: "app"})
	_ = metrics.Register(nil)

	codec, err := flate.NewCodec(flate.Config{Logger: logger, Metrics: metrics})
	packed, err := codec.Compress(data)
*/
package flate

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Config configures a Codec.
type Config struct {
	// Logger receives one debug entry per operation and a warning per fault.
	// If nil, logging is disabled.
	Logger *zap.Logger
	// Metrics, if set, counts operations, bytes and faults.
	Metrics *Metrics
	// Engine used in both directions (default EngineNative).
	Engine Engine
	// MaxOutputSize limits decoded size (0 = no limit).
	MaxOutputSize int
}

// DefaultConfig returns a Config for the native engine with logging and metrics disabled.
func DefaultConfig() Config {
	return Config{Engine: EngineNative}
}

// Codec is a pre-configured compressor/decompressor pair. It holds no per-call
// state and is safe for concurrent use.
type Codec struct {
	logger  *zap.Logger
	metrics *Metrics
	copts   CompressOptions
	dopts   DecompressOptions
}

// NewCodec creates a Codec from cfg.
func NewCodec(cfg Config) (*Codec, error) {
	if _, err := engineFor(cfg.Engine); err != nil {
		return nil, err
	}

	if cfg.MaxOutputSize < 0 {
		return nil, fmt.Errorf("%w: max output size must not be negative", ErrInvalidConfig)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Codec{
		logger:  logger.With(zap.Stringer("engine", cfg.Engine)),
		metrics: cfg.Metrics,
		copts:   CompressOptions{Engine: cfg.Engine},
		dopts:   DecompressOptions{Engine: cfg.Engine, MaxOutputSize: cfg.MaxOutputSize},
	}, nil
}

// Compress encodes src like Deflate with the codec's engine.
func (c *Codec) Compress(src []byte) ([]byte, error) {
	opts := c.copts
	out, err := Deflate(src, &opts)
	c.record(opDeflate, len(src), out, err)

	return out, err
}

// Decompress decodes src like Inflate with the codec's engine and output limit.
func (c *Codec) Decompress(src []byte) ([]byte, error) {
	opts := c.dopts
	out, err := Inflate(src, &opts)
	c.record(opInflate, len(src), out, err)

	return out, err
}

// record logs and counts one finished operation.
func (c *Codec) record(op string, in int, out []byte, err error) {
	if err != nil {
		var f *Fault
		kind := FaultEngine
		if errors.As(err, &f) {
			kind = f.Kind
		}

		c.logger.Warn("codec fault",
			zap.String("operation", op),
			zap.Int("input_bytes", in),
			zap.Stringer("kind", kind),
			zap.Error(err),
		)
		if c.metrics != nil {
			c.metrics.observeFault(op, kind)
		}

		return
	}

	if ce := c.logger.Check(zap.DebugLevel, op); ce != nil {
		ce.Write(
			zap.Int("input_bytes", in),
			zap.Int("output_bytes", len(out)),
			zap.Float64("ratio", ratio(len(out), in)),
		)
	}

	if c.metrics != nil {
		c.metrics.observe(op, in, len(out))
	}
}

// ratio returns num/denom, or 0 for an empty denominator.
func ratio(num, denom int) float64 {
	if denom == 0 {
		return 0
	}

	return float64(num) / float64(denom)
}

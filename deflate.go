// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// deflater holds state for compressing a single input buffer.
type deflater struct {
	src    []byte
	params effortParams
	dict   *slidingWindowDict

	tokens     []token
	blockStart int // first input byte covered by the pending block
	covered    int // input bytes covered by emitted tokens

	w bitWriter
}

// deflateLevel compresses src into a raw DEFLATE stream at the given effort level.
// The returned slice is freshly allocated and sized exactly to the stream.
func deflateLevel(src []byte, level effortLevel) ([]byte, error) {
	d := deflater{
		src:    src,
		params: level.params(),
		tokens: make([]token, 0, min(maxBlockTokens, len(src)+1)),
	}
	d.w.out = make([]byte, 0, len(src)/4+16)

	if d.params.maxChain > 0 && len(src) >= minMatchLen {
		d.dict = getWindowDict()
		defer putWindowDict(d.dict)
	}

	var err error
	switch {
	case d.dict == nil:
		err = d.parseLiterals()
	case d.params.lazy:
		err = d.parseLazy()
	default:
		err = d.parseGreedy()
	}
	if err != nil {
		return nil, err
	}

	if err := d.flushBlock(true); err != nil {
		return nil, err
	}
	d.w.alignToByte()

	// Hand back an exactly sized buffer; the scratch slice is dropped here.
	out := make([]byte, len(d.w.out))
	copy(out, d.w.out)

	return out, nil
}

// parseLiterals emits every byte as a literal (Huffman-only coding).
func (d *deflater) parseLiterals() error {
	for _, b := range d.src {
		if err := d.emitLiteral(b); err != nil {
			return err
		}
	}

	return nil
}

// parseGreedy takes the first acceptable match at each position.
func (d *deflater) parseGreedy() error {
	src := d.src
	for pos := 0; pos < len(src); {
		matchLen, matchDist := d.dict.findBestMatch(src, pos, d.params.maxChain, d.params.niceLen, 0)
		d.dict.insert(src, pos)

		if matchLen < minMatchLen {
			if err := d.emitLiteral(src[pos]); err != nil {
				return err
			}
			pos++
			continue
		}

		if err := d.emitMatch(matchLen, matchDist); err != nil {
			return err
		}
		d.dict.insertRange(src, pos+1, pos+matchLen)
		pos += matchLen
	}

	return nil
}

// parseLazy defers every match by one position and keeps it only if the next
// position does not start a longer one.
func (d *deflater) parseLazy() error {
	src := d.src
	p := d.params

	var (
		prevLen, prevDist int
		havePrev          bool
	)

	for pos := 0; pos < len(src); {
		curLen, curDist := 0, 0
		if !havePrev || prevLen < p.maxLazy {
			chain := p.maxChain
			if havePrev && p.goodLen > 0 && prevLen >= p.goodLen {
				chain = max(chain>>2, 1)
			}
			curLen, curDist = d.dict.findBestMatch(src, pos, chain, p.niceLen, prevLen)
		}
		d.dict.insert(src, pos)

		if havePrev && prevLen >= minMatchLen && prevLen >= curLen {
			// The pending match started one byte back and wins.
			if err := d.emitMatch(prevLen, prevDist); err != nil {
				return err
			}
			end := pos - 1 + prevLen
			d.dict.insertRange(src, pos+1, end)
			pos = end
			havePrev = false
			prevLen = 0
			continue
		}

		if havePrev {
			if err := d.emitLiteral(src[pos-1]); err != nil {
				return err
			}
		}

		prevLen, prevDist = curLen, curDist
		havePrev = true
		pos++
	}

	// A pending position at the very end cannot hold a match of minMatchLen.
	if havePrev {
		if prevLen >= minMatchLen {
			return d.emitMatch(prevLen, prevDist)
		}
		return d.emitLiteral(src[len(src)-1])
	}

	return nil
}

// emitLiteral appends a literal token, flushing a full block.
func (d *deflater) emitLiteral(b byte) error {
	d.tokens = append(d.tokens, token{litLen: uint16(b)})
	d.covered++

	return d.maybeFlush()
}

// emitMatch appends a back-reference token, flushing a full block.
func (d *deflater) emitMatch(length, dist int) error {
	if length < minMatchLen || length > maxMatchLen || dist < 1 || dist > windowSize {
		return ErrCompressInternal
	}

	d.tokens = append(d.tokens, token{
		litLen: uint16(length), //nolint:gosec // G115: checked above
		dist:   uint16(dist),   //nolint:gosec // G115: checked above
	})
	d.covered += length

	return d.maybeFlush()
}

func (d *deflater) maybeFlush() error {
	if len(d.tokens) < maxBlockTokens {
		return nil
	}

	return d.flushBlock(false)
}

// flushBlock writes the pending tokens as one block.
func (d *deflater) flushBlock(final bool) error {
	if d.covered > len(d.src) {
		return ErrCompressInternal
	}

	if err := writeBlock(&d.w, d.tokens, d.src[d.blockStart:d.covered], final); err != nil {
		return err
	}

	d.tokens = d.tokens[:0]
	d.blockStart = d.covered

	return nil
}

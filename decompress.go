// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// Decompress decodes a raw DEFLATE stream produced by Compress and returns the
// original bytes in a freshly allocated slice. Input is trusted: a malformed or
// truncated stream panics with a *Fault. Use Inflate to get the fault as an error.
func Decompress(src []byte) []byte {
	out, err := Inflate(src, nil)
	if err != nil {
		panic(err)
	}

	return out
}

// Inflate decodes a raw DEFLATE stream. opts may be nil (native engine, no output limit).
// Bytes after the final block are ignored. Errors are *Fault values wrapping a sentinel.
func Inflate(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := InflateN(src, opts)
	return out, err
}

// InflateN is like Inflate and also returns the number of input bytes consumed (nRead),
// so back-to-back streams can be walked. nRead is 0 on error.
func InflateN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	eng, err := engineFor(opts.Engine)
	if err != nil {
		return nil, 0, newFault(opInflate, err)
	}

	out, nRead, err := eng.inflate(src, opts)
	if err != nil {
		return nil, 0, newFault(opInflate, err)
	}

	return out, nRead, nil
}

// Fixed Huffman decoders are identical for every block.
var fixedLitLenDecoder, fixedDistDecoder = buildFixedDecoders()

func buildFixedDecoders() (*huffmanDecoder, *huffmanDecoder) {
	lit, dist := &huffmanDecoder{}, &huffmanDecoder{}
	if err := lit.init(fixedLitLenLengths()); err != nil {
		panic(err)
	}
	if err := dist.init(fixedDistLengths()); err != nil {
		panic(err)
	}

	return lit, dist
}

// inflater holds state for decoding a single raw DEFLATE stream.
type inflater struct {
	r        bitReader
	out      []byte
	maxOut   int // 0 = unlimited
	lit      huffmanDecoder
	dist     huffmanDecoder
	codeLens huffmanDecoder
}

// inflateCore decodes src up to and including the final block. It returns the
// decoded bytes (exactly sized) and the number of input bytes consumed; bytes
// after the final block are left alone.
func inflateCore(src []byte, maxOut, sizeHint int) (out []byte, inConsumed int, err error) {
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	capHint := sizeHint
	if capHint <= 0 {
		capHint = len(src) * 4
	}
	if maxOut > 0 {
		capHint = min(capHint, maxOut)
	}

	f := inflater{
		r:      bitReader{src: src},
		out:    make([]byte, 0, capHint),
		maxOut: maxOut,
	}

	for {
		final, err := f.r.readBits(1)
		if err != nil {
			return nil, 0, err
		}

		blockType, err := f.r.readBits(2)
		if err != nil {
			return nil, 0, err
		}

		switch blockType {
		case blockStored:
			err = f.storedBlock()
		case blockFixed:
			err = f.huffmanBlock(fixedLitLenDecoder, fixedDistDecoder)
		case blockDynamic:
			if err = f.readDynamicHeader(); err == nil {
				err = f.huffmanBlock(&f.lit, &f.dist)
			}
		default:
			err = ErrInvalidBlockType
		}
		if err != nil {
			return nil, 0, err
		}

		if final == 1 {
			break
		}
	}

	out = make([]byte, len(f.out))
	copy(out, f.out)

	return out, f.r.pos, nil
}

// storedBlock copies one uncompressed block.
func (f *inflater) storedBlock() error {
	f.r.alignToByte()

	n, err := f.r.readBits(16)
	if err != nil {
		return err
	}

	nn, err := f.r.readBits(16)
	if err != nil {
		return err
	}

	if n != ^nn&0xffff {
		return ErrStoredLengthMismatch
	}

	// readBits leaves no buffered whole bytes, so r.pos is the payload start.
	start := f.r.pos
	if start+int(n) > len(f.r.src) {
		return ErrInputOverrun
	}
	if err := f.grow(int(n)); err != nil {
		return err
	}

	f.out = append(f.out, f.r.src[start:start+int(n)]...)
	f.r.pos += int(n)

	return nil
}

// readDynamicHeader reads the code-length code and both main code sets.
func (f *inflater) readDynamicHeader() error {
	v, err := f.r.readBits(14)
	if err != nil {
		return err
	}

	numLitLen := int(v&0x1f) + 257
	numDist := int(v>>5&0x1f) + 1
	numCodeLen := int(v>>10) + 4
	if numLitLen > numLitLenCodes || numDist > numDistCodes {
		return ErrInvalidCodeLengths
	}

	var clens [numCodeLenCodes]uint8
	for i := range numCodeLen {
		l, err := f.r.readBits(3)
		if err != nil {
			return err
		}
		clens[codeLenOrder[i]] = uint8(l) //nolint:gosec // G115: 3 bits
	}

	if err := f.codeLens.init(clens[:]); err != nil {
		return err
	}

	lengths := make([]uint8, numLitLen+numDist)
	for i := 0; i < len(lengths); {
		sym, err := f.codeLens.decode(&f.r)
		if err != nil {
			return err
		}

		if sym < codeRepeatPrev {
			lengths[i] = uint8(sym) //nolint:gosec // G115: sym < 16
			i++
			continue
		}

		var (
			value  uint8
			repeat uint32
		)
		switch sym {
		case codeRepeatPrev:
			if i == 0 {
				return ErrInvalidCodeLengths
			}
			value = lengths[i-1]
			repeat, err = f.r.readBits(2)
			repeat += 3
		case codeRepeatZero3:
			repeat, err = f.r.readBits(3)
			repeat += 3
		default:
			repeat, err = f.r.readBits(7)
			repeat += 11
		}
		if err != nil {
			return err
		}

		if i+int(repeat) > len(lengths) {
			return ErrInvalidCodeLengths
		}
		for range repeat {
			lengths[i] = value
			i++
		}
	}

	if lengths[endOfBlock] == 0 {
		return ErrInvalidCodeLengths
	}

	if err := f.lit.init(lengths[:numLitLen]); err != nil {
		return err
	}

	return f.dist.init(lengths[numLitLen:])
}

// huffmanBlock decodes symbols until the end-of-block code.
func (f *inflater) huffmanBlock(lit, dist *huffmanDecoder) error {
	for {
		sym, err := lit.decode(&f.r)
		if err != nil {
			return err
		}

		switch {
		case sym < endOfBlock:
			if err := f.grow(1); err != nil {
				return err
			}
			f.out = append(f.out, byte(sym))
			continue

		case sym == endOfBlock:
			return nil

		case sym-257 >= len(lengthBase):
			return ErrInvalidSymbol
		}

		lc := sym - 257
		extra, err := f.r.readBits(uint(lengthExtra[lc]))
		if err != nil {
			return err
		}
		length := int(lengthBase[lc]) + int(extra)

		dc, err := dist.decode(&f.r)
		if err != nil {
			return err
		}
		if dc >= numDistCodes {
			return ErrInvalidSymbol
		}

		extra, err = f.r.readBits(uint(distExtra[dc]))
		if err != nil {
			return err
		}
		distance := int(distBase[dc]) + int(extra)

		if err := f.grow(length); err != nil {
			return err
		}
		if f.out, err = appendBackRef(f.out, distance, length); err != nil {
			return err
		}
	}
}

// grow checks that n more output bytes stay within the configured limit.
func (f *inflater) grow(n int) error {
	if f.maxOut > 0 && len(f.out)+n > f.maxOut {
		return ErrOutputTooLarge
	}

	return nil
}

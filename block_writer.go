// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// token is one parse step: a literal byte (dist == 0) or a back-reference.
type token struct {
	litLen uint16 // literal byte value, or match length 3..258
	dist   uint16 // match distance 1..32768, 0 for literals
}

// Fixed Huffman codes are identical for every block.
var (
	fixedLitLenLens  = fixedLitLenLengths()
	fixedDistLens    = fixedDistLengths()
	fixedLitLenCodes = canonicalCodes(fixedLitLenLens)
	fixedDistCodes   = canonicalCodes(fixedDistLens)
)

// blockStats holds symbol frequencies for one block.
type blockStats struct {
	litLen [numLitLenCodes]uint32
	dist   [numDistCodes]uint32
}

// collect counts symbol frequencies of tokens, including the end-of-block symbol.
func (s *blockStats) collect(tokens []token) {
	*s = blockStats{}
	for _, t := range tokens {
		if t.dist == 0 {
			s.litLen[t.litLen]++
			continue
		}
		s.litLen[257+int(lengthCodeTable[t.litLen])]++
		s.dist[distCode(int(t.dist))]++
	}
	s.litLen[endOfBlock]++
}

// dataBits returns the cost of the block body under the given code lengths.
func (s *blockStats) dataBits(litLenLens, distLens []uint8) int {
	total := 0
	for sym, f := range s.litLen {
		if f == 0 {
			continue
		}
		n := int(litLenLens[sym])
		if sym > endOfBlock {
			n += int(lengthExtra[sym-257])
		}
		total += int(f) * n
	}

	for code, f := range s.dist {
		if f == 0 {
			continue
		}
		total += int(f) * (int(distLens[code]) + int(distExtra[code]))
	}

	return total
}

// codeLenSymbol is one run-length encoded entry of a dynamic header.
type codeLenSymbol struct {
	sym   uint8
	extra uint8
}

// dynamicHeader is a fully prepared dynamic-Huffman block header.
type dynamicHeader struct {
	litLenLens  []uint8
	distLens    []uint8
	litLenCodes []huffmanCode
	distCodes   []huffmanCode

	numLitLen  int
	numDist    int
	numCodeLen int

	codeLenLens  []uint8
	codeLenCodes []huffmanCode
	symbols      []codeLenSymbol
}

// newDynamicHeader builds code lengths for stats and run-length encodes them.
func newDynamicHeader(stats *blockStats) *dynamicHeader {
	h := &dynamicHeader{
		litLenLens: buildCodeLengths(stats.litLen[:], maxCodeBits),
		distLens:   buildCodeLengths(stats.dist[:], maxCodeBits),
	}
	h.litLenCodes = canonicalCodes(h.litLenLens)
	h.distCodes = canonicalCodes(h.distLens)

	h.numLitLen = numLitLenCodes
	for h.numLitLen > 257 && h.litLenLens[h.numLitLen-1] == 0 {
		h.numLitLen--
	}
	h.numDist = numDistCodes
	for h.numDist > 1 && h.distLens[h.numDist-1] == 0 {
		h.numDist--
	}

	lengths := make([]uint8, 0, h.numLitLen+h.numDist)
	lengths = append(lengths, h.litLenLens[:h.numLitLen]...)
	lengths = append(lengths, h.distLens[:h.numDist]...)
	h.symbols = runLengthEncode(lengths)

	var freq [numCodeLenCodes]uint32
	for _, s := range h.symbols {
		freq[s.sym]++
	}
	h.codeLenLens = buildCodeLengths(freq[:], maxCodeLenBits)
	h.codeLenCodes = canonicalCodes(h.codeLenLens)

	h.numCodeLen = numCodeLenCodes
	for h.numCodeLen > 4 && h.codeLenLens[codeLenOrder[h.numCodeLen-1]] == 0 {
		h.numCodeLen--
	}

	return h
}

// runLengthEncode compresses a code length sequence with repeat symbols 16, 17 and 18.
func runLengthEncode(lengths []uint8) []codeLenSymbol {
	var out []codeLenSymbol
	for i := 0; i < len(lengths); {
		cur := lengths[i]
		run := 1
		for i+run < len(lengths) && lengths[i+run] == cur {
			run++
		}
		i += run

		if cur == 0 {
			for run >= 11 {
				n := min(run, 138)
				out = append(out, codeLenSymbol{sym: codeRepeatZero7, extra: uint8(n - 11)}) //nolint:gosec // G115: n <= 138
				run -= n
			}
			if run >= 3 {
				out = append(out, codeLenSymbol{sym: codeRepeatZero3, extra: uint8(run - 3)}) //nolint:gosec // G115: run <= 10
				run = 0
			}
		} else {
			out = append(out, codeLenSymbol{sym: cur})
			run--
			for run >= 3 {
				n := min(run, 6)
				out = append(out, codeLenSymbol{sym: codeRepeatPrev, extra: uint8(n - 3)}) //nolint:gosec // G115: n <= 6
				run -= n
			}
		}

		for ; run > 0; run-- {
			out = append(out, codeLenSymbol{sym: cur})
		}
	}

	return out
}

// codeLenExtraBits returns the number of extra bits after a code-length symbol.
func codeLenExtraBits(sym uint8) uint {
	switch sym {
	case codeRepeatPrev:
		return 2
	case codeRepeatZero3:
		return 3
	case codeRepeatZero7:
		return 7
	default:
		return 0
	}
}

// headerBits returns the size of the block header including the 3 block-type bits.
func (h *dynamicHeader) headerBits() int {
	total := 3 + 5 + 5 + 4 + 3*h.numCodeLen
	for _, s := range h.symbols {
		total += int(h.codeLenLens[s.sym]) + int(codeLenExtraBits(s.sym))
	}

	return total
}

// write emits the header after the block-type bits.
func (h *dynamicHeader) write(w *bitWriter) {
	w.writeBits(uint32(h.numLitLen-257), 5) //nolint:gosec // G115: 0..29
	w.writeBits(uint32(h.numDist-1), 5)     //nolint:gosec // G115: 0..29
	w.writeBits(uint32(h.numCodeLen-4), 4)  //nolint:gosec // G115: 0..15
	for i := range h.numCodeLen {
		w.writeBits(uint32(h.codeLenLens[codeLenOrder[i]]), 3)
	}

	for _, s := range h.symbols {
		w.writeCode(h.codeLenCodes[s.sym])
		if n := codeLenExtraBits(s.sym); n > 0 {
			w.writeBits(uint32(s.extra), n)
		}
	}
}

// storedBits estimates the cost of n bytes as stored blocks.
func storedBits(n int) int {
	blocks := max(1, (n+maxStoredBlockSize-1)/maxStoredBlockSize)
	// 3 header bits, up to 7 padding bits and LEN/NLEN per block.
	return blocks*(3+7+32) + 8*n
}

// writeBlock encodes tokens covering raw as the cheapest of stored, fixed and dynamic.
func writeBlock(w *bitWriter, tokens []token, raw []byte, final bool) error {
	var stats blockStats
	stats.collect(tokens)

	dyn := newDynamicHeader(&stats)
	dynamicCost := dyn.headerBits() + stats.dataBits(dyn.litLenLens, dyn.distLens)
	fixedCost := 3 + stats.dataBits(fixedLitLenLens, fixedDistLens)

	switch {
	case storedBits(len(raw)) < min(dynamicCost, fixedCost):
		writeStoredBlocks(w, raw, final)
		return nil

	case fixedCost <= dynamicCost:
		w.writeBits(finalBit(final), 1)
		w.writeBits(blockFixed, 2)
		return writeTokens(w, tokens, fixedLitLenCodes, fixedDistCodes)

	default:
		w.writeBits(finalBit(final), 1)
		w.writeBits(blockDynamic, 2)
		dyn.write(w)
		return writeTokens(w, tokens, dyn.litLenCodes, dyn.distCodes)
	}
}

// writeStoredBlocks emits raw as one or more stored blocks; only the last may be final.
func writeStoredBlocks(w *bitWriter, raw []byte, final bool) {
	for {
		n := min(len(raw), maxStoredBlockSize)
		last := n == len(raw)

		w.writeBits(finalBit(final && last), 1)
		w.writeBits(blockStored, 2)
		w.alignToByte()
		w.writeBytes([]byte{byte(n), byte(n >> 8), ^byte(n), ^byte(n >> 8)})
		w.writeBytes(raw[:n])

		raw = raw[n:]
		if last {
			return
		}
	}
}

// writeTokens emits the block body followed by the end-of-block code.
func writeTokens(w *bitWriter, tokens []token, litLenCodes, distCodes []huffmanCode) error {
	for _, t := range tokens {
		if t.dist == 0 {
			c := litLenCodes[t.litLen]
			if c.len == 0 {
				return ErrCompressInternal
			}
			w.writeCode(c)
			continue
		}

		length := int(t.litLen)
		dist := int(t.dist)
		if length < minMatchLen || length > maxMatchLen || dist > windowSize {
			return ErrCompressInternal
		}

		lc := int(lengthCodeTable[length])
		dc := distCode(dist)
		litCode, dCode := litLenCodes[257+lc], distCodes[dc]
		if litCode.len == 0 || dCode.len == 0 {
			return ErrCompressInternal
		}

		w.writeCode(litCode)
		if n := lengthExtra[lc]; n > 0 {
			w.writeBits(uint32(length-int(lengthBase[lc])), uint(n)) //nolint:gosec // G115: < 32
		}
		w.writeCode(dCode)
		if n := distExtra[dc]; n > 0 {
			w.writeBits(uint32(dist-int(distBase[dc])), uint(n)) //nolint:gosec // G115: < 8192
		}
	}

	eob := litLenCodes[endOfBlock]
	if eob.len == 0 {
		return ErrCompressInternal
	}
	w.writeCode(eob)

	return nil
}

func finalBit(final bool) uint32 {
	if final {
		return 1
	}

	return 0
}

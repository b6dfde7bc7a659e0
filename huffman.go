// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

import (
	"math/bits"
	"slices"
)

// huffmanCode is one canonical code, stored bit-reversed so it can be written LSB first.
type huffmanCode struct {
	code uint16
	len  uint8
}

// buildCodeLengths returns length-limited Huffman code lengths for freq.
// Symbols with zero frequency get length 0. At least two symbols always get a
// code so the result is a complete prefix code every decoder accepts.
func buildCodeLengths(freq []uint32, maxBits int) []uint8 {
	lengths := make([]uint8, len(freq))

	used := make([]int, 0, len(freq))
	for sym, f := range freq {
		if f > 0 {
			used = append(used, sym)
		}
	}

	// Pad degenerate alphabets with the lowest unused symbols.
	for sym := 0; len(used) < 2 && sym < len(freq); sym++ {
		if freq[sym] == 0 {
			used = append(used, sym)
		}
	}

	weight := func(sym int) uint64 {
		return max(uint64(freq[sym]), 1)
	}

	slices.SortStableFunc(used, func(a, b int) int {
		wa, wb := weight(a), weight(b)
		switch {
		case wa < wb:
			return -1
		case wa > wb:
			return 1
		default:
			return a - b
		}
	})

	// Two-queue Huffman construction: leaves are 0..m-1 (ascending weight),
	// internal nodes m..2m-2 are created in ascending weight order too.
	m := len(used)
	nodeWeight := make([]uint64, 2*m-1)
	parent := make([]int, 2*m-1)
	for i, sym := range used {
		nodeWeight[i] = weight(sym)
	}

	leaf, inner, next := 0, m, m
	pick := func() int {
		if leaf < m && (inner >= next || nodeWeight[leaf] <= nodeWeight[inner]) {
			leaf++
			return leaf - 1
		}
		inner++
		return inner - 1
	}

	for ; next < 2*m-1; next++ {
		a, b := pick(), pick()
		nodeWeight[next] = nodeWeight[a] + nodeWeight[b]
		parent[a] = next
		parent[b] = next
	}

	// Parents always have larger indices than their children.
	depth := make([]int, 2*m-1)
	counts := make([]int, maxBits+1)
	for i := 2*m - 3; i >= 0; i-- {
		depth[i] = depth[parent[i]] + 1
		if i < m {
			counts[min(depth[i], maxBits)]++
		}
	}

	enforceMaxCodeBits(counts, maxBits)

	// Longest codes go to the least frequent symbols.
	i := 0
	for l := maxBits; l > 0; l-- {
		for c := counts[l]; c > 0; c-- {
			lengths[used[i]] = uint8(l) //nolint:gosec // G115: l <= 15
			i++
		}
	}

	return lengths
}

// enforceMaxCodeBits rebalances per-length counts, already clamped to maxBits,
// until they satisfy the Kraft equality again.
func enforceMaxCodeBits(counts []int, maxBits int) {
	total := 0
	for l := maxBits; l > 0; l-- {
		total += counts[l] << (maxBits - l)
	}

	for total > 1<<maxBits {
		counts[maxBits]--
		for l := maxBits - 1; l > 0; l-- {
			if counts[l] != 0 {
				counts[l]--
				counts[l+1] += 2
				break
			}
		}
		total--
	}
}

// canonicalCodes assigns RFC 1951 canonical codes to lengths.
func canonicalCodes(lengths []uint8) []huffmanCode {
	var count [maxCodeBits + 1]uint16
	for _, l := range lengths {
		count[l]++
	}
	count[0] = 0

	var nextCode [maxCodeBits + 1]uint16
	code := uint16(0)
	for l := 1; l <= maxCodeBits; l++ {
		code = (code + count[l-1]) << 1
		nextCode[l] = code
	}

	codes := make([]huffmanCode, len(lengths))
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		codes[sym] = huffmanCode{
			code: bits.Reverse16(nextCode[l]) >> (16 - l),
			len:  l,
		}
		nextCode[l]++
	}

	return codes
}

// huffmanDecoder decodes canonical codes one bit at a time, counting codes per length.
type huffmanDecoder struct {
	count  [maxCodeBits + 1]uint16
	symbol []uint16
}

// init prepares h for lengths. Over-subscribed sets are rejected; incomplete
// sets are accepted and fail only when an unassigned code is read.
func (h *huffmanDecoder) init(lengths []uint8) error {
	h.count = [maxCodeBits + 1]uint16{}
	for _, l := range lengths {
		if l > maxCodeBits {
			return ErrInvalidCodeLengths
		}
		h.count[l]++
	}

	left := 1
	for l := 1; l <= maxCodeBits; l++ {
		left <<= 1
		left -= int(h.count[l])
		if left < 0 {
			return ErrInvalidCodeLengths
		}
	}

	var offset [maxCodeBits + 2]uint16
	for l := 1; l <= maxCodeBits; l++ {
		offset[l+1] = offset[l] + h.count[l]
	}

	h.symbol = slices.Grow(h.symbol[:0], len(lengths))[:len(lengths)]
	for sym, l := range lengths {
		if l != 0 {
			h.symbol[offset[l]] = uint16(sym) //nolint:gosec // G115: alphabets are < 320 symbols
			offset[l]++
		}
	}

	return nil
}

// decode reads one symbol from r.
func (h *huffmanDecoder) decode(r *bitReader) (int, error) {
	code, first, index := 0, 0, 0
	for l := 1; l <= maxCodeBits; l++ {
		b, err := r.readBit()
		if err != nil {
			return 0, err
		}

		code |= int(b)
		count := int(h.count[l])
		if code-first < count {
			return int(h.symbol[index+code-first]), nil
		}

		index += count
		first = (first + count) << 1
		code <<= 1
	}

	return 0, ErrInvalidSymbol
}

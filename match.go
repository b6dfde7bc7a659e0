// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

import (
	"encoding/binary"
	"math/bits"
)

// findBestMatch walks the hash chain for pos and returns the longest match that
// beats bestLen, probing at most maxChain candidates. It returns (0, 0) when
// nothing better exists. Candidates older than the window end the walk.
func (s *slidingWindowDict) findBestMatch(src []byte, pos, maxChain, niceLen, bestLen int) (matchLen, matchDist int) {
	maxLen := min(maxMatchLen, len(src)-pos)
	if maxLen < minMatchLen {
		return 0, 0
	}

	bestLen = max(bestLen, minMatchLen-1)
	if bestLen >= maxLen {
		return 0, 0
	}

	niceLen = min(niceLen, maxLen)
	minPos := pos - windowSize

	cand := s.candidates(src, pos)
	for ; maxChain > 0 && cand >= 0 && cand >= minPos; maxChain-- {
		// Cheap reject: a longer match must agree at the current best length.
		if src[cand+bestLen] == src[pos+bestLen] && src[cand] == src[pos] {
			n := countEqualBytes(src, cand, pos, maxLen)
			if n > bestLen {
				bestLen = n
				matchLen = n
				matchDist = pos - cand
				if n >= niceLen {
					break
				}
			}
		}

		cand = s.next(cand)
	}

	// A 3-byte match this far back costs more than three literals.
	if matchLen == minMatchLen && matchDist > tooFarDist {
		return 0, 0
	}

	return matchLen, matchDist
}

// countEqualBytes returns how many bytes at a and b agree, up to limit.
// The caller guarantees a < b and b+limit <= len(src).
func countEqualBytes(src []byte, a, b, limit int) int {
	n := 0
	for n+8 <= limit {
		x := binary.LittleEndian.Uint64(src[a+n:]) ^ binary.LittleEndian.Uint64(src[b+n:])
		if x != 0 {
			return n + bits.TrailingZeros64(x)/8
		}
		n += 8
	}

	for n < limit && src[a+n] == src[b+n] {
		n++
	}

	return n
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// effortLevel selects how hard the encoder searches for repeated byte sequences.
// Only effortNormal is reachable from the public API.
type effortLevel int

const (
	effortNone   effortLevel = iota // Huffman coding only
	effortFast                      // one probe per position, greedy parse
	effortNormal                    // 128 probes per position, lazy parse
	effortBest                      // 4095 probes per position, lazy parse
)

// effortParams holds internal match-search parameters for one effort level.
type effortParams struct {
	maxChain int  // probe ceiling per position (0 disables matching)
	goodLen  int  // quarter the probes once the pending match is this long
	maxLazy  int  // do not look for a better match once the pending one is this long
	niceLen  int  // stop searching at this match length
	lazy     bool // defer each match by one position to look for a longer one
}

// effortTable defines parameters per effort level.
var effortTable = [...]effortParams{
	effortNone:   {},
	effortFast:   {maxChain: 1, niceLen: 32},
	effortNormal: {maxChain: 128, goodLen: 8, maxLazy: 16, niceLen: 128, lazy: true},
	effortBest:   {maxChain: 4095, goodLen: 32, maxLazy: maxMatchLen, niceLen: maxMatchLen, lazy: true},
}

// params returns the parameters for l, clamping out-of-range values.
func (l effortLevel) params() effortParams {
	l = max(l, effortNone)
	l = min(l, effortBest)
	return effortTable[l]
}

func (l effortLevel) String() string {
	switch l {
	case effortNone:
		return "none"
	case effortFast:
		return "fast"
	case effortNormal:
		return "normal"
	case effortBest:
		return "best"
	default:
		return "unknown"
	}
}

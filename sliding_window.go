// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

import "sync"

const (
	swdHashBits = 15
	swdHashSize = 1 << swdHashBits
)

// slidingWindowDict indexes the last windowSize positions of the input by their
// 3-byte prefix. Heads and chain links store position+1 so the zero value means empty.
type slidingWindowDict struct {
	head  [swdHashSize]int // newest position+1 for each 3-byte hash
	chain [windowSize]int  // previous position+1 with the same hash, indexed by pos&windowMask
}

// hash3 returns the hash of the 3 bytes at the start of data.
func hash3(data []byte) uint32 {
	key := uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
	return (key * 0x9e3779b1) >> (32 - swdHashBits)
}

// reset forgets every indexed position. Chain links are only reached through
// heads, so they do not need clearing.
func (s *slidingWindowDict) reset() {
	clear(s.head[:])
}

// insert indexes pos. Positions without 3 bytes of lookahead are ignored.
func (s *slidingWindowDict) insert(src []byte, pos int) {
	if pos+minMatchLen > len(src) {
		return
	}

	key := hash3(src[pos:])
	s.chain[pos&windowMask] = s.head[key]
	s.head[key] = pos + 1
}

// insertRange indexes positions [from, to).
func (s *slidingWindowDict) insertRange(src []byte, from, to int) {
	to = min(to, len(src)-minMatchLen+1)
	for pos := from; pos < to; pos++ {
		key := hash3(src[pos:])
		s.chain[pos&windowMask] = s.head[key]
		s.head[key] = pos + 1
	}
}

// candidates returns the newest indexed position sharing pos's hash, or -1.
func (s *slidingWindowDict) candidates(src []byte, pos int) int {
	return s.head[hash3(src[pos:])] - 1
}

// next returns the position indexed before cand on the same chain, or -1.
// A link that does not point strictly backwards belongs to a recycled slot.
func (s *slidingWindowDict) next(cand int) int {
	prev := s.chain[cand&windowMask] - 1
	if prev >= cand {
		return -1
	}

	return prev
}

// windowDicts recycles dictionaries between deflate calls.
var windowDicts = sync.Pool{
	New: func() any { return new(slidingWindowDict) },
}

// getWindowDict returns an empty dictionary.
func getWindowDict() *slidingWindowDict {
	s := windowDicts.Get().(*slidingWindowDict)
	s.reset()

	return s
}

func putWindowDict(s *slidingWindowDict) {
	if s != nil {
		windowDicts.Put(s)
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

// DEFLATE (RFC 1951) format constants: window and match bounds, alphabets and block types.

// Window and match bounds.
const (
	windowSize  = 1 << 15
	windowMask  = windowSize - 1
	minMatchLen = 3
	maxMatchLen = 258

	// tooFarDist drops 3-byte matches whose distance code costs more than the literals.
	tooFarDist = 4096
)

// Alphabet sizes.
const (
	endOfBlock      = 256
	numLitLenCodes  = 286 // 0..255 literals, 256 end of block, 257..285 lengths
	numFixedLitLen  = 288 // fixed table also assigns codes to the two unused symbols
	numDistCodes    = 30
	numFixedDist    = 32
	numCodeLenCodes = 19
	maxCodeBits     = 15
	maxCodeLenBits  = 7
)

// Block layout.
const (
	blockStored  = 0
	blockFixed   = 1
	blockDynamic = 2

	maxStoredBlockSize = 0xffff
	maxBlockTokens     = 1 << 14
)

// Code-length alphabet repeat symbols.
const (
	codeRepeatPrev  = 16 // repeat previous length 3..6 times, 2 extra bits
	codeRepeatZero3 = 17 // repeat zero 3..10 times, 3 extra bits
	codeRepeatZero7 = 18 // repeat zero 11..138 times, 7 extra bits
)

// lengthBase and lengthExtra describe length codes 257..285.
var (
	lengthBase = [29]uint16{
		3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
		35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
	}
	lengthExtra = [29]uint8{
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
	}
)

// distBase and distExtra describe distance codes 0..29.
var (
	distBase = [30]uint16{
		1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
		257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
	}
	distExtra = [30]uint8{
		0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
		7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
	}
)

// codeLenOrder is the transmission order of code-length code lengths.
var codeLenOrder = [numCodeLenCodes]uint8{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// lengthCodeTable maps a match length 3..258 to its length code index 0..28.
var lengthCodeTable = buildLengthCodeTable()

func buildLengthCodeTable() (table [maxMatchLen + 1]uint8) {
	code := 0
	for length := minMatchLen; length <= maxMatchLen; length++ {
		for code+1 < len(lengthBase) && int(lengthBase[code+1]) <= length {
			code++
		}
		table[length] = uint8(code) //nolint:gosec // G115: code < 29
	}

	return table
}

// distCode returns the distance code index 0..29 for a distance 1..32768.
func distCode(dist int) int {
	code := len(distBase) - 1
	for int(distBase[code]) > dist {
		code--
	}

	return code
}

// fixedLitLenLengths returns the RFC 1951 fixed literal/length code lengths.
func fixedLitLenLengths() []uint8 {
	lengths := make([]uint8, numFixedLitLen)
	for i := range lengths {
		switch {
		case i < 144:
			lengths[i] = 8
		case i < 256:
			lengths[i] = 9
		case i < 280:
			lengths[i] = 7
		default:
			lengths[i] = 8
		}
	}

	return lengths
}

// fixedDistLengths returns the RFC 1951 fixed distance code lengths.
func fixedDistLengths() []uint8 {
	lengths := make([]uint8, numFixedDist)
	for i := range lengths {
		lengths[i] = 5
	}

	return lengths
}

package flate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountEqualBytes(t *testing.T) {
	src := []byte("abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrsTUVWXYZ")
	b := bytes.IndexByte(src, '-') + 1

	assert.Equal(t, 19, countEqualBytes(src, 0, b, len(src)-b))
	assert.Equal(t, 5, countEqualBytes(src, 0, b, 5))
	assert.Equal(t, 0, countEqualBytes(src, 1, b, len(src)-b))
}

func TestFindBestMatch(t *testing.T) {
	src := []byte("0123456789__0123456789__01234")

	dict := getWindowDict()
	defer putWindowDict(dict)

	dict.insertRange(src, 0, 24)

	matchLen, matchDist := dict.findBestMatch(src, 24, 128, maxMatchLen, 0)
	require.Equal(t, 5, matchLen)
	require.Equal(t, 12, matchDist, "nearest candidate wins among equal lengths")

	// Nothing longer than the current best.
	matchLen, matchDist = dict.findBestMatch(src, 24, 128, maxMatchLen, 5)
	require.Zero(t, matchLen)
	require.Zero(t, matchDist)
}

func TestFindBestMatch_DropsDistantShortMatches(t *testing.T) {
	src := make([]byte, 0, tooFarDist+64)
	src = append(src, "xyz"...)
	for len(src) < tooFarDist+10 {
		src = append(src, byte('a'+len(src)%7), byte('A'+len(src)%11))
	}
	pos := len(src)
	src = append(src, "xyz!"...)

	dict := getWindowDict()
	defer putWindowDict(dict)

	dict.insertRange(src, 0, pos)

	matchLen, _ := dict.findBestMatch(src, pos, 4095, maxMatchLen, 0)
	require.Zero(t, matchLen, "a 3-byte match beyond %d bytes should be rejected", tooFarDist)
}

func TestSlidingWindowDict_ResetOnAcquire(t *testing.T) {
	src := bytes.Repeat([]byte("abc"), 10)

	dict := getWindowDict()
	dict.insertRange(src, 0, len(src)-3)
	putWindowDict(dict)

	dict = getWindowDict()
	defer putWindowDict(dict)

	require.Less(t, dict.candidates(src, len(src)-3), 0, "pooled dictionary should start empty")
}

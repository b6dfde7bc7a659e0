package flate

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var testLevels = []effortLevel{effortNone, effortFast, effortNormal, effortBest}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.UintN(256))
	}

	return b
}

// vocabularyInput concatenates picks random words from words.
func vocabularyInput(rng *rand.Rand, words [][]byte, picks int) []byte {
	var in []byte
	for range picks {
		in = append(in, words[rng.IntN(len(words))]...)
	}

	return in
}

// randomVocabulary returns n random words of 1..9 bytes.
func randomVocabulary(rng *rand.Rand, n int) [][]byte {
	words := make([][]byte, n)
	for i := range words {
		words[i] = randomBytes(rng, 1+rng.IntN(9))
	}

	return words
}

func allByteValues() []byte {
	b := make([]byte, 256*4)
	for i := range b {
		b[i] = byte(i)
	}

	return b
}

func testInputSet() []struct {
	name string
	data []byte
} {
	rng := rand.New(rand.NewPCG(1, 2))

	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "two-bytes", data: []byte{0xAB, 0xAB}},
		{name: "short-text", data: []byte("hello world, flate test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "all-byte-values", data: allByteValues()},
		{name: "random-64k", data: randomBytes(rng, 1<<16)},
		{name: "vocabulary-40k", data: vocabularyInput(rng, randomVocabulary(rng, 40), 8000)},
		{name: "beyond-window", data: append(randomBytes(rng, windowSize+100), randomBytes(rng, 500)...)},
	}
}

func TestDeflateLevel_RoundTripAcrossLevels(t *testing.T) {
	for _, in := range testInputSet() {
		for _, level := range testLevels {
			t.Run(fmt.Sprintf("%s/%s", in.name, level), func(t *testing.T) {
				cmp, err := deflateLevel(in.data, level)
				require.NoError(t, err)
				require.NotEmpty(t, cmp)

				out, nRead, err := inflateCore(cmp, 0, 0)
				require.NoError(t, err)
				require.Equal(t, len(cmp), nRead, "decoder should consume the whole stream")
				require.True(t, bytes.Equal(out, in.data), "round-trip mismatch: got=%d want=%d", len(out), len(in.data))
			})
		}
	}
}

func TestDeflateLevel_LevelClamping(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 4096)

	cmpLow, err := deflateLevel(data, effortLevel(-3))
	require.NoError(t, err)
	cmpNone, err := deflateLevel(data, effortNone)
	require.NoError(t, err)
	require.Equal(t, cmpNone, cmpLow, "negative level should clamp to none")

	cmpHigh, err := deflateLevel(data, effortLevel(42))
	require.NoError(t, err)
	cmpBest, err := deflateLevel(data, effortBest)
	require.NoError(t, err)
	require.Equal(t, cmpBest, cmpHigh, "out-of-range level should clamp to best")
}

func TestDeflateLevel_MoreEffortNeverHurtsRedundantInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	data := vocabularyInput(rng, randomVocabulary(rng, 20), 4000)

	sizes := make(map[effortLevel]int)
	for _, level := range testLevels {
		cmp, err := deflateLevel(data, level)
		require.NoError(t, err)
		sizes[level] = len(cmp)
	}

	require.Less(t, sizes[effortFast], sizes[effortNone], "matching should beat Huffman-only coding")
	require.LessOrEqual(t, sizes[effortBest], sizes[effortFast])
}

func TestCompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			out := Decompress(Compress(in.data))
			require.True(t, bytes.Equal(out, in.data), "round-trip mismatch: got=%d want=%d", len(out), len(in.data))
		})
	}
}

func TestCompress_MatchesNormalEffort(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	want, err := deflateLevel(data, effortNormal)
	require.NoError(t, err)
	require.Equal(t, want, Compress(data))
}

func TestCompress_Deterministic(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			first := Compress(in.data)
			second := Compress(in.data)
			require.Equal(t, first, second)

			require.Equal(t, Decompress(first), Decompress(second))
		})
	}
}

func TestCompress_DoesNotMutateInput(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			src := bytes.Clone(in.data)
			cmp := Compress(src)
			require.True(t, bytes.Equal(src, in.data), "Compress modified its input")

			cmpCopy := bytes.Clone(cmp)
			_ = Decompress(cmp)
			require.Equal(t, cmpCopy, cmp, "Decompress modified its input")
		})
	}
}

func TestCompress_EmptyInput(t *testing.T) {
	// A single final fixed-Huffman block holding only the end-of-block code.
	want := []byte{0x03, 0x00}

	require.Equal(t, want, Compress(nil))
	require.Equal(t, want, Compress([]byte{}))
	require.Empty(t, Decompress(want))
}

func TestCompress_RepetitiveInputShrinks(t *testing.T) {
	data := bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 100000)

	cmp := Compress(data)
	require.Less(t, len(cmp), len(data)/100, "compressed %d bytes to %d", len(data), len(cmp))
	require.Equal(t, data, Decompress(cmp))
}

func TestCompress_VocabularyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(0x5eed, 2012))
	words := randomVocabulary(rng, 20)

	for i := range 20 {
		in := vocabularyInput(rng, words, 2000)
		cmp := Compress(in)
		out := Decompress(cmp)

		r := ratio(len(cmp), len(in))
		t.Logf("input %d: %d bytes deflated to %d (%.1f%% size)", i, len(in), len(cmp), 100*r)

		require.True(t, bytes.Equal(out, in), "round-trip mismatch for input %d", i)
		require.Less(t, r, 1.0)
	}
}

func TestCompress_ConcurrentIndependence(t *testing.T) {
	const workers = 8

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(uint64(w), 99))
			for i := range 16 {
				var in []byte
				if i%2 == 0 {
					in = vocabularyInput(rng, randomVocabulary(rng, 1+rng.IntN(30)), rng.IntN(3000))
				} else {
					in = randomBytes(rng, rng.IntN(20000))
				}

				out := Decompress(Compress(in))
				if !bytes.Equal(out, in) {
					return fmt.Errorf("worker %d buffer %d: round-trip mismatch: got=%d want=%d", w, i, len(out), len(in))
				}
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(2))
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(3))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(0))

	f.Fuzz(func(t *testing.T, data []byte, level uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, err := deflateLevel(data, effortLevel(level%4))
		if err != nil {
			t.Fatalf("deflateLevel failed: %v", err)
		}

		out, err := Inflate(cmp, nil)
		if err != nil {
			t.Fatalf("Inflate failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flate

package flate

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	rng := rand.New(rand.NewPCG(17, 19))

	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("flate benchmark text payload "), 140),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"vocabulary-64k":  vocabularyInput(rng, randomVocabulary(rng, 64), 13000),
		"random-64k":      randomBytes(rng, 1<<16),
	}
}

func BenchmarkDeflateLevel(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range testLevels {
			name := fmt.Sprintf("%s/%s", inputName, level)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := deflateLevel(inputData, level); err != nil {
						b.Fatalf("deflateLevel failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkDeflate(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, eng := range testEngines {
			name := fmt.Sprintf("%s/%s", inputName, eng)
			b.Run(name, func(b *testing.B) {
				opts := &CompressOptions{Engine: eng}
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Deflate(inputData, opts); err != nil {
						b.Fatalf("Deflate failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkInflate(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		compressedData, err := Deflate(inputData, nil)
		if err != nil {
			b.Fatalf("setup Deflate failed for %s: %v", inputName, err)
		}

		for _, eng := range testEngines {
			opts := &DecompressOptions{Engine: eng, SizeHint: len(inputData)}
			if _, err := Inflate(compressedData, opts); err != nil {
				b.Fatalf("setup Inflate failed for %s (%s): %v", inputName, eng, err)
			}

			name := fmt.Sprintf("%s/%s", inputName, eng)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Inflate(compressedData, opts); err != nil {
						b.Fatalf("Inflate failed: %v", err)
					}
				}
			})
		}
	}
}

// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fragment extracts candidate Japanese words from text.
package fragment

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// japanese are the character ranges of Japanese script.
var japanese = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3005, Hi: 0x3005, Stride: 1}, // IDEOGRAPHIC ITERATION MARK
		{Lo: 0x3040, Hi: 0x30ff, Stride: 1}, // Hiragana, Katakana
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1}, // CJK Unified Ideographs Extension A
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1}, // CJK Unified Ideographs
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1}, // CJK Compatibility Ideographs
		{Lo: 0xff66, Hi: 0xff9f, Stride: 1}, // Halfwidth katakana
	},
}

// Extractor finds runs of Japanese script in text. An Extractor is safe for
// concurrent use.
type Extractor struct {
	table *unicode.RangeTable
}

// New returns a new Extractor.
func New() *Extractor {
	return &Extractor{
		table: japanese,
	}
}

// isJapanese reports whether the rune at the start of s is Japanese script
// and returns its size. Invalid UTF-8 is never Japanese script.
func (e *Extractor) isJapanese(s string) (bool, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return false, size
	}
	return unicode.Is(e.table, r), size
}

// Runs returns the maximal runs of Japanese script in text in order. Each
// run is a slice of text.
func (e *Extractor) Runs(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for pos := 0; pos < len(text); {
			ok, size := e.isJapanese(text[pos:])
			switch {
			case ok && start < 0:
				start = pos
			case !ok && start >= 0:
				if !yield(text[start:pos]) {
					return
				}
				start = -1
			}
			pos += size
		}
		if start >= 0 {
			yield(text[start:])
		}
	}
}

// Fragments returns every substring of every run of Japanese script in
// text. For each run, substrings are returned by start position and then by
// increasing length. Each fragment is a slice of text.
func (e *Extractor) Fragments(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for run := range e.Runs(text) {
			for start := 0; start < len(run); {
				for end := start; end < len(run); {
					_, size := utf8.DecodeRuneInString(run[end:])
					end += size
					if !yield(run[start:end]) {
						return
					}
				}
				_, size := utf8.DecodeRuneInString(run[start:])
				start += size
			}
		}
	}
}

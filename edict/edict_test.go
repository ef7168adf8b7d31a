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

package edict_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-subedict/edict"
	"github.com/ianlewis/go-subedict/internal/lineparse"
	"github.com/ianlewis/go-subedict/wordtype"
)

const (
	nihonLine    = "日本 [にほん(P);にっぽん] /(n) Japan/(P)/EntL1582710X/"
	ayakashiLine = "あやかし /(n) (1) ghost that appears at sea during a shipwreck/(2) something strange or suspicious/EntL2143630X/"
	anohitoLine  = "あの人(P);彼の人 [あのひと] /(pn) (1) he/she/that person/(P)/EntL1000440X/"
	taberuLine   = "食べる [たべる] /(v1,vt) to eat/(P)/EntL1358280X/"
)

func mustNew(t *testing.T, lines ...string) *edict.Index {
	t.Helper()

	data := "　？？？ /EDICT, EDICT_SUB(P), EDICT2 Japanese-English Electronic Dictionary/\n" +
		strings.Join(lines, "\n") + "\n"
	idx, err := edict.New(strings.NewReader(data))
	if err != nil {
		t.Fatalf("edict.New: %v", err)
	}
	return idx
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	idx := mustNew(t, nihonLine, ayakashiLine, anohitoLine, taberuLine)

	tests := []struct {
		name     string
		key      string
		expected []edict.Entry
	}{
		{
			name: "writing",
			key:  "日本",
			expected: []edict.Entry{
				{Line: nihonLine, Type: wordtype.Word},
			},
		},
		{
			name: "reading with marker",
			key:  "にほん",
			expected: []edict.Entry{
				{Line: nihonLine, Type: wordtype.Word},
			},
		},
		{
			name: "second reading",
			key:  "にっぽん",
			expected: []edict.Entry{
				{Line: nihonLine, Type: wordtype.Word},
			},
		},
		{
			name:     "marker not part of key",
			key:      "にほん(P)",
			expected: nil,
		},
		{
			name: "writing only",
			key:  "あやかし",
			expected: []edict.Entry{
				{Line: ayakashiLine, Type: wordtype.Word},
			},
		},
		{
			name: "writing with marker",
			key:  "あの人",
			expected: []edict.Entry{
				{Line: anohitoLine, Type: wordtype.Word},
			},
		},
		{
			name: "second writing",
			key:  "彼の人",
			expected: []edict.Entry{
				{Line: anohitoLine, Type: wordtype.Word},
			},
		},
		{
			name: "verb",
			key:  "食べる",
			expected: []edict.Entry{
				{Line: taberuLine, Type: wordtype.Word | wordtype.Ichidan},
			},
		},
		{
			name:     "missing",
			key:      "ない",
			expected: nil,
		},
		{
			name:     "gloss text is not a key",
			key:      "ghost",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, idx.Lookup(test.key)); diff != "" {
				t.Fatalf("Lookup(%q) (-want, +got):\n%s", test.key, diff)
			}
		})
	}
}

func TestIndex_sizes(t *testing.T) {
	t.Parallel()

	idx := mustNew(t, nihonLine, ayakashiLine)
	// 日本, にほん, にっぽん, あやかし
	if diff := cmp.Diff(4, idx.Len()); diff != "" {
		t.Errorf("Len (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, idx.Lines()); diff != "" {
		t.Errorf("Lines (-want, +got):\n%s", diff)
	}
}

func TestIndex_sharedKey(t *testing.T) {
	t.Parallel()

	hashiBridge := "橋 [はし] /(n) bridge/(P)/EntL1489350X/"
	hashiChopsticks := "箸 [はし] /(n) chopsticks/(P)/EntL1489330X/"
	idx := mustNew(t, hashiBridge, hashiChopsticks)

	expected := []edict.Entry{
		{Line: hashiBridge, Type: wordtype.Word},
		{Line: hashiChopsticks, Type: wordtype.Word},
	}
	if diff := cmp.Diff(expected, idx.Lookup("はし")); diff != "" {
		t.Fatalf("Lookup (-want, +got):\n%s", diff)
	}
}

func TestNew_types(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected uint32
	}{
		{
			name:     "no tags",
			line:     "あやかし /ghost/",
			expected: wordtype.Word,
		},
		{
			name:     "noun",
			line:     "日本 [にほん] /(n) Japan/",
			expected: wordtype.Word,
		},
		{
			name:     "ichidan",
			line:     "食べる [たべる] /(v1,vt) to eat/",
			expected: wordtype.Word | wordtype.Ichidan,
		},
		{
			name:     "godan",
			line:     "書く [かく] /(v5k,vt) to write/",
			expected: wordtype.Word | wordtype.Godan,
		},
		{
			name:     "i-adjective",
			line:     "高い [たかい] /(adj-i) high/",
			expected: wordtype.Word | wordtype.IAdjective,
		},
		{
			name:     "kuru",
			line:     "来る [くる] /(vk,vi) to come/",
			expected: wordtype.Word | wordtype.KuruVerb,
		},
		{
			name:     "suru",
			line:     "勉強 [べんきょう] /(n,vs) study/",
			expected: wordtype.Word | wordtype.SuruVerb,
		},
		{
			name:     "special suru",
			line:     "する /(vs-i) to do/",
			expected: wordtype.Word | wordtype.SuruVerb,
		},
		{
			name:     "multiple classes",
			line:     "かいする /(v5s,vs-s,vt) to understand/",
			expected: wordtype.Word | wordtype.Godan | wordtype.SuruVerb,
		},
		{
			name:     "similar tags",
			line:     "ある /(v1-s,vsx,adj-ix) test/",
			expected: wordtype.Word,
		},
		{
			name:     "tags only in later gloss",
			line:     "ある /something/(v1) other/",
			expected: wordtype.Word,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := mustNew(t, test.line)
			key, _, _ := strings.Cut(test.line, " ")
			entries := idx.Lookup(key)
			if len(entries) != 1 {
				t.Fatalf("Lookup(%q): got %d entries, want 1", key, len(entries))
			}
			if diff := cmp.Diff(test.expected, entries[0].Type); diff != "" {
				t.Fatalf("Type (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNew_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected *lineparse.Error
	}{
		{
			name:     "missing gloss separator",
			line:     "日本 [にほん]",
			expected: &lineparse.Error{Line: 2, Expected: " /", Err: edict.ErrFormat},
		},
		{
			name:     "unclosed reading",
			line:     "日本 [にほん /(n) Japan/",
			expected: &lineparse.Error{Line: 2, Expected: "] /", Err: edict.ErrFormat},
		},
		{
			name:     "unclosed tags",
			line:     "日本 [にほん] /(n Japan/",
			expected: &lineparse.Error{Line: 2, Expected: ")", Err: edict.ErrFormat},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx, err := edict.New(strings.NewReader("header\n" + test.line + "\n"))
			if idx != nil {
				t.Fatalf("edict.New: got partial index")
			}
			if !errors.Is(err, edict.ErrFormat) {
				t.Fatalf("edict.New: got %v, want %v", err, edict.ErrFormat)
			}
			var lerr *lineparse.Error
			if !errors.As(err, &lerr) {
				t.Fatalf("edict.New: got %T, want *lineparse.Error", err)
			}
			if diff := cmp.Diff(test.expected, lerr, cmpopts.IgnoreFields(lineparse.Error{}, "Err")); diff != "" {
				t.Fatalf("edict.New (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNew_laterLineError(t *testing.T) {
	t.Parallel()

	data := "header\n" + nihonLine + "\n" + ayakashiLine + "\nbroken\n"
	_, err := edict.New(strings.NewReader(data))
	var lerr *lineparse.Error
	if !errors.As(err, &lerr) {
		t.Fatalf("edict.New: got %v, want *lineparse.Error", err)
	}
	if diff := cmp.Diff(4, lerr.Line); diff != "" {
		t.Fatalf("Line (-want, +got):\n%s", diff)
	}
}

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

package subedict_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-subedict"
	"github.com/ianlewis/go-subedict/deinflect"
	"github.com/ianlewis/go-subedict/edict"
	"github.com/ianlewis/go-subedict/internal/testutil"
)

func mustRules(t *testing.T, data string) *deinflect.Rules {
	t.Helper()
	rules, err := deinflect.New(strings.NewReader(data))
	if err != nil {
		t.Fatalf("deinflect.New: %v", err)
	}
	return rules
}

func mustIndex(t *testing.T, data string) *edict.Index {
	t.Helper()
	idx, err := edict.New(strings.NewReader(data))
	if err != nil {
		t.Fatalf("edict.New: %v", err)
	}
	return idx
}

func newSubEdict(t *testing.T) *subedict.SubEdict {
	t.Helper()
	return subedict.New(
		mustRules(t, testutil.Rules),
		mustIndex(t, testutil.Dict),
		mustIndex(t, testutil.Names),
	)
}

func TestSubEdict_Annotate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "empty",
			text:     "",
			expected: []string{},
		},
		{
			name:     "no japanese",
			text:     "hello, world",
			expected: []string{},
		},
		{
			name: "sorted lines",
			text: "日本の本",
			expected: []string{
				testutil.HiLine,
				testutil.NihonLine,
				testutil.HonLine,
			},
		},
		{
			name: "reading keys",
			text: "にほん",
			expected: []string{
				testutil.NihonLine,
				testutil.HonLine,
			},
		},
		{
			name:     "ichidan polite past",
			text:     "食べました。",
			expected: []string{testutil.TaberuLine},
		},
		{
			name:     "godan past",
			text:     "買った",
			expected: []string{testutil.KauLine},
		},
		{
			// かった also deinflects to かう, the reading of 買う.
			name:     "adjective past",
			text:     "高かった",
			expected: []string{testutil.KauLine, testutil.TakaiLine},
		},
		{
			name:     "distinct lines",
			text:     "食べた、食べました、食べた",
			expected: []string{testutil.TaberuLine},
		},
		{
			name:     "names are not included",
			text:     "田中",
			expected: []string{},
		},
	}

	s := newSubEdict(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := s.Annotate(test.text)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Annotate(%q) (-want, +got):\n%s", test.text, diff)
			}
		})
	}
}

func TestSubEdict_Annotate_classMismatch(t *testing.T) {
	t.Parallel()

	// The rule requires a godan verb but 食べる is ichidan.
	rules := mustRules(t, "header\npolite past\nました\tる\t0x0002\t0\n")
	s := subedict.New(rules, mustIndex(t, testutil.Dict), nil)

	got := s.Annotate("食べました")
	if diff := cmp.Diff([]string{}, got); diff != "" {
		t.Fatalf("Annotate (-want, +got):\n%s", diff)
	}
}

func TestSubEdict_Annotate_punctuation(t *testing.T) {
	t.Parallel()

	dict := "header\n" +
		"\u3007 [まる] /(n) circle/\n" +
		"\u3002 /(n) maru/\n" +
		"丸 [まる] /(n) circle/\n"
	s := subedict.New(mustRules(t, testutil.Rules), mustIndex(t, dict), nil)

	got := s.Annotate("丸\u3007\u3002")
	want := []string{"丸 [まる] /(n) circle/"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Annotate (-want, +got):\n%s", diff)
	}
}

func TestSubEdict_AnnotateNames(t *testing.T) {
	t.Parallel()

	s := newSubEdict(t)
	got := s.AnnotateNames("田中さんは東京へ行った")
	want := []string{testutil.TokyoLine, testutil.TanakaLine}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("AnnotateNames (-want, +got):\n%s", diff)
	}

	// Names are not deinflected.
	if got := s.AnnotateNames("日本"); len(got) != 0 {
		t.Fatalf("AnnotateNames: unexpected lines %q", got)
	}
}

func TestSubEdict_AnnotateNames_noNames(t *testing.T) {
	t.Parallel()

	s := subedict.New(mustRules(t, testutil.Rules), mustIndex(t, testutil.Dict), nil)
	if s.HasNames() {
		t.Fatalf("HasNames: expected false")
	}
	if got := s.AnnotateNames("田中"); got != nil {
		t.Fatalf("AnnotateNames: expected nil, got %q", got)
	}
	if got := s.LookupName("田中"); got != nil {
		t.Fatalf("LookupName: expected nil, got %v", got)
	}
}

func TestSubEdict_Lookup(t *testing.T) {
	t.Parallel()

	s := newSubEdict(t)
	want := []edict.Entry{
		{
			Line: testutil.NihonLine,
			Type: 0x80,
		},
	}
	for _, key := range []string{"日本", "にほん", "にっぽん"} {
		if diff := cmp.Diff(want, s.Lookup(key)); diff != "" {
			t.Errorf("Lookup(%q) (-want, +got):\n%s", key, diff)
		}
	}

	if got := s.LookupName("たなか"); len(got) != 1 || got[0].Line != testutil.TanakaLine {
		t.Errorf("LookupName(%q): unexpected entries %v", "たなか", got)
	}
}

func TestSubEdict_Deinflect(t *testing.T) {
	t.Parallel()

	s := newSubEdict(t)
	var words []string
	for c := range s.Deinflect("食べた") {
		words = append(words, c.Word)
	}
	want := []string{"食べた", "食べる"}
	if diff := cmp.Diff(want, words); diff != "" {
		t.Fatalf("Deinflect (-want, +got):\n%s", diff)
	}
}

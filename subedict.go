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

package subedict

import (
	"iter"
	"slices"

	"github.com/ianlewis/go-subedict/deinflect"
	"github.com/ianlewis/go-subedict/edict"
	"github.com/ianlewis/go-subedict/fragment"
)

// SubEdict extracts the dictionary lines relevant to a text. A SubEdict is
// immutable and safe for concurrent use.
type SubEdict struct {
	rules     *deinflect.Rules
	dict      *edict.Index
	names     *edict.Index
	fragments *fragment.Extractor
}

// New returns a new SubEdict using the given rules and dictionaries. names
// is the name dictionary and may be nil.
func New(rules *deinflect.Rules, dict, names *edict.Index) *SubEdict {
	return &SubEdict{
		rules:     rules,
		dict:      dict,
		names:     names,
		fragments: fragment.New(),
	}
}

// Annotate returns the sorted, distinct dictionary lines for the words in
// text. Each fragment of text is deinflected and the candidate words are
// looked up in the dictionary. An entry matches a candidate only if they
// share a word class.
func (s *SubEdict) Annotate(text string) []string {
	lines := map[string]struct{}{}
	for f := range s.distinctFragments(text) {
		for c := range s.rules.Deinflect(f) {
			for _, e := range s.dict.Lookup(c.Word) {
				if e.Type&c.Type != 0 {
					lines[e.Line] = struct{}{}
				}
			}
		}
	}
	return sorted(lines)
}

// AnnotateNames returns the sorted, distinct name dictionary lines for the
// words in text. Names do not inflect so fragments are looked up as is. It
// returns nil if the SubEdict has no name dictionary.
func (s *SubEdict) AnnotateNames(text string) []string {
	if s.names == nil {
		return nil
	}

	lines := map[string]struct{}{}
	for f := range s.distinctFragments(text) {
		for _, e := range s.names.Lookup(f) {
			lines[e.Line] = struct{}{}
		}
	}
	return sorted(lines)
}

// Lookup returns the dictionary entries registered under key.
func (s *SubEdict) Lookup(key string) []edict.Entry {
	return s.dict.Lookup(key)
}

// LookupName returns the name dictionary entries registered under key.
func (s *SubEdict) LookupName(key string) []edict.Entry {
	if s.names == nil {
		return nil
	}
	return s.names.Lookup(key)
}

// Deinflect returns the deinflection candidates for word.
func (s *SubEdict) Deinflect(word string) iter.Seq[deinflect.Candidate] {
	return s.rules.Deinflect(word)
}

// Stats are the sizes of the indices used by a SubEdict.
type Stats struct {
	Rules     int `json:"rules"`
	Keys      int `json:"keys"`
	Lines     int `json:"lines"`
	NameKeys  int `json:"nameKeys,omitempty"`
	NameLines int `json:"nameLines,omitempty"`
}

// Stats returns the sizes of the SubEdict's indices.
func (s *SubEdict) Stats() Stats {
	st := Stats{
		Rules: s.rules.Len(),
		Keys:  s.dict.Len(),
		Lines: s.dict.Lines(),
	}
	if s.names != nil {
		st.NameKeys = s.names.Len()
		st.NameLines = s.names.Lines()
	}
	return st
}

// HasNames returns true if the SubEdict has a name dictionary.
func (s *SubEdict) HasNames() bool {
	return s.names != nil
}

// distinctFragments returns the fragments of text without repetition.
func (s *SubEdict) distinctFragments(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := map[string]struct{}{}
		for f := range s.fragments.Fragments(text) {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			if !yield(f) {
				return
			}
		}
	}
}

func sorted(set map[string]struct{}) []string {
	lines := make([]string, 0, len(set))
	for line := range set {
		lines = append(lines, line)
	}
	slices.Sort(lines)
	return lines
}

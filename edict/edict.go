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

package edict

import (
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-subedict/internal/lineparse"
	"github.com/ianlewis/go-subedict/wordtype"
)

var (
	// ErrFormat indicates that a dictionary line has an unexpected structure.
	ErrFormat = lineparse.ErrFormat

	// ErrInteger indicates that a numeric field is not an integer.
	ErrInteger = lineparse.ErrInteger
)

// Entry is a dictionary line registered under a key.
type Entry struct {
	// Line is the full dictionary record.
	Line string

	// Type is the mask of word classes given by the record's tags. The
	// wordtype.Word bit is always set.
	Type uint32
}

// Index is an in-memory dictionary index by writing and reading. Index is
// immutable once created and is safe for concurrent use.
type Index struct {
	entries map[string][]Entry
	lines   int
}

// New reads a dictionary file from r and returns its index.
func New(r io.Reader) (*Index, error) {
	idx := &Index{
		entries: map[string][]Entry{},
	}

	s := lineparse.NewScanner(r)
	for s.Scan() {
		if err := idx.addLine(s.Line(), s.Text()); err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	return idx, nil
}

func (idx *Index) addLine(lineno int, line string) error {
	f, expected := split(line)
	if expected != "" {
		return lineparse.Formatf(lineno, expected)
	}

	var wordType uint32
	if tags, ok := f.tags(); ok {
		wordType = typeFromTags(tags)
	} else if strings.HasPrefix(f.glosses, "(") {
		return lineparse.Formatf(lineno, ")")
	} else {
		wordType = wordtype.Word
	}

	e := Entry{
		Line: line,
		Type: wordType,
	}
	idx.addKeys(f.writings, e)
	if f.hasReadings {
		idx.addKeys(f.readings, e)
	}
	idx.lines++
	return nil
}

func (idx *Index) addKeys(list string, e Entry) {
	for _, key := range strings.Split(list, ";") {
		// Strip markers such as "(P)".
		key, _, _ = strings.Cut(key, "(")
		idx.entries[key] = append(idx.entries[key], e)
	}
}

// Lookup returns the entries registered under key. It returns nil if there
// are none. The returned slice must not be modified.
func (idx *Index) Lookup(key string) []Entry {
	return idx.entries[key]
}

// Len returns the number of keys in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Lines returns the number of dictionary records in the index.
func (idx *Index) Lines() int {
	return idx.lines
}

// fields are the sections of a dictionary record.
type fields struct {
	writings    string
	readings    string
	hasReadings bool

	// glosses is everything after the first " /".
	glosses string
}

// split splits a record into its sections. If the record is malformed it
// returns the missing token.
func split(line string) (fields, string) {
	keys, glosses, ok := strings.Cut(line, " /")
	if !ok {
		return fields{}, " /"
	}

	f := fields{glosses: glosses}
	if writings, rest, ok := strings.Cut(keys, " ["); ok {
		readings, ok := strings.CutSuffix(rest, "]")
		if !ok {
			return fields{}, "] /"
		}
		f.writings = writings
		f.readings = readings
		f.hasReadings = true
	} else {
		f.writings, _, _ = strings.Cut(keys, " ")
	}
	return f, ""
}

// tags returns the comma separated tag list at the start of the glosses.
func (f fields) tags() (string, bool) {
	rest, ok := strings.CutPrefix(f.glosses, "(")
	if !ok {
		return "", false
	}
	tags, _, ok := strings.Cut(rest, ")")
	return tags, ok
}

// typeFromTags returns the word class mask for a tag list such as "v1,vt".
func typeFromTags(tags string) uint32 {
	t := wordtype.Word
	for _, tag := range strings.Split(tags, ",") {
		switch {
		case tag == "v1":
			t |= wordtype.Ichidan
		case strings.HasPrefix(tag, "v5"):
			t |= wordtype.Godan
		case tag == "adj-i":
			t |= wordtype.IAdjective
		case tag == "vk":
			t |= wordtype.KuruVerb
		case tag == "vs" || strings.HasPrefix(tag, "vs-"):
			t |= wordtype.SuruVerb
		}
	}
	return t
}

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
	"strings"

	"github.com/ianlewis/go-subedict/internal/lineparse"
)

// commonMarker is the gloss marking a common word.
const commonMarker = "(P)"

// sequencePrefix starts the entry sequence number in EDICT2 records.
const sequencePrefix = "EntL"

// Record is a parsed dictionary record.
type Record struct {
	// Writings are the headwords including any markers.
	Writings []string `json:"writings"`

	// Readings are the kana readings including any markers.
	Readings []string `json:"readings,omitempty"`

	// Tags are the tags at the start of the first gloss.
	Tags []string `json:"tags,omitempty"`

	// Glosses are the English glosses without the common word marker and
	// the sequence number.
	Glosses []string `json:"glosses"`

	// Sequence is the entry sequence number (e.g. "EntL1582710X") if any.
	Sequence string `json:"sequence,omitempty"`

	// Common is true if the record has the "(P)" common word marker.
	Common bool `json:"common,omitempty"`
}

// ParseRecord parses a single dictionary line. The line number of any
// returned error is zero.
func ParseRecord(line string) (*Record, error) {
	f, expected := split(line)
	if expected != "" {
		return nil, lineparse.Formatf(0, expected)
	}

	r := &Record{
		Writings: strings.Split(f.writings, ";"),
	}
	if f.hasReadings {
		r.Readings = strings.Split(f.readings, ";")
	}

	glosses := f.glosses
	if tags, ok := f.tags(); ok {
		r.Tags = strings.Split(tags, ",")
		glosses = strings.TrimPrefix(glosses[len(tags)+2:], " ")
	} else if strings.HasPrefix(glosses, "(") {
		return nil, lineparse.Formatf(0, ")")
	}

	for _, g := range strings.Split(strings.TrimSuffix(glosses, "/"), "/") {
		switch {
		case g == "":
		case g == commonMarker:
			r.Common = true
		case strings.HasPrefix(g, sequencePrefix):
			r.Sequence = g
		default:
			r.Glosses = append(r.Glosses, g)
		}
	}

	return r, nil
}

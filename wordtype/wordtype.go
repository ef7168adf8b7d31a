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

// Package wordtype defines the grammatical class bit mask shared by
// deinflection rules and dictionary entries.
//
// A word's mask has one bit per class the word may belong to. A rule's mask
// packs two such fields: the low byte is the classes the inflected word must
// have and the high byte the classes of the word the rule produces.
package wordtype

import "strings"

const (
	// Ichidan is the 一段 verb class ('v1').
	Ichidan uint32 = 1 << 0

	// Godan is the 五段 verb class ('v5*').
	Godan uint32 = 1 << 1

	// IAdjective is the い-adjective class ('adj-i').
	IAdjective uint32 = 1 << 2

	// KuruVerb is the くる verb class ('vk').
	KuruVerb uint32 = 1 << 3

	// SuruVerb is the する verb class ('vs', 'vs-*').
	SuruVerb uint32 = 1 << 4

	// Word is set on every dictionary word so that Any always matches it.
	Word uint32 = 1 << 7

	// Any is the mask of a word that has not been deinflected.
	Any uint32 = 0xff
)

var names = []struct {
	bit  uint32
	name string
}{
	{Ichidan, "v1"},
	{Godan, "v5"},
	{IAdjective, "adj-i"},
	{KuruVerb, "vk"},
	{SuruVerb, "vs"},
	{Word, "word"},
}

// Required returns the classes a word must have for a rule with the given
// mask to apply.
func Required(ruleType uint32) uint32 {
	return ruleType & 0xff
}

// Result returns the classes of the word produced by a rule with the given
// mask.
func Result(ruleType uint32) uint32 {
	return ruleType >> 8
}

// String returns the class names set in a word mask joined with '|'. Bits
// with no name are ignored. A zero mask is "-".
func String(mask uint32) string {
	var parts []string
	for _, n := range names {
		if mask&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "|")
}

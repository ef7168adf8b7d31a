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

// Package deinflect implements reading deinflection rule files and undoing
// the inflection of Japanese words.
//
// A rule file is a line oriented text file:
//  1. The first line is a header and is ignored.
//  2. Lines without a tab form a table of human readable reasons (e.g.
//     "polite past") referenced by index from the rules.
//  3. Rule lines have four tab separated fields: the suffix of the inflected
//     word, its replacement, the rule's type mask as a decimal integer and the
//     index of the rule's reason.
//
// The type mask of a rule packs two word class masks (see package wordtype).
// The low byte gives the classes the inflected word must have for the rule to
// apply. The high byte gives the classes of the word the rule produces.
package deinflect

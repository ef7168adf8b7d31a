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

package deinflect

import (
	"iter"
	"unicode/utf8"

	"github.com/ianlewis/go-subedict/wordtype"
)

// Candidate is a possible dictionary form of a word.
type Candidate struct {
	// Word is the candidate word.
	Word string

	// Type is the mask of word classes the candidate may belong to.
	Type uint32

	// Reasons are the reasons of the rules applied to the original word to
	// produce Word, in order of application.
	Reasons []string
}

// Deinflect returns the candidates reachable from word by undoing zero or
// more inflections. The first candidate is word itself with the type
// wordtype.Any.
//
// Candidates are not deduplicated: the same word may be produced by
// different rule chains. The search itself is not bounded; rule files are
// expected to be free of rewrite cycles. Each iteration over the returned
// sequence performs the search again.
func (rules *Rules) Deinflect(word string) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		stack := []Candidate{{
			Word: word,
			Type: wordtype.Any,
		}}
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(c) {
				return
			}
			stack = rules.expand(stack, c)
		}
	}
}

// expand pushes the candidates produced by applying a single rule to c.
func (rules *Rules) expand(stack []Candidate, c Candidate) []Candidate {
	// start is the byte offset of the suffix being examined. It moves back
	// one character at a time.
	start := len(c.Word)
	for n := 1; n <= rules.maxSuffixLen && start > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(c.Word[:start])
		start -= size

		for _, rule := range rules.bySuffix[c.Word[start:]] {
			if c.Type&wordtype.Required(rule.Type) == 0 {
				continue
			}

			reasons := make([]string, len(c.Reasons), len(c.Reasons)+1)
			copy(reasons, c.Reasons)
			stack = append(stack, Candidate{
				Word:    c.Word[:start] + rule.To,
				Type:    wordtype.Result(rule.Type),
				Reasons: append(reasons, rule.Reason),
			})
		}
	}
	return stack
}

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
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-subedict/internal/lineparse"
)

var (
	// ErrFormat indicates that a rule file line has an unexpected structure.
	ErrFormat = lineparse.ErrFormat

	// ErrInteger indicates that a numeric field of a rule is not an integer.
	ErrInteger = lineparse.ErrInteger
)

// Rule is a single deinflection rule.
type Rule struct {
	// From is the suffix of the inflected word.
	From string

	// To is the replacement for From.
	To string

	// Type is the packed word class mask of the rule.
	Type uint32

	// Reason is a human readable description of the inflection.
	Reason string
}

// Rules is an index of deinflection rules by suffix. Rules is immutable
// once created and is safe for concurrent use.
type Rules struct {
	bySuffix map[string][]*Rule
	reasons  []string
	count    int

	// maxSuffixLen is the length in characters of the longest suffix.
	maxSuffixLen int
}

// New reads a rule file from r and returns the rule index.
func New(r io.Reader) (*Rules, error) {
	rules := &Rules{
		bySuffix: map[string][]*Rule{},
	}

	s := lineparse.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		fields := strings.Split(line, "\t")
		switch len(fields) {
		case 1:
			rules.reasons = append(rules.reasons, line)
		case 4:
			rule, err := rules.parseRule(s.Line(), fields)
			if err != nil {
				return nil, err
			}
			rules.add(rule)
		default:
			return nil, lineparse.Formatf(s.Line(), "4 tab separated fields")
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	return rules, nil
}

func (rules *Rules) parseRule(lineno int, fields []string) (*Rule, error) {
	from, to, typeField, reasonField := fields[0], fields[1], fields[2], fields[3]
	if from == "" {
		return nil, lineparse.Formatf(lineno, "suffix")
	}

	ruleType, err := parseType(typeField)
	if err != nil {
		return nil, lineparse.Integer(lineno, typeField)
	}

	reason, err := strconv.Atoi(reasonField)
	if err != nil {
		return nil, lineparse.Integer(lineno, reasonField)
	}
	if reason < 0 || reason >= len(rules.reasons) {
		return nil, lineparse.Formatf(lineno, fmt.Sprintf("reason index below %d", len(rules.reasons)))
	}

	return &Rule{
		From:   from,
		To:     to,
		Type:   ruleType,
		Reason: rules.reasons[reason],
	}, nil
}

// parseType parses a decimal rule type. Hexadecimal values with a "0x"
// prefix are also accepted.
func parseType(s string) (uint32, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, err //nolint:wrapcheck // error is replaced by the caller.
	}
	return uint32(v), nil
}

func (rules *Rules) add(rule *Rule) {
	rules.bySuffix[rule.From] = append(rules.bySuffix[rule.From], rule)
	rules.count++
	if n := utf8.RuneCountInString(rule.From); n > rules.maxSuffixLen {
		rules.maxSuffixLen = n
	}
}

// ForSuffix returns the rules whose suffix is exactly s in file order. The
// returned slice must not be modified.
func (rules *Rules) ForSuffix(s string) []*Rule {
	return rules.bySuffix[s]
}

// MaxSuffixLen returns the length in characters of the longest rule suffix.
func (rules *Rules) MaxSuffixLen() int {
	return rules.maxSuffixLen
}

// Len returns the number of rules.
func (rules *Rules) Len() int {
	return rules.count
}

// Reasons returns the reason table in file order.
func (rules *Rules) Reasons() []string {
	r := make([]string, len(rules.reasons))
	copy(r, rules.reasons)
	return r
}

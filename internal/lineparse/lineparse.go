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

// Package lineparse implements scanning of the line oriented rule and
// dictionary files along with their shared error types.
package lineparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrFormat indicates that a line does not have the expected structure.
	ErrFormat = errors.New("invalid format")

	// ErrInteger indicates that a field expected to be a decimal integer is
	// not.
	ErrInteger = errors.New("invalid integer")
)

// maxLineSize is the largest line accepted by the Scanner. EDICT lines for
// entries with many senses can exceed bufio's default token size.
const maxLineSize = 1 << 20

// Error is an error associated with a line of an input file.
type Error struct {
	// Line is the 1-based line number.
	Line int

	// Expected describes the missing token, if any.
	Expected string

	// Err is either ErrFormat or ErrInteger, possibly wrapped.
	Err error
}

// Error implements [error.Error].
func (e *Error) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("line %d: %v: expected %q", e.Line, e.Err, e.Expected)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Formatf returns an ErrFormat error for the given line.
func Formatf(line int, expected string) *Error {
	return &Error{
		Line:     line,
		Expected: expected,
		Err:      ErrFormat,
	}
}

// Integer returns an ErrInteger error for the given line and field value.
func Integer(line int, field string) *Error {
	return &Error{
		Line: line,
		Err:  fmt.Errorf("%w: %q", ErrInteger, field),
	}
}

// Scanner scans a file line by line, skipping the header on the first line.
type Scanner struct {
	s    *bufio.Scanner
	line int
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &Scanner{s: s}
}

// Scan advances to the next line after the header. It returns false when
// the scan stops either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		s.line++
		if s.line == 1 {
			// Skip the header.
			continue
		}
		return true
	}
	return false
}

// Text returns the current line without its line terminator.
func (s *Scanner) Text() string {
	return strings.TrimSuffix(s.s.Text(), "\r")
}

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first non-EOF error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

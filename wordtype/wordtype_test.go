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

package wordtype

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mask     uint32
		expected string
	}{
		{
			name:     "zero",
			mask:     0,
			expected: "-",
		},
		{
			name:     "word",
			mask:     Word,
			expected: "word",
		},
		{
			name:     "ichidan word",
			mask:     Word | Ichidan,
			expected: "v1|word",
		},
		{
			name:     "any",
			mask:     Any,
			expected: "v1|v5|adj-i|vk|vs|word",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, String(test.mask)); diff != "" {
				t.Fatalf("String (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRequiredResult(t *testing.T) {
	t.Parallel()

	// A rule turning an ichidan word into a godan word.
	ruleType := Godan<<8 | Ichidan
	if diff := cmp.Diff(Ichidan, Required(ruleType)); diff != "" {
		t.Fatalf("Required (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(Godan, Result(ruleType)); diff != "" {
		t.Fatalf("Result (-want, +got):\n%s", diff)
	}
}

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

package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// WriteOptions are options for writing a temporary dictionary file.
type WriteOptions struct {
	// Ext is an optional compression extension for the file. '.gz' compresses
	// the file with gzip and '.dz' with dictzip.
	Ext string

	// Encoding is the encoding of the file. Defaults to UTF-8.
	Encoding encoding.Encoding
}

func (o *WriteOptions) GetExt() string {
	if o == nil {
		return ""
	}
	return o.Ext
}

func (o *WriteOptions) GetEncoding() encoding.Encoding {
	if o == nil || o.Encoding == nil {
		return encoding.Nop
	}
	return o.Encoding
}

// WriteTemp writes data to a file named name in a temporary directory and
// returns the file's path. The directory is removed when the test ends.
func WriteTemp(t *testing.T, name, data string, opts *WriteOptions) string {
	t.Helper()

	encoded, _, err := transform.String(opts.GetEncoding().NewEncoder(), data)
	if err != nil {
		t.Fatalf("encoding %s: %v", name, err)
	}

	path := filepath.Join(t.TempDir(), name+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch opts.GetExt() {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".dz":
		w, err = dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
	default:
		w = f
	}

	if _, err := io.WriteString(w, encoded); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

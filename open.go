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
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-subedict/deinflect"
	"github.com/ianlewis/go-subedict/edict"
)

var (
	// ErrUnsupportedEncoding indicates that the file encoding is not supported.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrMissingPath indicates that a required file path was not given.
	ErrMissingPath = errors.New("missing path")
)

// Supported file encodings.
const (
	EncodingUTF8     = "utf-8"
	EncodingEUCJP    = "euc-jp"
	EncodingShiftJIS = "shift_jis"
)

// Options are options for opening the dictionary files.
type Options struct {
	// RulesPath is the path to the deinflection rule file.
	RulesPath string

	// DictPath is the path to the EDICT2 dictionary file.
	DictPath string

	// NamesPath is the path to the ENAMDICT name dictionary file. It is
	// optional.
	NamesPath string

	// Encoding is the encoding of the dictionary files. The rule file is
	// always read as UTF-8. Defaults to EncodingUTF8.
	Encoding string
}

// Open reads and indexes the files given in opts. The files are read
// concurrently. Files with a .gz extension are decompressed with gzip and
// files with a .dz extension with dictzip.
func Open(ctx context.Context, opts *Options) (*SubEdict, error) {
	if opts == nil || opts.RulesPath == "" {
		return nil, fmt.Errorf("%w: rules", ErrMissingPath)
	}
	if opts.DictPath == "" {
		return nil, fmt.Errorf("%w: dictionary", ErrMissingPath)
	}
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	var (
		rules *deinflect.Rules
		dict  *edict.Index
		names *edict.Index
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rules, err = readFile(ctx, opts.RulesPath, encoding.Nop, deinflect.New)
		return err
	})
	g.Go(func() error {
		var err error
		dict, err = readFile(ctx, opts.DictPath, enc, edict.New)
		return err
	})
	if opts.NamesPath != "" {
		g.Go(func() error {
			var err error
			names, err = readFile(ctx, opts.NamesPath, enc, edict.New)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // errors are wrapped by readFile.
	}

	return New(rules, dict, names), nil
}

// OpenRules reads and indexes the deinflection rule file at path.
func OpenRules(ctx context.Context, path string) (*deinflect.Rules, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: rules", ErrMissingPath)
	}
	return readFile(ctx, path, encoding.Nop, deinflect.New)
}

// CheckEncoding returns an error if name is not a supported file encoding.
func CheckEncoding(name string) error {
	_, err := lookupEncoding(name)
	return err
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", EncodingUTF8, "utf8":
		return encoding.Nop, nil
	case EncodingEUCJP, "eucjp":
		return japanese.EUCJP, nil
	case EncodingShiftJIS, "sjis":
		return japanese.ShiftJIS, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

// readFile opens the file at path and parses it with parse.
func readFile[T any](ctx context.Context, path string, enc encoding.Encoding, parse func(io.Reader) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return zero, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return zero, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	r = transform.NewReader(r, enc.NewDecoder())
	v, err := parse(&ctxReader{ctx: ctx, r: r})
	if err != nil {
		return zero, fmt.Errorf("reading %q: %w", path, err)
	}
	return v, nil
}

// ctxReader stops reading once its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

// Read implements [io.Reader.Read].
func (r *ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err //nolint:wrapcheck // context errors are returned as is.
	}
	//nolint:wrapcheck // error should not be wrapped
	return r.r.Read(p)
}

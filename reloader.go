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
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LoadFunc builds a new SubEdict.
type LoadFunc func(ctx context.Context) (*SubEdict, error)

// cacheKey identifies a cached annotation.
type cacheKey struct {
	text  string
	names bool
}

// generation is a loaded SubEdict along with the results computed from it.
type generation struct {
	s     *SubEdict
	cache *lru.Cache[cacheKey, []string]
}

// Reloader holds the current SubEdict and replaces it with a freshly loaded
// one on Reload. A Reloader is safe for concurrent use.
type Reloader struct {
	load      LoadFunc
	cacheSize int

	current atomic.Pointer[generation]

	// mu serializes reloads.
	mu sync.Mutex
}

// NewReloader loads a SubEdict using load and returns a Reloader holding it.
// Up to cacheSize annotation results are cached per loaded SubEdict. A
// cacheSize of zero disables caching.
func NewReloader(ctx context.Context, load LoadFunc, cacheSize int) (*Reloader, error) {
	r := &Reloader{
		load:      load,
		cacheSize: cacheSize,
	}
	if err := r.Reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload loads a new SubEdict. The current SubEdict is replaced only when
// loading succeeds.
func (r *Reloader) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("loading dictionaries: %w", err)
	}

	g := &generation{s: s}
	if r.cacheSize > 0 {
		g.cache, err = lru.New[cacheKey, []string](r.cacheSize)
		if err != nil {
			return fmt.Errorf("creating cache: %w", err)
		}
	}
	r.current.Store(g)
	return nil
}

// Current returns the current SubEdict.
func (r *Reloader) Current() *SubEdict {
	return r.current.Load().s
}

// Annotate calls Annotate on the current SubEdict. The returned slice must
// not be modified.
func (r *Reloader) Annotate(text string) []string {
	return r.annotate(text, false)
}

// AnnotateNames calls AnnotateNames on the current SubEdict. The returned
// slice must not be modified.
func (r *Reloader) AnnotateNames(text string) []string {
	return r.annotate(text, true)
}

func (r *Reloader) annotate(text string, names bool) []string {
	g := r.current.Load()

	key := cacheKey{text: text, names: names}
	if g.cache != nil {
		if lines, ok := g.cache.Get(key); ok {
			return lines
		}
	}

	var lines []string
	if names {
		lines = g.s.AnnotateNames(text)
	} else {
		lines = g.s.Annotate(text)
	}

	if g.cache != nil {
		g.cache.Add(key, lines)
	}
	return lines
}

package xref

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"xref-assist/decl"
)

// Cache memoizes the built State for one codebase, keyed on the index's
// modification counter. Any change invalidates the whole State; there is no
// incremental update.
//
// Concurrent callers never observe a partially built State: a rebuild is
// published atomically after it completes, and at most one rebuild runs per
// snapshot version. Callers arriving while one is in flight wait for and
// share its result instead of racing a duplicate build.
type Cache struct {
	mu    sync.Mutex
	state *State

	flight singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the memoized State if version matches it; otherwise it
// rebuilds through build and replaces the memo. A rebuild always runs to
// completion; a newer version simply triggers a subsequent rebuild rather
// than aborting the current one.
func (c *Cache) Get(version uint64, build func() *State) *State {
	c.mu.Lock()
	cur := c.state
	c.mu.Unlock()

	if cur != nil && cur.Version() == version {
		return cur
	}

	v, _, _ := c.flight.Do(strconv.FormatUint(version, 10), func() (any, error) {
		s := build()

		c.mu.Lock()
		c.state = s
		c.mu.Unlock()

		return s, nil
	})

	return v.(*State)
}

// Engine couples a declaration index with a cache, rebuilding the State
// whenever the index's modification counter changes.
type Engine struct {
	index decl.Index
	cache Cache
}

// NewEngine creates an Engine over the given index.
func NewEngine(index decl.Index) *Engine {
	return &Engine{index: index}
}

// State returns the cross-reference State for the index's current snapshot,
// building it on first use and after every invalidation.
func (e *Engine) State() *State {
	version := e.index.Version()

	return e.cache.Get(version, func() *State {
		return NewBuilder(e.index).Build()
	})
}

// ExportsReferencing answers against the current snapshot's State.
func (e *Engine) ExportsReferencing(d decl.Declaration) []decl.Declaration {
	return e.State().ExportsReferencing(d)
}

// ReferencesOf answers against the current snapshot's State.
func (e *Engine) ReferencesOf(d decl.Declaration) []decl.Declaration {
	return e.State().ReferencesOf(d)
}

// Related answers against the current snapshot's State.
func (e *Engine) Related(d decl.Declaration) []decl.Declaration {
	return e.State().Related(d)
}

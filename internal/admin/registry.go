package admin

import (
	"bytes"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Query holds the parsed query parameters of one admin request.
// Duplicate keys resolve to the last occurrence.
type Query map[string]string

// Get returns the value for key, or "" when absent.
func (q Query) Get(key string) string { return q[key] }

// Has reports whether key was present in the query string.
func (q Query) Has(key string) bool {
	_, ok := q[key]
	return ok
}

// HandlerFunc is one admin handler. It receives the parsed query, the
// response headers (pre-seeded with a text/plain content type) and the
// response body buffer, and returns the HTTP status to emit. Handlers
// are synchronous and only read in-process state.
type HandlerFunc func(q Query, headers http.Header, body *bytes.Buffer) int

// HandlerEntry is one registered admin path.
type HandlerEntry struct {
	Prefix       string
	HelpText     string
	Handler      HandlerFunc
	Removable    bool
	MutatesState bool
}

// registry is the table of admin handlers. Mutations are serialized;
// lookups may run concurrently with a mutation. The lock is never held
// while a handler executes.
type registry struct {
	mu      sync.Mutex
	entries map[string]HandlerEntry
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]HandlerEntry)}
}

// add registers a handler. It fails without mutation when the prefix
// is already taken.
func (r *registry) add(e HandlerEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[e.Prefix]; exists {
		return false
	}
	r.entries[e.Prefix] = e
	return true
}

// remove deletes a removable handler. It fails when the prefix is
// absent or the handler is a built-in.
func (r *registry) remove(prefix string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.entries[prefix]
	if !exists || !e.Removable {
		return false
	}
	delete(r.entries, prefix)
	return true
}

// sorted returns every entry ordered lexicographically by prefix.
func (r *registry) sorted() []HandlerEntry {
	r.mu.Lock()
	out := make([]HandlerEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

// lookup selects the entry with the longest prefix matching path.
// The home entry "/" only matches the bare root; it never acts as a
// catch-all for unknown paths.
func (r *registry) lookup(path string) (HandlerEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if path == "/" {
		e, ok := r.entries["/"]
		return e, ok
	}

	var best HandlerEntry
	found := false
	for prefix, e := range r.entries {
		if prefix == "/" {
			continue
		}
		if strings.HasPrefix(path, prefix) && (!found || len(prefix) > len(best.Prefix)) {
			best = e
			found = true
		}
	}
	return best, found
}

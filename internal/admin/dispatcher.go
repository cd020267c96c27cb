package admin

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const defaultContentType = "text/plain; charset=utf-8"

// parseQuery parses a raw query string into a Query. When a key
// repeats, the last occurrence wins. Pairs that fail percent-decoding
// are kept verbatim; handlers ignore parameters they do not recognize.
func parseQuery(raw string) Query {
	q := make(Query)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if v, err := url.QueryUnescape(value); err == nil {
			value = v
		}
		q[key] = value
	}
	return q
}

// Dispatch resolves pathAndQuery to one handler and runs it. The
// returned status is the HTTP status to emit. A panicking handler is
// converted to a 500 with a plaintext reason; it never propagates.
func (a *Admin) Dispatch(pathAndQuery string, headers http.Header, body *bytes.Buffer) (status int) {
	path, rawQuery, _ := strings.Cut(pathAndQuery, "?")

	// One leading slash is the path separator; an empty remainder is
	// the home page.
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		path = "/"
	} else {
		path = "/" + trimmed
	}

	entry, ok := a.registry.lookup(path)
	if !ok {
		headers.Set("Content-Type", defaultContentType)
		body.WriteString("not found\n")
		return http.StatusNotFound
	}

	headers.Set("Content-Type", defaultContentType)

	defer func() {
		if r := recover(); r != nil {
			a.log.Error("admin handler panicked", "prefix", entry.Prefix, "panic", r)
			for k := range headers {
				delete(headers, k)
			}
			headers.Set("Content-Type", defaultContentType)
			body.Reset()
			fmt.Fprintf(body, "internal error serving %s\n", entry.Prefix)
			status = http.StatusInternalServerError
		}
	}()

	return entry.Handler(parseQuery(rawQuery), headers, body)
}

// AddHandler registers a dynamic admin handler. It reports false and
// leaves the registry unchanged when the prefix is already taken.
func (a *Admin) AddHandler(prefix, helpText string, h HandlerFunc, removable, mutatesState bool) bool {
	return a.registry.add(HandlerEntry{
		Prefix:       prefix,
		HelpText:     helpText,
		Handler:      h,
		Removable:    removable,
		MutatesState: mutatesState,
	})
}

// RemoveHandler removes a dynamic handler. Built-ins are not removable;
// removing one reports false and leaves it callable.
func (a *Admin) RemoveHandler(prefix string) bool {
	return a.registry.remove(prefix)
}

// Handlers returns every registered handler sorted by prefix.
func (a *Admin) Handlers() []HandlerEntry {
	return a.registry.sorted()
}

package admin

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
)

func TestParseQueryLastWins(t *testing.T) {
	q := parseQuery("level=debug&level=info&other=1")
	if q.Get("level") != "info" {
		t.Errorf("level = %q, want last occurrence to win", q.Get("level"))
	}
	if q.Get("other") != "1" {
		t.Errorf("other = %q", q.Get("other"))
	}
}

func TestParseQueryEscapes(t *testing.T) {
	q := parseQuery("name=a%20b&flag")
	if q.Get("name") != "a b" {
		t.Errorf("name = %q, want %q", q.Get("name"), "a b")
	}
	if !q.Has("flag") || q.Get("flag") != "" {
		t.Error("bare key should be present with empty value")
	}

	// A bad escape keeps the raw token instead of dropping the pair.
	q = parseQuery("bad=%zz")
	if !q.Has("bad") {
		t.Error("pair with bad escape should be kept")
	}
}

func TestDispatchNotFound(t *testing.T) {
	a := New(Options{})

	headers := make(http.Header)
	var body bytes.Buffer
	status := a.Dispatch("/no/such/path", headers, &body)

	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	// The 404 body must not enumerate registered paths.
	if strings.Contains(body.String(), "/stats") {
		t.Errorf("404 body leaks registered paths: %q", body.String())
	}
}

func TestDispatchHome(t *testing.T) {
	a := New(Options{})

	for _, path := range []string{"/", ""} {
		headers := make(http.Header)
		var body bytes.Buffer
		if status := a.Dispatch(path, headers, &body); status != http.StatusOK {
			t.Errorf("Dispatch(%q) = %d, want 200", path, status)
		}
		if !strings.Contains(headers.Get("Content-Type"), "text/html") {
			t.Errorf("home Content-Type = %q", headers.Get("Content-Type"))
		}
	}
}

func TestDispatchDefaultContentType(t *testing.T) {
	a := New(Options{})
	a.AddHandler("/plain", "plain", okHandler("x"), true, false)

	headers := make(http.Header)
	var body bytes.Buffer
	a.Dispatch("/plain", headers, &body)

	if ct := headers.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("default Content-Type = %q, want text/plain", ct)
	}
}

func TestDispatchQueryReachesHandler(t *testing.T) {
	a := New(Options{})

	var got Query
	a.AddHandler("/echo", "echo", func(q Query, h http.Header, b *bytes.Buffer) int {
		got = q
		return http.StatusOK
	}, true, false)

	a.Dispatch("/echo?a=1&b=two&a=3", make(http.Header), &bytes.Buffer{})
	if got.Get("a") != "3" || got.Get("b") != "two" {
		t.Errorf("handler saw query %v", got)
	}
}

func TestDispatchPanicBecomes500(t *testing.T) {
	a := New(Options{})
	a.AddHandler("/boom", "panics", func(q Query, h http.Header, b *bytes.Buffer) int {
		b.WriteString("partial output that must not leak")
		panic("kaboom")
	}, true, false)

	headers := make(http.Header)
	var body bytes.Buffer
	status := a.Dispatch("/boom", headers, &body)

	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if strings.Contains(body.String(), "partial output") {
		t.Error("partial handler output leaked into 500 response")
	}
	if body.Len() == 0 {
		t.Error("500 response should carry a plaintext reason")
	}
}

func TestDispatchHandlerStatusPassesThrough(t *testing.T) {
	a := New(Options{})
	a.AddHandler("/teapot", "teapot", func(q Query, h http.Header, b *bytes.Buffer) int {
		return http.StatusTeapot
	}, true, false)

	if status := a.Dispatch("/teapot", make(http.Header), &bytes.Buffer{}); status != http.StatusTeapot {
		t.Errorf("status = %d, want handler's status", status)
	}
}

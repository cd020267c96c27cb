package admin

import (
	"bytes"
	"io"
	"net/http"
)

// streamDispatch adapts the dispatcher to the stream lifecycle. The
// request body is buffered by the stream but the admin handlers are
// GET-style and ignore it.
func (a *Admin) streamDispatch(method, pathAndQuery string, requestBody []byte, headers http.Header, respBody *bytes.Buffer) int {
	return a.Dispatch(pathAndQuery, headers, respBody)
}

// ServeHTTP implements http.Handler. Each request runs through the
// stream adapter: headers, then body chunks, then dispatch on the
// final chunk. A connection torn down mid-body discards the request
// without dispatching.
func (a *Admin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	emit := func(status int, headers http.Header, body []byte) {
		for k, vs := range headers {
			w.Header()[k] = vs
		}
		w.WriteHeader(status)
		w.Write(body)
	}

	s := NewStream(a.streamDispatch, emit)
	defer s.Close()

	a.log.Debug("admin request",
		"request_id", s.ID(),
		"method", r.Method,
		"path", r.URL.Path,
		"remote", r.RemoteAddr)

	endStream := r.ContentLength == 0 || r.Body == nil || r.Body == http.NoBody
	s.OnHeaders(r.Method, r.URL.RequestURI(), endStream)

	if endStream {
		return
	}

	buf := make([]byte, 4096)
	for s.State() != StateComplete {
		n, err := r.Body.Read(buf)
		if err == io.EOF {
			if n > 0 {
				s.OnData(buf[:n], true)
			} else {
				s.OnTrailers()
			}
			break
		}
		if err != nil {
			// Torn connection; the deferred Close discards the request.
			a.log.Debug("admin request body read failed",
				"request_id", s.ID(), "error", err)
			return
		}
		s.OnData(buf[:n], false)
	}
}

package admin

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/oklog/ulid/v2"
)

// StreamState tracks one request through the decode lifecycle.
type StreamState int

const (
	StateAwaitingHeaders StreamState = iota
	StateAwaitingBody
	StateComplete
)

// DispatchFunc runs the dispatcher for one fully-received request.
// requestBody is the concatenation of every body chunk.
type DispatchFunc func(method, pathAndQuery string, requestBody []byte, headers http.Header, respBody *bytes.Buffer) int

// EmitFunc delivers the finished response through the encode path.
type EmitFunc func(status int, headers http.Header, body []byte)

// Stream buffers one admin request across streaming decode events and
// invokes the dispatcher exactly once, when the request is fully
// received. One stream belongs to one connection worker; it is not
// safe for concurrent use.
type Stream struct {
	id           string
	dispatch     DispatchFunc
	emit         EmitFunc
	state        StreamState
	method       string
	pathAndQuery string
	body         bytes.Buffer
	dispatched   bool
}

// NewStream creates a stream for one request.
func NewStream(dispatch DispatchFunc, emit EmitFunc) *Stream {
	return &Stream{
		id:       ulid.Make().String(),
		dispatch: dispatch,
		emit:     emit,
	}
}

// ID returns the request id assigned to this stream.
func (s *Stream) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Stream) State() StreamState { return s.state }

// Body returns the request body accumulated so far.
func (s *Stream) Body() []byte { return s.body.Bytes() }

// OnHeaders records the request line. When endStream is set the
// request declares no body and dispatch happens synchronously here.
func (s *Stream) OnHeaders(method, pathAndQuery string, endStream bool) {
	if s.state != StateAwaitingHeaders {
		return
	}

	s.method = method
	s.pathAndQuery = pathAndQuery

	if endStream {
		s.complete()
		return
	}
	s.state = StateAwaitingBody
}

// OnData appends one body chunk. The final chunk triggers dispatch.
func (s *Stream) OnData(chunk []byte, endStream bool) {
	if s.state == StateComplete {
		return
	}

	s.body.Write(chunk)
	if endStream {
		s.complete()
	}
}

// OnTrailers ends the stream regardless of body flags.
func (s *Stream) OnTrailers() {
	if s.state == StateComplete {
		return
	}
	s.complete()
}

// Close discards the request when the connection is torn down before
// completion. No dispatch occurs. Closing a completed stream is a
// no-op.
func (s *Stream) Close() {
	if s.state == StateComplete {
		return
	}
	s.state = StateComplete
	s.body.Reset()
}

// complete is the single transition into StateComplete that dispatches.
// Duplicate completion signals are absorbed by the dispatched flag.
func (s *Stream) complete() {
	s.state = StateComplete
	if s.dispatched {
		return
	}
	s.dispatched = true

	headers := make(http.Header)
	var respBody bytes.Buffer
	status := s.dispatch(s.method, s.pathAndQuery, s.body.Bytes(), headers, &respBody)

	headers.Set("Content-Length", strconv.Itoa(respBody.Len()))
	s.emit(status, headers, respBody.Bytes())
}

// Package admin implements the administrative endpoint of EdgeRelay.
//
// The admin surface is a fixed set of HTTP paths for diagnostics and
// live control (stats export, log levels, health-check override,
// graceful shutdown), served on a dedicated listener away from the
// data path. Core pieces:
//
//   - registry.go: prefix -> handler table with longest-prefix dispatch
//   - dispatcher.go: query parsing, handler invocation, panic recovery
//   - stream.go: request-lifecycle adapter over streaming decode events
//   - handlers_*.go: the built-in handlers
//   - serve.go: net/http glue and connection policy
//
// The admin endpoint has no authentication. It must only be bound to a
// trusted interface.
package admin

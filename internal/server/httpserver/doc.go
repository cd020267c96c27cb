// Package httpserver runs the admin HTTP listener for EdgeRelay.
//
// It wraps stdlib net/http with the fixed connection policy of the
// admin endpoint: header and body timeouts, a header size cap, and
// graceful shutdown with a configurable timeout. The handler it serves
// is assembled by internal/admin.
package httpserver

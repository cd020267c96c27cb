// Package connection provides the admin endpoint client for
// edgerelay-cli.
//
// The admin surface is plain HTTP; the client reaches it over TCP or
// over the local Unix domain socket with the same API.
package connection

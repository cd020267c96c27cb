// Package main provides the entry point for edgerelay-server.
//
// The server runs the EdgeRelay admin control plane:
//
//   - Admin HTTP listener for diagnostics and live control
//   - Local Unix socket serving the same admin surface
//   - Stats store, cluster state, runtime overrides and certificate
//     views the admin handlers read
//
// Usage:
//
//	edgerelay-server [flags]
//	edgerelay-server --config /path/to/config.yaml
//
// The server loads configuration, initializes infrastructure
// components, and starts both admin listeners.
package main

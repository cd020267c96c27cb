// Package main provides the entry point for edgerelay-cli.
//
// edgerelay-cli talks to a running edgerelay-server's admin endpoint:
//
//	edgerelay-cli stats list
//	edgerelay-cli --socket /var/run/edgerelay/admin.sock system quit
//	edgerelay-cli -o json system info
package main

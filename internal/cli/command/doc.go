// Package command provides CLI command definitions for edgerelay-cli.
//
// It uses urfave/cli/v2 for command parsing. Every command maps to one
// admin endpoint request over TCP or the local management socket.
package command

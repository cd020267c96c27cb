// Package output renders admin responses for edgerelay-cli.
//
// Admin responses are plaintext or JSON. Text output passes through
// verbatim; json re-indents a JSON response; yaml converts a JSON
// response to YAML.
package output

// Package metric renders EdgeRelay stat snapshots for export.
//
// This package implements the two exposition formats served by the
// admin endpoint:
//
//   - json.go: internal JSON format ({"stats": [{"name", "value"}...]})
//   - prometheus.go: Prometheus text exposition format
//
// Both renderers are pure functions over a []Sample snapshot; they do
// no I/O and hold no state. Prometheus metric and label names are
// sanitized to the exposition grammar before emission.
package metric

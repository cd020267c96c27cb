// Package stats implements the in-process stat store for EdgeRelay.
//
// The store owns named counters and gauges, optionally carrying
// extracted names and tags for export grouping. It is written from
// data-path workers and read from the admin endpoint, so all
// operations are safe for concurrent use:
//
//   - store.go: sharded registry of counters and gauges
//   - Snapshot(): eventually-consistent read of every stat
//   - ResetCounters(): zeroes counters, leaves gauges untouched
//
// A snapshot is not atomic across stats; each value is read once,
// which is the documented consistency model for admin reads.
package stats

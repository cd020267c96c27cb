// Package cmap provides a concurrent map implementation for EdgeRelay.
//
// This package implements a sharded concurrent map optimized for
// high-throughput stat storage with the following features:
//
//   - Sharding: Configurable shard count for parallelism
//   - Fine-grained Locking: Per-shard RWMutex for minimal contention
//   - Iteration: Safe iteration while holding read locks
//
// Usage:
//
//	m := cmap.NewWithShards[*stats.Counter](32)
//	m.Set("cluster.foo.upstream_rq_200", c)
//	val, ok := m.Get("cluster.foo.upstream_rq_200")
//
// Thread Safety:
//
// All operations are thread-safe. Read operations (Get, Has) use RLock,
// write operations (Set, Delete) use Lock.
package cmap

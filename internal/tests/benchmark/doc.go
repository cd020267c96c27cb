// Package benchmark provides performance benchmarks for EdgeRelay.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// The benchmarks cover the hot admin paths: stat snapshots, the two
// export formats, and dispatch itself.
package benchmark

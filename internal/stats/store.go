// Package stats implements the in-process stat store for EdgeRelay.
package stats

import (
	"sort"
	"sync/atomic"

	"github.com/edgerelay/edgerelay-go/internal/telemetry/metric"
	"github.com/edgerelay/edgerelay-go/pkg/cmap"
)

// Counter is a monotonically increasing stat. The zero value is not
// usable; obtain counters from a Store.
type Counter struct {
	name          string
	extractedName string
	tags          []metric.Tag
	value         atomic.Uint64
}

// Inc adds one.
func (c *Counter) Inc() { c.value.Add(1) }

// Add adds delta.
func (c *Counter) Add(delta uint64) { c.value.Add(delta) }

// Value returns the current value.
func (c *Counter) Value() uint64 { return c.value.Load() }

// Name returns the full stat name.
func (c *Counter) Name() string { return c.name }

func (c *Counter) reset() { c.value.Store(0) }

// Gauge is a stat that can move in both directions.
type Gauge struct {
	name          string
	extractedName string
	tags          []metric.Tag
	value         atomic.Uint64
}

// Set stores an absolute value.
func (g *Gauge) Set(v uint64) { g.value.Store(v) }

// Inc adds one.
func (g *Gauge) Inc() { g.value.Add(1) }

// Dec subtracts one.
func (g *Gauge) Dec() { g.value.Add(^uint64(0)) }

// Add adds delta.
func (g *Gauge) Add(delta uint64) { g.value.Add(delta) }

// Sub subtracts delta.
func (g *Gauge) Sub(delta uint64) { g.value.Add(^(delta - 1)) }

// Value returns the current value.
func (g *Gauge) Value() uint64 { return g.value.Load() }

// Name returns the full stat name.
func (g *Gauge) Name() string { return g.name }

// Store is the registry of all counters and gauges in the process.
type Store struct {
	counters *cmap.Map[*Counter]
	gauges   *cmap.Map[*Gauge]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		counters: cmap.NewWithShards[*Counter](32),
		gauges:   cmap.NewWithShards[*Gauge](32),
	}
}

// Counter returns the counter with the given name, creating it on
// first use. Concurrent callers for the same name receive the same
// counter.
func (s *Store) Counter(name string) *Counter {
	return s.CounterWithTags(name, "", nil)
}

// CounterWithTags returns the named counter, recording the extracted
// name and tags used for export grouping. Tag metadata is set by the
// first creator and never changes afterwards.
func (s *Store) CounterWithTags(name, extractedName string, tags []metric.Tag) *Counter {
	c, _ := s.counters.GetOrSet(name, &Counter{
		name:          name,
		extractedName: extractedName,
		tags:          tags,
	})
	return c
}

// Gauge returns the gauge with the given name, creating it on first use.
func (s *Store) Gauge(name string) *Gauge {
	return s.GaugeWithTags(name, "", nil)
}

// GaugeWithTags returns the named gauge with export metadata.
func (s *Store) GaugeWithTags(name, extractedName string, tags []metric.Tag) *Gauge {
	g, _ := s.gauges.GetOrSet(name, &Gauge{
		name:          name,
		extractedName: extractedName,
		tags:          tags,
	})
	return g
}

// Snapshot returns a point-in-time copy of every stat: counters first,
// then gauges, each group sorted by name. Values are read individually;
// the snapshot is not atomic across stats.
func (s *Store) Snapshot() []metric.Sample {
	samples := make([]metric.Sample, 0, s.counters.Count()+s.gauges.Count())

	counters := s.counters.Values()
	sort.Slice(counters, func(i, j int) bool { return counters[i].name < counters[j].name })
	for _, c := range counters {
		samples = append(samples, metric.Sample{
			Name:          c.name,
			ExtractedName: c.extractedName,
			Tags:          c.tags,
			Value:         c.Value(),
			Kind:          metric.KindCounter,
		})
	}

	gauges := s.gauges.Values()
	sort.Slice(gauges, func(i, j int) bool { return gauges[i].name < gauges[j].name })
	for _, g := range gauges {
		samples = append(samples, metric.Sample{
			Name:          g.name,
			ExtractedName: g.extractedName,
			Tags:          g.tags,
			Value:         g.Value(),
			Kind:          metric.KindGauge,
		})
	}

	return samples
}

// ResetCounters zeroes every counter. Gauges are not touched.
func (s *Store) ResetCounters() {
	s.counters.Range(func(_ string, c *Counter) bool {
		c.reset()
		return true
	})
}

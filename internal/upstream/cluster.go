// Package upstream exposes cluster state to the admin endpoint.
//
// The data path owns the live cluster manager; this package defines
// the read-only snapshot shape the admin surface renders, plus a
// small in-memory manager used by the server bootstrap and by tests.
package upstream

import (
	"sort"
	"sync"
)

// ResourceLimits are the circuit-breaker limits for one priority tier.
type ResourceLimits struct {
	Priority           string
	MaxConnections     uint64
	MaxPendingRequests uint64
	MaxRequests        uint64
	MaxRetries         uint64
}

// OutlierInfo is the outlier-detection view of a cluster.
type OutlierInfo struct {
	SuccessRateAverage        float64
	SuccessRateEjectionThresh float64
}

// HostHealth is the health view of one upstream host.
type HostHealth struct {
	Address string
	Healthy bool
	Weight  uint64
}

// ClusterSnapshot is a point-in-time copy of one cluster's state.
type ClusterSnapshot struct {
	Name          string
	CircuitLimits []ResourceLimits
	Outlier       *OutlierInfo
	Hosts         []HostHealth
	AddedViaAPI   bool
}

// Manager provides cluster snapshots to the admin surface.
type Manager interface {
	Clusters() []ClusterSnapshot
}

// MemoryManager is a Manager backed by a map, suitable for static
// configurations and tests.
type MemoryManager struct {
	mu       sync.RWMutex
	clusters map[string]ClusterSnapshot
}

// NewMemoryManager creates an empty manager.
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{clusters: make(map[string]ClusterSnapshot)}
}

// Put stores or replaces a cluster snapshot.
func (m *MemoryManager) Put(c ClusterSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clusters[c.Name] = c
}

// Remove deletes a cluster.
func (m *MemoryManager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clusters, name)
}

// Clusters returns every cluster sorted by name.
func (m *MemoryManager) Clusters() []ClusterSnapshot {
	m.mu.RLock()
	out := make([]ClusterSnapshot, 0, len(m.clusters))
	for _, c := range m.clusters {
		out = append(out, c)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

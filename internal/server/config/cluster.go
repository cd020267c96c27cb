// Package config defines the server configuration structure.
package config

import (
	"fmt"
	"net"
)

// ClusterSeed is a statically configured upstream cluster. Seeds are
// loaded into the cluster manager at startup and show up in /clusters.
type ClusterSeed struct {
	// Name is the unique cluster name.
	Name string `koanf:"name"`

	// Hosts is the list of upstream host addresses ("host:port").
	Hosts []string `koanf:"hosts"`

	// MaxConnections caps concurrent connections to the cluster.
	// Zero means unlimited.
	MaxConnections uint64 `koanf:"max_connections"`

	// MaxPendingRequests caps queued requests. Zero means unlimited.
	MaxPendingRequests uint64 `koanf:"max_pending_requests"`

	// MaxRequests caps in-flight requests. Zero means unlimited.
	MaxRequests uint64 `koanf:"max_requests"`

	// MaxRetries caps concurrent retries. Zero means unlimited.
	MaxRetries uint64 `koanf:"max_retries"`
}

// verifyCluster validates one cluster seed.
func verifyCluster(c *ClusterSeed) error {
	if c.Name == "" {
		return fmt.Errorf("static.clusters: cluster name is required")
	}

	if len(c.Hosts) == 0 {
		return fmt.Errorf("static.clusters[%s]: at least one host is required", c.Name)
	}

	for _, h := range c.Hosts {
		if _, _, err := net.SplitHostPort(h); err != nil {
			return fmt.Errorf("static.clusters[%s]: invalid host %q: %w", c.Name, h, err)
		}
	}

	return nil
}

// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"
	"net"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyAdmin(&cfg.Admin); err != nil {
		return err
	}
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	for i := range cfg.Static.Clusters {
		if err := verifyCluster(&cfg.Static.Clusters[i]); err != nil {
			return err
		}
	}
	return nil
}

func verifyAdmin(cfg *AdminSection) error {
	if cfg.Addr == "" {
		return errors.New("admin.addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("admin.addr: %w", err)
	}

	if cfg.MaxHeaderBytes < 0 {
		return errors.New("admin.max_header_bytes must not be negative")
	}
	if cfg.RateLimit < 0 {
		return errors.New("admin.rate_limit must not be negative")
	}
	if cfg.RateLimit > 0 && cfg.RateBurst < 1 {
		return errors.New("admin.rate_burst must be at least 1 when rate limiting is on")
	}

	return nil
}

func verifyServer(cfg *ServerSection) error {
	seen := make(map[string]struct{}, len(cfg.Listeners))
	for i := range cfg.Listeners {
		l := &cfg.Listeners[i]
		if l.Name == "" {
			return fmt.Errorf("server.listeners[%d]: name is required", i)
		}
		if _, dup := seen[l.Name]; dup {
			return fmt.Errorf("server.listeners: duplicate name %q", l.Name)
		}
		seen[l.Name] = struct{}{}

		if _, _, err := net.SplitHostPort(l.Addr); err != nil {
			return fmt.Errorf("server.listeners[%s]: invalid addr %q: %w", l.Name, l.Addr, err)
		}

		if (l.TLSCertFile == "") != (l.TLSKeyFile == "") {
			return fmt.Errorf("server.listeners[%s]: tls_cert_file and tls_key_file must be set together", l.Name)
		}
	}
	return nil
}

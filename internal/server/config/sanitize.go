// Package config defines the server configuration structure.
package config

import (
	"strings"

	"github.com/edgerelay/edgerelay-go/internal/telemetry/logger"
)

// Sanitize returns a copy of the config with sensitive fields masked.
//
// This is used for logging configuration without exposing secrets.
// Runtime values are free-form operator input, so any key that looks
// like a credential gets its value masked.
func Sanitize(cfg *ServerConfig) *ServerConfig {
	sanitized := *cfg

	if len(cfg.Static.Runtime) > 0 {
		rt := make(map[string]string, len(cfg.Static.Runtime))
		for k, v := range cfg.Static.Runtime {
			if logger.IsSensitiveKey(k) {
				v = maskSecret(v)
			}
			rt[k] = v
		}
		sanitized.Static.Runtime = rt
	}

	return &sanitized
}

// maskSecret masks a secret value for safe logging.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}

// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultAdminAddr   = "127.0.0.1:9901"
	DefaultLocalSocket = "/var/run/edgerelay/admin.sock"
	DefaultProfilePath = "/var/log/edgerelay/edgerelay.prof"

	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultReadTimeout       = 30 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 60 * time.Second
	DefaultMaxHeaderBytes    = 16 << 10

	DefaultRateLimit = 50.0
	DefaultRateBurst = 100

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Admin: AdminSection{
			Addr:              DefaultAdminAddr,
			ProfilePath:       DefaultProfilePath,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ReadTimeout:       DefaultReadTimeout,
			WriteTimeout:      DefaultWriteTimeout,
			IdleTimeout:       DefaultIdleTimeout,
			MaxHeaderBytes:    DefaultMaxHeaderBytes,
			RateLimit:         DefaultRateLimit,
			RateBurst:         DefaultRateBurst,
		},
		Server: ServerSection{
			Local: LocalConfig{
				Path: DefaultLocalSocket,
			},
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

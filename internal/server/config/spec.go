// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for edgerelay-server.
type ServerConfig struct {
	Admin  AdminSection  `koanf:"admin"`
	Server ServerSection `koanf:"server"`
	Static StaticSection `koanf:"static"`
	Log    LogSection    `koanf:"log"`
}

// AdminSection configures the admin endpoint.
type AdminSection struct {
	// Addr is the admin listener bind address. The admin endpoint is
	// meant for operators on a trusted interface; binding to loopback
	// is the safe default.
	Addr string `koanf:"addr"`

	// ProfilePath is where /cpuprofiler writes the CPU profile.
	ProfilePath string `koanf:"profile_path"`

	// ReadHeaderTimeout bounds how long the listener waits for request
	// headers on one connection.
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`

	// ReadTimeout and WriteTimeout bound one full request/response.
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// IdleTimeout closes keep-alive connections that go quiet.
	IdleTimeout time.Duration `koanf:"idle_timeout"`

	// MaxHeaderBytes caps request header size.
	MaxHeaderBytes int `koanf:"max_header_bytes"`

	// RateLimit is the per-client request rate (requests per second);
	// RateBurst is the burst allowance. Zero RateLimit disables limiting.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	Local     LocalConfig      `koanf:"local"`
	Listeners []ListenerConfig `koanf:"listeners"`
}

// LocalConfig configures the local management socket.
type LocalConfig struct {
	Path string `koanf:"path"`
}

// ListenerConfig describes one data-path listener. These are the
// listeners reported by /listeners; the admin listener is separate.
type ListenerConfig struct {
	Name string `koanf:"name"`
	Addr string `koanf:"addr"`

	// Optional TLS material; when set the listener terminates TLS and
	// the certificate shows up under /certs.
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`
}

// StaticSection holds statically configured state seeded at startup.
type StaticSection struct {
	Clusters []ClusterSeed     `koanf:"clusters"`
	Runtime  map[string]string `koanf:"runtime"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

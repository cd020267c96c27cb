package config

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Admin.Addr != DefaultAdminAddr {
		t.Errorf("Admin.Addr = %q, want %q", cfg.Admin.Addr, DefaultAdminAddr)
	}
	if cfg.Admin.ProfilePath != DefaultProfilePath {
		t.Errorf("Admin.ProfilePath = %q, want %q", cfg.Admin.ProfilePath, DefaultProfilePath)
	}
	if cfg.Server.Local.Path != DefaultLocalSocket {
		t.Errorf("Server.Local.Path = %q, want %q", cfg.Server.Local.Path, DefaultLocalSocket)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %q/%q, want info/json", cfg.Log.Level, cfg.Log.Format)
	}

	if err := Verify(cfg); err != nil {
		t.Errorf("default config must verify: %v", err)
	}
}

func TestVerify_Admin(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr string
	}{
		{
			name:    "missing addr",
			mutate:  func(c *ServerConfig) { c.Admin.Addr = "" },
			wantErr: "admin.addr is required",
		},
		{
			name:    "addr without port",
			mutate:  func(c *ServerConfig) { c.Admin.Addr = "127.0.0.1" },
			wantErr: "admin.addr",
		},
		{
			name:    "negative header cap",
			mutate:  func(c *ServerConfig) { c.Admin.MaxHeaderBytes = -1 },
			wantErr: "max_header_bytes",
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *ServerConfig) { c.Admin.RateLimit = -1 },
			wantErr: "rate_limit",
		},
		{
			name: "rate limit without burst",
			mutate: func(c *ServerConfig) {
				c.Admin.RateLimit = 10
				c.Admin.RateBurst = 0
			},
			wantErr: "rate_burst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Verify(cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestVerify_Listeners(t *testing.T) {
	cfg := Default()
	cfg.Server.Listeners = []ListenerConfig{
		{Name: "ingress", Addr: "0.0.0.0:8080"},
		{Name: "egress", Addr: "0.0.0.0:8081"},
	}
	if err := Verify(cfg); err != nil {
		t.Fatalf("valid listeners rejected: %v", err)
	}

	cfg.Server.Listeners = append(cfg.Server.Listeners, ListenerConfig{Name: "ingress", Addr: "0.0.0.0:8082"})
	if err := Verify(cfg); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("duplicate listener name not rejected: %v", err)
	}

	cfg = Default()
	cfg.Server.Listeners = []ListenerConfig{{Name: "ingress", Addr: "no-port"}}
	if err := Verify(cfg); err == nil {
		t.Error("listener without port not rejected")
	}

	cfg = Default()
	cfg.Server.Listeners = []ListenerConfig{
		{Name: "tls", Addr: "0.0.0.0:8443", TLSCertFile: "cert.pem"},
	}
	if err := Verify(cfg); err == nil || !strings.Contains(err.Error(), "tls_key_file") {
		t.Errorf("half-configured TLS not rejected: %v", err)
	}
}

func TestSanitize(t *testing.T) {
	cfg := Default()
	cfg.Static.Runtime = map[string]string{
		"upstream.api_token":  "super-secret-value",
		"circuit.max_retries": "3",
	}

	out := Sanitize(cfg)

	if v := out.Static.Runtime["upstream.api_token"]; v == "super-secret-value" {
		t.Error("sensitive runtime value not masked")
	} else if !strings.Contains(v, "*") {
		t.Errorf("masked value %q has no mask characters", v)
	}
	if out.Static.Runtime["circuit.max_retries"] != "3" {
		t.Error("non-sensitive runtime value was changed")
	}

	// Original must be untouched.
	if cfg.Static.Runtime["upstream.api_token"] != "super-secret-value" {
		t.Error("Sanitize mutated its input")
	}
}

func TestMaskSecret(t *testing.T) {
	if got := maskSecret("ab"); got != "****" {
		t.Errorf("maskSecret(short) = %q, want ****", got)
	}
	if got := maskSecret("abcdefgh"); got != "ab****gh" {
		t.Errorf("maskSecret = %q, want ab****gh", got)
	}
}

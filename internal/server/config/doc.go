// Package config provides server configuration for EdgeRelay.
//
// This package defines the server configuration structure and validation:
//
//   - spec.go: ServerConfig struct definition
//   - default.go: Default configuration values
//   - verify.go: Business validation (address formats, path checks)
//   - sanitize.go: Log sanitization (hide sensitive runtime values)
//   - cluster.go: Static cluster seed definitions
//
// Configuration is loaded via internal/infra/confloader and supports
// multiple sources: files, environment variables, and flags.
package config

// Package certinfo tracks the TLS certificates the server has loaded
// and exposes a read-only view of them to the admin endpoint.
//
// Certificates are registered by file path when listeners load their
// TLS material; /certs renders the snapshot.
package certinfo

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"
)

var (
	// ErrNoCertsFound is returned when no certificates are found in a PEM file.
	ErrNoCertsFound = errors.New("certinfo: no certificates found in PEM file")
)

// Details is the admin view of one loaded certificate.
type Details struct {
	Path                string   `json:"path"`
	SerialNumber        string   `json:"serial_number"`
	SubjectAltNames     []string `json:"subject_alt_names"`
	DaysUntilExpiration int64    `json:"days_until_expiration"`
	ValidFrom           string   `json:"valid_from"`
	ExpirationTime      string   `json:"expiration_time"`
}

// Store holds certificate details keyed by file path.
type Store struct {
	mu    sync.RWMutex
	certs map[string][]Details

	// now is swappable for tests.
	now func() time.Time
}

// NewStore creates an empty certificate store.
func NewStore() *Store {
	return &Store{
		certs: make(map[string][]Details),
		now:   time.Now,
	}
}

// AddFile parses a PEM file and records every certificate in it.
// Multiple certificates in the same file are supported.
func (s *Store) AddFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("certinfo: read cert file %s: %w", path, err)
	}
	return s.AddPEM(path, data)
}

// AddPEM records every certificate in PEM-encoded data under path.
func (s *Store) AddPEM(path string, pemData []byte) error {
	var details []Details

	for len(pemData) > 0 {
		var block *pem.Block
		block, pemData = pem.Decode(pemData)
		if block == nil {
			break
		}

		if block.Type != "CERTIFICATE" {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return fmt.Errorf("certinfo: parse certificate in %s: %w", path, err)
		}

		details = append(details, s.describe(path, cert))
	}

	if len(details) == 0 {
		return ErrNoCertsFound
	}

	s.mu.Lock()
	s.certs[path] = details
	s.mu.Unlock()
	return nil
}

// Snapshot returns every recorded certificate, sorted by path.
func (s *Store) Snapshot() []Details {
	s.mu.RLock()
	paths := make([]string, 0, len(s.certs))
	for p := range s.certs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var out []Details
	for _, p := range paths {
		out = append(out, s.certs[p]...)
	}
	s.mu.RUnlock()
	return out
}

func (s *Store) describe(path string, cert *x509.Certificate) Details {
	var sans []string
	sans = append(sans, cert.DNSNames...)
	for _, ip := range cert.IPAddresses {
		sans = append(sans, ip.String())
	}
	for _, u := range cert.URIs {
		sans = append(sans, u.String())
	}

	days := int64(cert.NotAfter.Sub(s.now()).Hours() / 24)
	if days < 0 {
		days = 0
	}

	return Details{
		Path:                path,
		SerialNumber:        fmt.Sprintf("%x", cert.SerialNumber),
		SubjectAltNames:     sans,
		DaysUntilExpiration: days,
		ValidFrom:           cert.NotBefore.UTC().Format(time.RFC3339),
		ExpirationTime:      cert.NotAfter.UTC().Format(time.RFC3339),
	}
}

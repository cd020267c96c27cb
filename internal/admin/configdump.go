package admin

import (
	"fmt"
	"sync"
)

// ConfigProvider produces one named section of the config dump.
type ConfigProvider func() (any, error)

// ConfigTracker collects config-dump providers from around the
// process. Components register a provider for the configuration they
// own; /config_dump aggregates them all.
type ConfigTracker struct {
	mu        sync.Mutex
	providers map[string]ConfigProvider
}

// NewConfigTracker creates an empty tracker.
func NewConfigTracker() *ConfigTracker {
	return &ConfigTracker{providers: make(map[string]ConfigProvider)}
}

// Add registers a provider under name. It returns a remover that
// unregisters it, and false when the name is already taken.
func (t *ConfigTracker) Add(name string, p ConfigProvider) (func(), bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.providers[name]; exists {
		return nil, false
	}
	t.providers[name] = p

	return func() {
		t.mu.Lock()
		delete(t.providers, name)
		t.mu.Unlock()
	}, true
}

// Dump invokes every provider and collects the sections by name.
func (t *ConfigTracker) Dump() (map[string]any, error) {
	t.mu.Lock()
	providers := make(map[string]ConfigProvider, len(t.providers))
	for name, p := range t.providers {
		providers[name] = p
	}
	t.mu.Unlock()

	out := make(map[string]any, len(providers))
	for name, p := range providers {
		section, err := p()
		if err != nil {
			return nil, fmt.Errorf("config dump provider %q: %w", name, err)
		}
		out[name] = section
	}
	return out, nil
}

// Package profiling wraps the runtime CPU profiler for admin control.
//
// The profiler writes to a fixed path supplied at construction; the
// admin endpoint toggles it on and off. At most one profile can be
// active per process.
package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
)

// Profiler controls CPU profiling to a configured output path.
type Profiler struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	active bool
}

// New creates a profiler writing to path.
func New(path string) *Profiler {
	return &Profiler{path: path}
}

// Start begins a CPU profile. Starting an already-active profiler is
// a no-op.
func (p *Profiler) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return nil
	}

	f, err := os.Create(p.path)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("start cpu profile: %w", err)
	}

	p.file = f
	p.active = true
	return nil
}

// Stop ends the active profile and closes the output file. Stopping
// an inactive profiler is a no-op.
func (p *Profiler) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}

	pprof.StopCPUProfile()
	p.file.Close()
	p.file = nil
	p.active = false
}

// Active reports whether a profile is currently being written.
func (p *Profiler) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Path returns the profile output path.
func (p *Profiler) Path() string { return p.path }

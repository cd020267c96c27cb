package profiling

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStartStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.prof")
	p := New(path)

	if p.Active() {
		t.Fatal("new profiler should be inactive")
	}

	if err := p.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if !p.Active() {
		t.Error("profiler should be active after Start")
	}

	// Second start is a no-op.
	if err := p.Start(); err != nil {
		t.Errorf("repeated Start() error: %v", err)
	}

	p.Stop()
	if p.Active() {
		t.Error("profiler should be inactive after Stop")
	}

	// Stop when inactive is a no-op.
	p.Stop()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("profile file not written: %v", err)
	}
}

func TestStartBadPath(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "missing", "dir", "cpu.prof"))
	if err := p.Start(); err == nil {
		p.Stop()
		t.Fatal("expected error for unwritable path")
	}
}

// Package healthcheck carries the process-wide health-check override.
//
// The admin endpoint can force inbound health checks to fail (for load
// balancer draining) or restore normal behavior. The serving path
// consults Failed() when answering health probes.
package healthcheck

import "sync/atomic"

// Override is the force-fail flag. The zero value reports healthy.
type Override struct {
	failed atomic.Bool
}

// Fail forces health checks to report failure.
func (o *Override) Fail() { o.failed.Store(true) }

// OK restores normal health-check behavior.
func (o *Override) OK() { o.failed.Store(false) }

// Failed reports whether health checks are forced to fail.
func (o *Override) Failed() bool { return o.failed.Load() }

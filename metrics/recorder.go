// Package metrics defines the observation surface of the dispatch loop and
// two implementations: a no-op default and an in-memory recorder suitable
// for tests, examples, and lightweight apps.
package metrics

import "time"

// Recorder receives one observation per dispatched message.
// Implementations must be safe for concurrent use: independent dispatcher
// instances may share a single Recorder.
//
// Keep this interface minimal and stable. If you need new capabilities later,
// introduce separate optional interfaces rather than expanding this surface.
type Recorder interface {
	// MessageHandled records a successful handler invocation and its duration.
	MessageHandled(d time.Duration)
	// MessageFailed records a failed handler invocation and its duration.
	MessageFailed(d time.Duration)
}

// Noop discards all observations. Useful as the default recorder.
type Noop struct{}

// NewNoop constructs a Recorder that discards all observations.
func NewNoop() Noop { return Noop{} }

func (Noop) MessageHandled(_ time.Duration) {}

func (Noop) MessageFailed(_ time.Duration) {}

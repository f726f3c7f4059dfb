// Package metrics records counters about synthesized failure
// messages.
package metrics

import "time"

// Message kinds passed to RecordMessage.
const (
	KindBinary = "binary"
	KindUnary  = "unary"
)

// SynthesizerMetrics defines the interface for recording
// synthesizer metrics. Implementations must be safe for concurrent
// use; RecordFallback is called from finalizers and must not
// allocate.
type SynthesizerMetrics interface {
	// RecordMessage records one synthesized message.
	RecordMessage(kind, token string, duration time.Duration)
	// RecordFallback records a finalizer fallback message.
	RecordFallback()
	// RecordRenderPanic records a recovered panic in operand
	// rendering.
	RecordRenderPanic()
}

// NoopMetrics is a no-op implementation of SynthesizerMetrics
// useful for testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordMessage(_, _ string, _ time.Duration) {}
func (NoopMetrics) RecordFallback()                            {}
func (NoopMetrics) RecordRenderPanic()                         {}

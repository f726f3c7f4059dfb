package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// CounterMetrics implements SynthesizerMetrics with in-memory
// counters. Exporting them is left to the host application.
type CounterMetrics struct {
	mu       sync.Mutex
	messages map[string]int
	kinds    map[string]*kindStats

	fallbacks atomic.Int64
	panics    atomic.Int64
}

type kindStats struct {
	count int
	total time.Duration
}

// NewCounterMetrics creates a new CounterMetrics instance.
func NewCounterMetrics() *CounterMetrics {
	return &CounterMetrics{
		messages: make(map[string]int),
		kinds:    make(map[string]*kindStats),
	}
}

func (m *CounterMetrics) RecordMessage(kind, token string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages[kind+":"+token]++
	ks, ok := m.kinds[kind]
	if !ok {
		ks = &kindStats{}
		m.kinds[kind] = ks
	}
	ks.count++
	ks.total += duration
}

func (m *CounterMetrics) RecordFallback() {
	m.fallbacks.Add(1)
}

func (m *CounterMetrics) RecordRenderPanic() {
	m.panics.Add(1)
}

// MessageCount returns the count for a kind+token combination.
func (m *CounterMetrics) MessageCount(kind, token string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messages[kind+":"+token]
}

// MessageTotal returns the number of messages of the given kind.
func (m *CounterMetrics) MessageTotal(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ks, ok := m.kinds[kind]; ok {
		return ks.count
	}
	return 0
}

// TotalDuration returns the time spent building messages of the
// given kind.
func (m *CounterMetrics) TotalDuration(kind string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ks, ok := m.kinds[kind]; ok {
		return ks.total
	}
	return 0
}

// Fallbacks returns the number of finalizer fallbacks.
func (m *CounterMetrics) Fallbacks() int64 {
	return m.fallbacks.Load()
}

// RenderPanics returns the number of recovered render panics.
func (m *CounterMetrics) RenderPanics() int64 {
	return m.panics.Load()
}

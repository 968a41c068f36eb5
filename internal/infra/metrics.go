package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety.
type Metrics struct {
	// Counters
	commandsHandled  atomic.Uint64
	commandsRejected atomic.Uint64
	eventsAppended   atomic.Uint64

	// Latency tracking
	latencySumNs atomic.Int64
	latencyCount atomic.Uint64
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordCommand records one handled command with latency.
func (m *Metrics) RecordCommand(latencyNs int64) {
	m.commandsHandled.Add(1)
	m.latencySumNs.Add(latencyNs)
	m.latencyCount.Add(1)
}

// RecordRejection records a command rejected before producing events.
func (m *Metrics) RecordRejection() {
	m.commandsRejected.Add(1)
}

// RecordEventsAppended records events appended to the log.
func (m *Metrics) RecordEventsAppended(n int) {
	m.eventsAppended.Add(uint64(n))
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	CommandsHandled  uint64
	CommandsRejected uint64
	EventsAppended   uint64
	AvgLatencyNs     int64
	Timestamp        time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avgLatency int64
	count := m.latencyCount.Load()
	if count > 0 {
		avgLatency = m.latencySumNs.Load() / int64(count)
	}

	return MetricsSnapshot{
		CommandsHandled:  m.commandsHandled.Load(),
		CommandsRejected: m.commandsRejected.Load(),
		EventsAppended:   m.eventsAppended.Load(),
		AvgLatencyNs:     avgLatency,
		Timestamp:        time.Now(),
	}
}

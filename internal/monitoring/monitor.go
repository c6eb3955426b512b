package monitoring

import (
	"sync"
	"time"
)

// Monitor collects lightweight session status for the status endpoint:
// uptime, operation counts, and last-activity timestamps. Independent of the
// Prometheus counters, which serve scraping rather than presentation.
type Monitor struct {
	mu        sync.RWMutex
	counts    map[string]int
	lastSeen  map[string]string
	startTime time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		counts:    make(map[string]int),
		lastSeen:  make(map[string]string),
		startTime: time.Now(),
	}
}

// RecordOperation counts one engine operation by name.
func (m *Monitor) RecordOperation(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[name]++
	m.lastSeen[name] = time.Now().Format(time.RFC3339)
}

// Snapshot returns the current status values.
func (m *Monitor) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int, len(m.counts))
	for k, v := range m.counts {
		counts[k] = v
	}
	lastSeen := make(map[string]string, len(m.lastSeen))
	for k, v := range m.lastSeen {
		lastSeen[k] = v
	}

	return map[string]interface{}{
		"uptime_seconds": time.Since(m.startTime).Seconds(),
		"operations":     counts,
		"last_seen":      lastSeen,
	}
}

// Reset clears the operation counts.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = make(map[string]int)
	m.lastSeen = make(map[string]string)
}

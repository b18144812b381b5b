package messaging

import (
	"sync"
	"time"

	"github.com/alem-hub/university-patterns/internal/domain/shared"
)

// EventBusMetrics tracks event bus performance metrics.
type EventBusMetrics struct {
	mu sync.RWMutex

	// Publish metrics
	PublishedTotal map[shared.EventType]int64

	// Handler execution metrics
	HandlerExecutions    int64
	HandlerSuccesses     int64
	HandlerFailures      int64
	HandlerTotalDuration time.Duration
	HandlersByType       map[shared.EventType]int64

	// Last reset time
	LastReset time.Time
}

// NewEventBusMetrics creates new metrics tracker.
func NewEventBusMetrics() *EventBusMetrics {
	return &EventBusMetrics{
		PublishedTotal: make(map[shared.EventType]int64),
		HandlersByType: make(map[shared.EventType]int64),
		LastReset:      time.Now(),
	}
}

// RecordPublish records a publish event.
func (m *EventBusMetrics) RecordPublish(eventType shared.EventType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PublishedTotal[eventType]++
}

// RecordHandlerExecution records a handler execution.
func (m *EventBusMetrics) RecordHandlerExecution(eventType shared.EventType, duration time.Duration, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.HandlerExecutions++
	m.HandlerTotalDuration += duration
	m.HandlersByType[eventType]++

	if success {
		m.HandlerSuccesses++
	} else {
		m.HandlerFailures++
	}
}

// Snapshot returns a copy of current metrics.
func (m *EventBusMetrics) Snapshot() EventBusMetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	avgDuration := time.Duration(0)
	if m.HandlerExecutions > 0 {
		avgDuration = m.HandlerTotalDuration / time.Duration(m.HandlerExecutions)
	}

	var published int64
	for _, v := range m.PublishedTotal {
		published += v
	}

	publishedByType := make(map[shared.EventType]int64, len(m.PublishedTotal))
	for k, v := range m.PublishedTotal {
		publishedByType[k] = v
	}
	handledByType := make(map[shared.EventType]int64, len(m.HandlersByType))
	for k, v := range m.HandlersByType {
		handledByType[k] = v
	}

	return EventBusMetricsSnapshot{
		TotalPublished:         published,
		PublishedByType:        publishedByType,
		HandledByType:          handledByType,
		TotalHandlerExecs:      m.HandlerExecutions,
		HandlerFailures:        m.HandlerFailures,
		HandlerSuccessRate:     m.successRate(),
		AverageHandlerDuration: avgDuration,
		LastReset:              m.LastReset,
	}
}

func (m *EventBusMetrics) successRate() float64 {
	if m.HandlerExecutions == 0 {
		return 1.0
	}
	return float64(m.HandlerSuccesses) / float64(m.HandlerExecutions)
}

// Reset clears all counters.
func (m *EventBusMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PublishedTotal = make(map[shared.EventType]int64)
	m.HandlersByType = make(map[shared.EventType]int64)
	m.HandlerExecutions = 0
	m.HandlerSuccesses = 0
	m.HandlerFailures = 0
	m.HandlerTotalDuration = 0
	m.LastReset = time.Now()
}

// EventBusMetricsSnapshot is a point-in-time snapshot of metrics.
type EventBusMetricsSnapshot struct {
	TotalPublished         int64
	PublishedByType        map[shared.EventType]int64
	HandledByType          map[shared.EventType]int64
	TotalHandlerExecs      int64
	HandlerFailures        int64
	HandlerSuccessRate     float64
	AverageHandlerDuration time.Duration
	LastReset              time.Time
}

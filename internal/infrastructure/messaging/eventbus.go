// Package messaging implements the event bus that carries university domain events.
package messaging

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alem-hub/university-patterns/internal/domain/shared"
	"github.com/alem-hub/university-patterns/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// IN-MEMORY EVENT BUS
// ══════════════════════════════════════════════════════════════════════════════

// InMemoryEventBus delivers events to subscribed handlers synchronously,
// in subscription order, on the publishing goroutine.
type InMemoryEventBus struct {
	mu          sync.RWMutex
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	logger      *logger.Logger
	metrics     *EventBusMetrics
	closed      bool
}

// Compile-time check.
var _ shared.EventBus = (*InMemoryEventBus)(nil)

// InMemoryEventBusConfig contains configuration for InMemoryEventBus.
type InMemoryEventBusConfig struct {
	// Logger for structured logging
	Logger *logger.Logger

	// EnableMetrics enables metrics collection
	EnableMetrics bool
}

// DefaultInMemoryEventBusConfig returns sensible defaults.
func DefaultInMemoryEventBusConfig() InMemoryEventBusConfig {
	return InMemoryEventBusConfig{
		EnableMetrics: true,
	}
}

// NewInMemoryEventBus creates a new in-memory event bus.
func NewInMemoryEventBus(config InMemoryEventBusConfig) *InMemoryEventBus {
	if config.Logger == nil {
		config.Logger = logger.Nop()
	}

	bus := &InMemoryEventBus{
		handlers:    make(map[shared.EventType][]shared.EventHandler),
		allHandlers: make([]shared.EventHandler, 0),
		logger:      config.Logger.With(logger.Component("eventbus")),
	}

	if config.EnableMetrics {
		bus.metrics = NewEventBusMetrics()
	}

	return bus
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return ErrNilHandler
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Debug("subscribed handler", logger.EventType(string(eventType)))

	return nil
}

// SubscribeAll registers a handler for all events.
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return ErrNilHandler
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}

	b.allHandlers = append(b.allHandlers, handler)
	b.logger.Debug("subscribed global handler")

	return nil
}

// Publish sends an event to all subscribed handlers.
// Handler failures are logged and counted; they are not returned to the publisher.
func (b *InMemoryEventBus) Publish(event shared.Event) error {
	if event == nil {
		return ErrNilEvent
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrEventBusClosed
	}

	// Collect handlers to call
	handlers := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	handlers = append(handlers, b.handlers[event.EventType()]...)
	handlers = append(handlers, b.allHandlers...)
	b.mu.RUnlock()

	if b.metrics != nil {
		b.metrics.RecordPublish(event.EventType())
	}

	if len(handlers) == 0 {
		b.logger.Debug("no handlers for event", logger.EventType(string(event.EventType())))
		return nil
	}

	for _, handler := range handlers {
		if err := b.execute(event, handler); err != nil {
			b.logger.Error("handler error",
				logger.EventType(string(event.EventType())),
				logger.Err(err),
			)
		}
	}

	return nil
}

// execute runs one handler, converting a panic into ErrHandlerPanic.
func (b *InMemoryEventBus) execute(event shared.Event, handler shared.EventHandler) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
		if b.metrics != nil {
			b.metrics.RecordHandlerExecution(event.EventType(), time.Since(start), err == nil)
		}
	}()

	return handler(event)
}

// Close shuts down the event bus. Further calls are no-ops.
func (b *InMemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	b.logger.Info("event bus closed")
	return nil
}

// Metrics returns the current metrics, or nil when metrics are disabled.
func (b *InMemoryEventBus) Metrics() *EventBusMetrics {
	return b.metrics
}

// ══════════════════════════════════════════════════════════════════════════════
// ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrEventBusClosed is returned when operations are attempted on a closed bus.
	ErrEventBusClosed = shared.NewDomainError("messaging", "Publish", shared.ErrInvalidState, "event bus is closed")

	// ErrHandlerPanic is returned when a handler panics.
	ErrHandlerPanic = errors.New("handler panicked")

	// ErrNilEvent is returned when Publish receives a nil event.
	ErrNilEvent = shared.NewDomainError("messaging", "Publish", shared.ErrInvalidInput, "event cannot be nil")

	// ErrNilHandler is returned when a nil handler is subscribed.
	ErrNilHandler = shared.NewDomainError("messaging", "Subscribe", shared.ErrInvalidInput, "handler cannot be nil")
)

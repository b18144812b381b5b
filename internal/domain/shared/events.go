package shared

import (
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types.
const (
	// University events
	EventStudentEnrolled EventType = "university.student_enrolled"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for serialization.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type          EventType `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	AggregateId   string    `json:"aggregate_id"`
	Version       int       `json:"version"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now(),
		AggregateId: aggregateID,
		Version:     1,
	}
}

// WithCorrelationID sets the correlation ID for tracing.
func (e BaseEvent) WithCorrelationID(id string) BaseEvent {
	e.CorrelationID = id
	return e
}

// ═══════════════════════════════════════════════════════════════════════════
// University Events
// ═══════════════════════════════════════════════════════════════════════════

// StudentEnrolledEvent is emitted every time a student is added to a university roster.
// The aggregate is the university; duplicates of the same student produce one event each.
type StudentEnrolledEvent struct {
	BaseEvent
	EnrollmentID     string   `json:"enrollment_id"`
	Position         int      `json:"position"`
	Categories       []string `json:"categories"`
	TestToSkipLevels bool     `json:"test_to_skip_levels"`
}

// Payload implements Event interface.
func (e StudentEnrolledEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"enrollment_id":       e.EnrollmentID,
		"position":            e.Position,
		"categories":          e.Categories,
		"test_to_skip_levels": e.TestToSkipLevels,
	}
}

// NewStudentEnrolledEvent creates a new StudentEnrolledEvent.
func NewStudentEnrolledEvent(universityID, enrollmentID string, position int, categories []string, testToSkipLevels bool) StudentEnrolledEvent {
	return StudentEnrolledEvent{
		BaseEvent:        NewBaseEvent(EventStudentEnrolled, universityID),
		EnrollmentID:     enrollmentID,
		Position:         position,
		Categories:       categories,
		TestToSkipLevels: testToSkipLevels,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Publishing
// ═══════════════════════════════════════════════════════════════════════════

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}

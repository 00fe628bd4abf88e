package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies which slice of engine state changed.
type EventType string

// Event types emitted by the learning engines.
const (
	// EventProgressChanged fires after an alphabet phase or letter transition.
	EventProgressChanged EventType = "alphabet.progress_changed"

	// EventQuizChanged fires when a quiz starts, resets, or absorbs an answer.
	EventQuizChanged EventType = "alphabet.quiz_changed"

	// EventCardsChanged fires when the card collection changes: a review,
	// a favorite toggle, initialization, or a full reset.
	EventCardsChanged EventType = "vocabulary.cards_changed"

	// EventSessionChanged fires when a study session starts or ends.
	EventSessionChanged EventType = "vocabulary.session_changed"
)

// StateEvent is one published state change. Snapshot carries an immutable
// copy of the changed state; handlers must not retain references into
// engine-owned structures.
type StateEvent struct {
	ID         uuid.UUID
	Type       EventType
	OccurredAt time.Time
	Snapshot   any
}

// NewStateEvent creates an event for the given type and snapshot.
func NewStateEvent(eventType EventType, snapshot any) *StateEvent {
	return &StateEvent{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Snapshot:   snapshot,
	}
}

// Handler receives published state events.
type Handler interface {
	HandleEvent(event *StateEvent)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(event *StateEvent)

// HandleEvent implements Handler.
func (f HandlerFunc) HandleEvent(event *StateEvent) {
	f(event)
}

// Emitter publishes state events to registered handlers.
type Emitter interface {
	RegisterHandler(handler Handler)
	Emit(event *StateEvent)
}

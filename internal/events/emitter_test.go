package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEmitterDispatchesInOrder(t *testing.T) {
	t.Parallel()
	emitter := NewInMemoryEmitter(nil)

	var order []string
	emitter.RegisterHandler(HandlerFunc(func(event *StateEvent) {
		order = append(order, "first")
	}))
	emitter.RegisterHandler(HandlerFunc(func(event *StateEvent) {
		order = append(order, "second")
	}))

	emitter.Emit(NewStateEvent(EventProgressChanged, nil))

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInMemoryEmitterDeliversEventFields(t *testing.T) {
	t.Parallel()
	emitter := NewInMemoryEmitter(nil)

	var received *StateEvent
	emitter.RegisterHandler(HandlerFunc(func(event *StateEvent) {
		received = event
	}))

	snapshot := map[string]int{"letter_index": 3}
	emitter.Emit(NewStateEvent(EventQuizChanged, snapshot))

	require.NotNil(t, received)
	assert.Equal(t, EventQuizChanged, received.Type)
	assert.Equal(t, snapshot, received.Snapshot)
	assert.False(t, received.OccurredAt.IsZero())
}

func TestInMemoryEmitterNoHandlers(t *testing.T) {
	t.Parallel()
	emitter := NewInMemoryEmitter(nil)

	// Emitting with no handlers registered must not panic.
	emitter.Emit(NewStateEvent(EventCardsChanged, nil))
}

func TestHandlerMayRegisterHandlers(t *testing.T) {
	t.Parallel()
	emitter := NewInMemoryEmitter(nil)

	called := false
	emitter.RegisterHandler(HandlerFunc(func(event *StateEvent) {
		emitter.RegisterHandler(HandlerFunc(func(event *StateEvent) {
			called = true
		}))
	}))

	emitter.Emit(NewStateEvent(EventSessionChanged, nil))
	assert.False(t, called, "late registration takes effect on the next emit")

	emitter.Emit(NewStateEvent(EventSessionChanged, nil))
	assert.True(t, called)
}

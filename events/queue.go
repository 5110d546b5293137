package events

import "github.com/lixenwraith/klondike/constants"

// EventQueue collects events produced while handling input and hands them to the
// frame loop once per tick. Single producer, single consumer: both run on the
// goroutine that owns the game, so no synchronization is needed.
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, constants.EventQueueSize)}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, constants.EventQueueSize)
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

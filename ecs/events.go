package ecs

import "github.com/milk9111/pong/common"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventHit  = "hit"
	EventGoal = "goal"
)

// HitEvent is emitted when the ball bounces off a collider.
type HitEvent struct {
	Ball   Entity
	Other  Entity
	Side   common.Side
	Paddle bool
}

// GoalEvent is emitted when the ball leaves the arena horizontally.
// Exit is SideLeft or SideRight.
type GoalEvent struct {
	Ball Entity
	Exit common.Side
}

// EventQueue is a simple FIFO queue. Events live until the scheduler finishes the tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the queued events without clearing them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// OfType returns the payloads of every queued event with the given type.
func (q *EventQueue) OfType(typ string) []any {
	if q == nil {
		return nil
	}
	var out []any
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt.Data)
		}
	}
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

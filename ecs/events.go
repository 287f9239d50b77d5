package ecs

// Queue is a per-tick FIFO of typed events. The world flushes every queue
// after the last system ran, so an event is visible for exactly one tick.
type Queue[T any] struct {
	items []T
}

// Push adds an event.
func (q *Queue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the events pushed so far this tick without consuming them.
func (q *Queue[T]) Items() []T {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *Queue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *Queue[T]) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// Package toast is the transient user-feedback queue: ordered ephemeral
// messages that expire on their own.
package toast

import (
	"sync"
	"time"
)

// Severity classifies a toast for rendering.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3500 * time.Millisecond

// Item is one queued message. IDs are unique and increasing within a
// session.
type Item struct {
	ID       int64
	Message  string
	Severity Severity
}

// Queue holds the pending toasts. All methods are non-blocking; removal is
// purely timer-driven.
type Queue struct {
	mu     sync.Mutex
	items  []Item
	nextID int64
	ttl    time.Duration
	sink   func(Item)
}

// New returns a queue with the default expiry.
func New() *Queue {
	return &Queue{ttl: DefaultTTL}
}

// NewWithTTL returns a queue whose toasts expire after ttl. Used by tests
// and the terminal renderer.
func NewWithTTL(ttl time.Duration) *Queue {
	return &Queue{ttl: ttl}
}

// SetSink registers a callback invoked for every shown toast, so a consumer
// (the CLI) can render messages as they happen instead of polling Items.
func (q *Queue) SetSink(sink func(Item)) {
	q.mu.Lock()
	q.sink = sink
	q.mu.Unlock()
}

// Show appends a message and schedules its removal.
func (q *Queue) Show(message string, severity Severity) int64 {
	q.mu.Lock()
	id := q.nextID
	q.nextID++
	item := Item{ID: id, Message: message, Severity: severity}
	q.items = append(q.items, item)
	sink := q.sink
	q.mu.Unlock()

	if sink != nil {
		sink(item)
	}
	time.AfterFunc(q.ttl, func() { q.Dismiss(id) })
	return id
}

// Dismiss removes a toast by id. Dismissing an id that is already gone is
// a no-op.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, it := range q.items {
		if it.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// Items returns a snapshot of the pending toasts in display order.
func (q *Queue) Items() []Item {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Item, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) Success(msg string) { q.Show(msg, SeveritySuccess) }
func (q *Queue) Error(msg string)   { q.Show(msg, SeverityError) }
func (q *Queue) Info(msg string)    { q.Show(msg, SeverityInfo) }

// Package realtime provides a lightweight in-process publish/subscribe hub
// used to fan out data-change notifications to multiple listeners: the
// search cache (cleared on change so stale results are not served for a
// full TTL) and WebSocket sessions watching for updates.
//
// Delivery is best effort: a listener whose buffer is full drops the event
// rather than backpressuring the publisher. There is no persistence or
// replay; the stream is ephemeral.
package realtime

import (
	"sync"
	"time"
)

// ChangeEvent describes one mutation of the underlying data, at table
// granularity. Consumers treat it as an invalidation hint, not as a
// replayable record of what changed.
type ChangeEvent struct {
	Entity         string    `json:"entity"`
	OrganizationID string    `json:"organization_id,omitempty"`
	Action         string    `json:"action"`
	Time           time.Time `json:"time"`
}

// Actions carried by ChangeEvent.
const (
	ActionImport = "import"
	ActionReload = "reload"
)

// Hub is a concurrency-safe fan-out dispatcher. Each listener receives
// events on its own buffered channel.
type Hub struct {
	mu        sync.RWMutex
	listeners map[uint64]chan ChangeEvent
	nextID    uint64
	bufSize   int
}

// NewHub constructs a hub with the given per-listener buffer size.
// A bufSize <= 0 falls back to 16.
func NewHub(bufSize int) *Hub {
	if bufSize <= 0 {
		bufSize = 16
	}
	return &Hub{
		listeners: make(map[uint64]chan ChangeEvent),
		bufSize:   bufSize,
	}
}

// Subscribe adds a listener and returns its id and receive channel.
// Callers must Unsubscribe(id) when done.
func (h *Hub) Subscribe() (uint64, <-chan ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan ChangeEvent, h.bufSize)
	h.listeners[id] = ch
	return id, ch
}

// Unsubscribe removes a listener and closes its channel. Unknown ids are
// ignored, so calling it twice is safe.
func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.listeners[id]; ok {
		delete(h.listeners, id)
		close(ch)
	}
}

// Publish delivers an event to every listener, dropping it for listeners
// whose buffers are full.
func (h *Hub) Publish(event ChangeEvent) {
	if event.Time.IsZero() {
		event.Time = time.Now()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.listeners {
		select {
		case ch <- event:
		default:
		}
	}
}

// ListenerCount returns the number of active listeners.
func (h *Hub) ListenerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

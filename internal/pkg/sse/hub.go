package sse

import (
	"sync"
)

// Event is one message delivered to a session's subscribers
type Event struct {
	SessionID string
	Event     string
	Data      interface{}
}

// Hub fans events out to the streams open for each session
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	bufferSize  int
}

// NewHub creates a hub whose subscriber channels hold bufferSize events
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = 10
	}
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers a stream for a session. The cleanup function closes the
// channel and may be called more than once.
func (h *Hub) Subscribe(sessionID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.bufferSize)
	if h.subscribers[sessionID] == nil {
		h.subscribers[sessionID] = make(map[chan Event]struct{})
	}
	h.subscribers[sessionID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs, ok := h.subscribers[sessionID]
		if !ok {
			return
		}
		if _, ok := subs[ch]; !ok {
			return
		}
		delete(subs, ch)
		close(ch)
		if len(subs) == 0 {
			delete(h.subscribers, sessionID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to every stream of a session without blocking.
// Slow subscribers drop events once their buffer is full.
func (h *Hub) Publish(sessionID string, event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for ch := range h.subscribers[sessionID] {
		select {
		case ch <- event:
			delivered++
		default:
		}
	}
	return delivered
}

// Drop closes every stream of a session
func (h *Hub) Drop(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subscribers[sessionID] {
		close(ch)
	}
	delete(h.subscribers, sessionID)
}

// DropAll closes every stream of every session and returns how many it closed
func (h *Hub) DropAll() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	closed := 0
	for sessionID, subs := range h.subscribers {
		for ch := range subs {
			close(ch)
			closed++
		}
		delete(h.subscribers, sessionID)
	}
	return closed
}

// subscriberCount returns the number of open streams for a session
func (h *Hub) subscriberCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[sessionID])
}

// totalSubscribers returns the number of open streams across all sessions
func (h *Hub) totalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}

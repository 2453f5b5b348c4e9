package hub

import (
	"context"
	"log/slog"
)

// Subscriber is a single client receiving broadcast payloads from the Hub.
type Subscriber struct {
	// Send is a buffered channel of outbound messages. The Hub closes it when
	// the subscriber is dropped or the Hub stops.
	Send chan []byte
}

// Hub fans byte payloads out to every registered subscriber. A single
// goroutine (Run) owns the subscriber set.
type Hub struct {
	subscribers map[*Subscriber]bool

	broadcast  chan []byte
	register   chan *Subscriber
	unregister chan *Subscriber
	count      chan chan int
	done       chan struct{}

	logger *slog.Logger
}

// New creates a Hub. Call Run before using it.
func New(name string) *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		broadcast:   make(chan []byte),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		count:       make(chan chan int),
		done:        make(chan struct{}),
		logger:      slog.Default().With("service", "hub", "hub", name),
	}
}

// Run processes registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for s := range h.subscribers {
				close(s.Send)
				delete(h.subscribers, s)
			}
			h.logger.Debug("Hub stopped")
			return

		case s := <-h.register:
			h.subscribers[s] = true
			h.logger.Debug("Subscriber registered", "total_subscribers", len(h.subscribers))

		case s := <-h.unregister:
			if h.subscribers[s] {
				delete(h.subscribers, s)
				close(s.Send)
				h.logger.Debug("Subscriber unregistered", "total_subscribers", len(h.subscribers))
			}

		case reply := <-h.count:
			reply <- len(h.subscribers)

		case msg := <-h.broadcast:
			for s := range h.subscribers {
				select {
				case s.Send <- msg:
				default:
					// A full buffer means the client is stuck; drop it.
					close(s.Send)
					delete(h.subscribers, s)
					h.logger.Warn("Unregistering slow subscriber", "total_subscribers", len(h.subscribers))
				}
			}
		}
	}
}

// Register adds s. It reports false if the Hub has stopped.
func (h *Hub) Register(s *Subscriber) bool {
	select {
	case h.register <- s:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes s and closes its channel if it is still registered.
func (h *Hub) Unregister(s *Subscriber) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Broadcast queues msg for every subscriber.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// Len returns the number of registered subscribers, or 0 once stopped.
func (h *Hub) Len() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

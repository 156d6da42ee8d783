package websocket

import (
	"context"
	"log"
	"sync"
)

// Hub maintains the set of active clients and broadcasts messages to them
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	// Inbound messages from the stream consumer
	broadcast chan []byte

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	totalMessages int64
	metricsMu     sync.Mutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.clientsMu.Lock()
			h.clients[c] = true
			h.clientsMu.Unlock()

		case c := <-h.unregister:
			h.removeClient(c)

		case msg := <-h.broadcast:
			h.fanOut(msg)
		}
	}
}

// Register adds c to the hub. It reports false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes c from the hub.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues msg for every connected client. It drops the message
// when the queue is full.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("⚠️  Broadcast buffer full, dropping message")
	}
}

// ClientCount returns the number of active clients
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// MessagesSent returns how many messages reached at least one client.
func (h *Hub) MessagesSent() int64 {
	h.metricsMu.Lock()
	defer h.metricsMu.Unlock()
	return h.totalMessages
}

func (h *Hub) removeClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// fanOut sends msg to each client without blocking; a client whose
// buffer is full is disconnected.
func (h *Hub) fanOut(msg []byte) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	sent := 0
	for c := range h.clients {
		select {
		case c.send <- msg:
			sent++
		default:
			log.Printf("⚠️  websocket client buffer full, disconnecting")
			delete(h.clients, c)
			close(c.send)
		}
	}

	if sent > 0 {
		h.metricsMu.Lock()
		h.totalMessages++
		h.metricsMu.Unlock()
	}
}

func (h *Hub) shutdown() {
	close(h.done)
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

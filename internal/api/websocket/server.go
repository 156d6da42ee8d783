package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/fortuna/athena/internal/publisher"
)

const (
	readCount = 100
	readBlock = time.Second
)

// Message is the envelope written to subscribers.
type Message struct {
	Type      string                `json:"type"`
	Payload   publisher.ScrapeEvent `json:"payload"`
	Timestamp time.Time             `json:"timestamp"`
}

// Server represents the WebSocket server
type Server struct {
	server   *http.Server
	hub      *Hub
	redis    *redis.Client
	stream   string
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// NewServer creates a new WebSocket server reading scrape events from
// client. An empty or "*" origin list accepts every origin.
func NewServer(client *redis.Client, origins []string) *Server {
	s := &Server{
		hub:    NewHub(),
		redis:  client,
		stream: publisher.ScrapeStream,
		logger: log.New(log.Writer(), "[websocket] ", log.LstdFlags),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(origins),
	}
	return s
}

func originChecker(origins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		allowed[o] = true
	}
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed[origin]
	}
}

// Handler returns the websocket routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/scrape", s.handleScrape)
	mux.HandleFunc("/ws/health", s.handleHealth)
	return mux
}

// Start runs the hub and stream consumer and serves until Shutdown.
func (s *Server) Start(ctx context.Context, port string) error {
	go s.hub.Run(ctx)
	if s.redis != nil {
		go s.consume(ctx)
	}

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: s.Handler(),
	}

	s.logger.Printf("WebSocket server listening on :%s", port)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleScrape upgrades the connection and subscribes it to scrape events
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	if !s.hub.Register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// handleHealth returns WebSocket server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":        "healthy",
		"clients":       s.hub.ClientCount(),
		"messages_sent": s.hub.MessagesSent(),
	})
}

// consume tails the scrape stream from the newest entry and broadcasts
// each event.
func (s *Server) consume(ctx context.Context) {
	lastID := "$"
	for {
		if ctx.Err() != nil {
			return
		}

		streams, err := s.redis.XRead(ctx, &redis.XReadArgs{
			Streams: []string{s.stream, lastID},
			Count:   readCount,
			Block:   readBlock,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			s.logger.Printf("⚠️  Stream read error (%s): %v", s.stream, err)
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				lastID = msg.ID
				event, err := publisher.DecodeScrapeEvent(msg)
				if err != nil {
					s.logger.Printf("⚠️  %v", err)
					continue
				}
				s.BroadcastEvent(event)
			}
		}
	}
}

// BroadcastEvent sends one scrape event to every connected client.
func (s *Server) BroadcastEvent(event publisher.ScrapeEvent) {
	data, err := json.Marshal(Message{
		Type:      "scrape_event",
		Payload:   event,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Printf("⚠️  encoding event: %v", err)
		return
	}
	s.hub.Broadcast(data)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

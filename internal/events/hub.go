// Package events broadcasts comparison lifecycle events to websocket
// subscribers so the frontend can react without polling.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// Event types published by the API layer.
const (
	TypeDocumentsReceived   = "documents.received"
	TypeComparisonStarted   = "comparison.started"
	TypeComparisonCompleted = "comparison.completed"
)

// Event is one broadcast message.
type Event struct {
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// NewEvent stamps an event with the current time.
func NewEvent(eventType string, payload map[string]any) Event {
	return Event{Type: eventType, Timestamp: time.Now().UTC(), Payload: payload}
}

// Hub fans events out to connected clients. Slow consumers are dropped
// rather than allowed to stall the broadcast loop.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	clients    map[*Client]struct{}
	log        zerolog.Logger

	// OnClientCount, when set before Run, is invoked from the hub loop with
	// the connected-client count after every change.
	OnClientCount func(n int)
}

// NewHub creates an event hub; call Run to start it.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 16),
		clients:    make(map[*Client]struct{}),
		log:        logger,
	}
}

// Run processes hub traffic until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.close()
			}
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.notifyCount()
			h.log.Debug().Int("clients", len(h.clients)).Msg("websocket client connected")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.close()
				h.notifyCount()
				h.log.Debug().Int("clients", len(h.clients)).Msg("websocket client disconnected")
			}

		case event := <-h.broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				h.log.Error().Err(err).Str("type", event.Type).Msg("failed to marshal event")
				continue
			}
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Consumer is not keeping up; drop it.
					delete(h.clients, client)
					client.close()
					h.notifyCount()
					h.log.Warn().Msg("dropped slow websocket client")
				}
			}
		}
	}
}

func (h *Hub) notifyCount() {
	if h.OnClientCount != nil {
		h.OnClientCount(len(h.clients))
	}
}

// Broadcast queues an event for all connected clients. Broadcasting never
// blocks the caller: if the hub queue is full the event is discarded.
func (h *Hub) Broadcast(event Event) {
	select {
	case h.broadcast <- event:
	default:
		h.log.Warn().Str("type", event.Type).Msg("event bus full, event discarded")
	}
}

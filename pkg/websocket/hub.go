package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hub tracks connected clients and fans collection snapshots out to all of
// them. Every client sees every change; there is no per-user routing.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	Register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		Register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("websocket client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Debug("websocket client disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast pushes an envelope to every connected client.
func (h *Hub) Broadcast(messageType string, payload interface{}) error {
	message, err := marshalEnvelope(messageType, payload)
	if err != nil {
		h.logger.Error("failed to marshal websocket envelope", zap.Error(err))
		return err
	}
	h.broadcast <- message
	return nil
}

// SendTo delivers an envelope to a single client, used for the initial
// snapshots right after a connection is established.
func (h *Hub) SendTo(client *Client, messageType string, payload interface{}) error {
	message, err := marshalEnvelope(messageType, payload)
	if err != nil {
		return err
	}
	select {
	case client.Send <- message:
		return nil
	default:
		return nil
	}
}

func marshalEnvelope(messageType string, payload interface{}) ([]byte, error) {
	return json.Marshal(Envelope{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
}

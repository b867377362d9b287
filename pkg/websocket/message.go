package websocket

import "time"

// Envelope wraps every message pushed to clients. Type tells the frontend
// which collection snapshot (or notification) the payload carries.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

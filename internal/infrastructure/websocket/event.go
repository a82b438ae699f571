package websocket

import "encoding/json"

// Event types carried over the socket.
const (
	EventChatMessage = "chat_message"
	EventNewMessage  = "new_message"
	EventError       = "error"
)

// Event is the envelope for every frame in both directions.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ChatMessagePayload is the client-to-server payload of a chat_message event.
type ChatMessagePayload struct {
	MatchID string `json:"match_id"`
	Content string `json:"content"`
}

// ErrorPayload is sent back on the same connection when an inbound event
// cannot be processed. The connection stays open.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent marshals payload into an event frame ready to send.
func NewEvent(eventType string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Event{
		Type:    eventType,
		Payload: raw,
	})
}

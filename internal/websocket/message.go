package websocket

import (
	"encoding/json"
	"time"
)

type MessageType string

// Change-feed events pushed to connected browsers so open views refresh.
const (
	TypeDocumentSaved   MessageType = "document_saved"
	TypeDocumentDeleted MessageType = "document_deleted"
	TypeProjectSaved    MessageType = "project_saved"
	TypePing            MessageType = "ping"
	TypePong            MessageType = "pong"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

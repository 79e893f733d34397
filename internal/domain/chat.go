package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatRetention caps per-room chat history; older messages are dropped.
const ChatRetention = 200

type ChatMessage struct {
	ID      uuid.UUID `json:"id"`
	Sender  string    `json:"sender"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"timestamp"`
}

// LogEntry is one line of the append-only auction event log.
type LogEntry struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	At      time.Time `json:"timestamp"`
}

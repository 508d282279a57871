package domain

import (
	"time"
)

// Sender identifies which side of the chat produced a turn.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Turn is a single message in an assistant conversation. Turns live only in
// memory for the lifetime of the conversation and are never persisted.
type Turn struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

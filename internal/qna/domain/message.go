package domain

import "time"

// Message is an in-app notification, e.g. "someone answered your question".
type Message struct {
	ID         string
	ReceiverID string
	Content    string
	Read       bool
	CreatedAt  time.Time
}

package entity

import (
	"fmt"
	"time"
)

// Message is one entry in a conversation between two participants.
// Conversations are append-only ordered sequences, created lazily on the
// first message and never deleted.
type Message struct {
	ID        string    `json:"id"` // Generated id derived from send time, e.g. "msg_1700000000000".
	From      string    `json:"from"`
	To        string    `json:"to"`
	Message   string    `json:"message"`
	OrderID   string    `json:"orderId,omitempty"` // Optional related order.
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NewMessageID derives the message id from its send time.
func NewMessageID(sentAt time.Time) string {
	return fmt.Sprintf("msg_%d", sentAt.UnixMilli())
}

// ConversationKey canonicalizes the unordered pair of participant ids so
// that ConversationKey(a, b) == ConversationKey(b, a).
func ConversationKey(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + "_" + b
}

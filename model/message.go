package model

import (
	"strings"
	"time"
)

// Archive is the root of an exported chat-history JSON document. Keys
// missing from the export decode to zero values, not errors.
type Archive struct {
	UserID        string         `json:"userId"`
	ExportDate    string         `json:"exportDate"`
	Conversations []Conversation `json:"conversations"`
}

// Conversation is one thread within the archive.
type Conversation struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	MessageList []Message `json:"MessageList"`
}

// Message is a single raw message as stored in the export.
type Message struct {
	From                string `json:"from"`
	Content             string `json:"content"`
	OriginalArrivalTime string `json:"originalarrivaltime"`
}

// Sender returns the sender identifier with any protocol prefix (such as
// "8:") removed. Only the part after the first ":" is compared.
func (m Message) Sender() string {
	if _, after, ok := strings.Cut(m.From, ":"); ok {
		return after
	}
	return m.From
}

// FilteredRecord is a selected message after normalization, ready for
// rendering. Rebuilt on every run; it has no persistent identity.
type FilteredRecord struct {
	DisplayDate string
	SentAt      time.Time
	HasInstant  bool
	Content     string
}

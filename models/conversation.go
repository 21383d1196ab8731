package models

import "time"

// ConversationMode distinguishes how a conversation was held.
type ConversationMode string

const (
	ModeText  ConversationMode = "text"
	ModeVoice ConversationMode = "voice"
)

// Conversation is one chat thread as shown in the conversation list.
// ID is either a server-assigned UUID or a client-generated provisional id
// (UUIDv7, time-sortable) used until the server confirms creation. At most
// one of the two ever appears in a list at any time.
type Conversation struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Mode         ConversationMode `json:"mode"`
	IsPinned     bool             `json:"is_pinned"`
	MessageCount int              `json:"message_count"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// MessageRole identifies the author of a message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Message is one entry of a conversation's message list. Ids are generated
// client-side up front for both the user message and the anticipated
// assistant reply, so identity stays stable while the round-trip is
// outstanding. Ordering within a conversation is insertion order.
type Message struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversation_id"`
	Role           MessageRole `json:"role"`
	Content        string      `json:"content"`
	Sources        []Source    `json:"sources,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Source is a retrieval citation attached to an assistant message.
type Source struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
	Snippet  string `json:"snippet,omitempty"`
}

package models

import "time"

// SendMessageRequest carries one user turn to the server. ConversationID is
// empty for the first message of a new conversation; in that case the server
// creates the conversation and returns its id. UserMessageID and
// AssistantMessageID are client-generated so message identity survives the
// round-trip.
type SendMessageRequest struct {
	Text               string `json:"text"`
	ConversationID     string `json:"conversation_id,omitempty"`
	Persona            string `json:"persona,omitempty"`
	StrictMode         bool   `json:"strict_mode"`
	UserMessageID      string `json:"user_message_id,omitempty"`
	AssistantMessageID string `json:"assistant_message_id,omitempty"`
}

// SendMessageResponse is the server's reply to a SendMessageRequest.
type SendMessageResponse struct {
	ConversationID string   `json:"conversation_id"`
	ResponseText   string   `json:"response_text"`
	Sources        []Source `json:"sources,omitempty"`
	Success        bool     `json:"success"`
	Error          string   `json:"error,omitempty"`
}

// ConversationPatch is a partial conversation update. Nil fields are left
// untouched by the server.
type ConversationPatch struct {
	Title    *string `json:"title,omitempty"`
	IsPinned *bool   `json:"is_pinned,omitempty"`
}

// TruncateRequest instructs the server to retain only the listed message ids
// of a conversation. Retention is by id, never by index or count: indices are
// not stable across concurrent mutation.
type TruncateRequest struct {
	ConversationID string   `json:"conversation_id"`
	KeepIDs        []string `json:"keep_ids"`
}

// UploadFileResponse is the server's reply to a file upload. A non-empty
// Error with a non-empty FileID means the bytes were accepted but downstream
// processing failed.
type UploadFileResponse struct {
	FileID      string    `json:"file_id"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
	Error       string    `json:"error,omitempty"`
}

// ConversationDetail is the full server-side view of one conversation.
type ConversationDetail struct {
	Conversation Conversation `json:"conversation"`
	Messages     []Message    `json:"messages"`
}

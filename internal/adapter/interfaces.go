// Package adapter provides the transport layer for communicating with the
// samvaad server.
//
// The primary abstraction is [Gateway], which decouples the synchronization
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPGateway]) built on resty with automatic bearer
// token attachment and context-based request cancellation.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/atharva-again/samvaad/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway defines transport-agnostic communication with the samvaad server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type Gateway interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the gateway, or an
	// empty string if no token has been set yet.
	Token() string

	// SendMessage delivers one user turn. When req.ConversationID is empty
	// the server creates the conversation and returns its id in the
	// response. The call honours ctx cancellation; a cancelled call returns
	// a context error, never a partial response.
	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.SendMessageResponse, error)

	// ListConversations fetches the user's full conversation list.
	ListConversations(ctx context.Context) ([]models.Conversation, error)

	// CreateConversation creates an empty conversation with the given title
	// and mode and returns the server-side record.
	CreateConversation(ctx context.Context, title string, mode models.ConversationMode) (models.Conversation, error)

	// GetConversation fetches one conversation together with its full
	// message list in display order.
	GetConversation(ctx context.Context, id string) (models.ConversationDetail, error)

	// PatchConversation applies a partial update (title and/or pin flag).
	PatchConversation(ctx context.Context, id string, patch models.ConversationPatch) error

	// DeleteConversation removes one conversation and its messages.
	DeleteConversation(ctx context.Context, id string) error

	// DeleteConversations removes a batch of conversations in one request.
	DeleteConversations(ctx context.Context, ids []string) error

	// TruncateMessages instructs the server to retain only the messages
	// whose ids are listed, dropping everything else in the conversation.
	TruncateMessages(ctx context.Context, conversationID string, keepIDs []string) error

	// ListFiles fetches the user's full uploaded-file list.
	ListFiles(ctx context.Context) ([]models.FileRecord, error)

	// UploadFile streams one file to the server. A returned error means the
	// transport failed; a nil error with a non-empty response Error field
	// means the server accepted the bytes but downstream processing failed.
	UploadFile(ctx context.Context, upload models.FileUpload) (models.UploadFileResponse, error)

	// DeleteFile removes one uploaded file.
	DeleteFile(ctx context.Context, id string) error

	// DeleteFiles removes a batch of uploaded files in one request.
	DeleteFiles(ctx context.Context, ids []string) error

	// RenameFile changes the stored filename of an uploaded file.
	RenameFile(ctx context.Context, id string, name string) error
}

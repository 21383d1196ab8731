package store

import (
	"context"
	"time"

	"github.com/atharva-again/samvaad/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConversationRepository is the user-scoped local cache of conversation rows.
type ConversationRepository interface {
	// Save upserts one or more conversation rows for userID.
	Save(ctx context.Context, userID string, conversations ...models.Conversation) error

	// GetAll returns every cached conversation for userID, pinned first,
	// then most recently updated.
	GetAll(ctx context.Context, userID string) ([]models.Conversation, error)

	// ReplaceAll transactionally clears userID's rows and inserts the given
	// set. Used by full-list refreshes.
	ReplaceAll(ctx context.Context, userID string, conversations []models.Conversation) error

	// ReconcileID atomically renames provisionalID to serverID for userID:
	// the conversation row, the parent id of its messages, and the persisted
	// active-conversation pointer all move in one transaction.
	ReconcileID(ctx context.Context, userID, provisionalID, serverID string) error

	// Patch applies a partial update (title and/or pin flag) to one row.
	Patch(ctx context.Context, userID, id string, patch models.ConversationPatch) error

	// Delete removes one conversation row and its cached messages.
	Delete(ctx context.Context, userID, id string) error

	// DeleteBatch removes several conversation rows and their messages in
	// one transaction.
	DeleteBatch(ctx context.Context, userID string, ids []string) error

	// PurgeUser removes every conversation row of userID.
	PurgeUser(ctx context.Context, userID string) error
}

// MessageRepository is the user-scoped local cache of message rows. Messages
// keep their insertion order via a per-conversation sequence number.
type MessageRepository interface {
	// Append inserts one message at the end of its conversation.
	Append(ctx context.Context, userID string, msg models.Message) error

	// GetForConversation returns the cached messages of one conversation in
	// insertion order.
	GetForConversation(ctx context.Context, userID, conversationID string) ([]models.Message, error)

	// ReplaceForConversation transactionally swaps the cached message list
	// of one conversation for the given slice, preserving slice order.
	ReplaceForConversation(ctx context.Context, userID, conversationID string, msgs []models.Message) error

	// Delete removes one cached message. Used to reverse an optimistic
	// append after a transport failure.
	Delete(ctx context.Context, userID, id string) error

	// DeleteForConversation removes all cached messages of one conversation.
	DeleteForConversation(ctx context.Context, userID, conversationID string) error

	// PurgeUser removes every message row of userID.
	PurgeUser(ctx context.Context, userID string) error
}

// FileRepository is the user-scoped local cache of uploaded-file records.
type FileRepository interface {
	// Save upserts one file record (write-through after a confirmed upload).
	Save(ctx context.Context, userID string, file models.FileRecord) error

	// GetAll returns every cached file record for userID, newest first.
	GetAll(ctx context.Context, userID string) ([]models.FileRecord, error)

	// ReplaceAll transactionally clears userID's rows and inserts the given
	// set. Used by full-sync refreshes.
	ReplaceAll(ctx context.Context, userID string, files []models.FileRecord) error

	// Patch applies a partial update (filename and/or status) to one row.
	Patch(ctx context.Context, userID, id string, fields map[string]any) error

	// Delete removes one file record.
	Delete(ctx context.Context, userID, id string) error

	// DeleteBatch removes several file records in one transaction.
	DeleteBatch(ctx context.Context, userID string, ids []string) error

	// PurgeUser removes every file row of userID.
	PurgeUser(ctx context.Context, userID string) error
}

// UIState is the minimal state-container subset persisted across restarts.
type UIState struct {
	ActiveConversationID string
	FilesSyncedAt        time.Time
}

// UIStateRepository persists the per-user UI state row.
type UIStateRepository interface {
	// Get returns userID's persisted UI state, or a zero value when none
	// has been stored yet.
	Get(ctx context.Context, userID string) (UIState, error)

	// Save upserts userID's UI state row.
	Save(ctx context.Context, userID string, state UIState) error

	// PurgeUser removes userID's UI state row.
	PurgeUser(ctx context.Context, userID string) error
}

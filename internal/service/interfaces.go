// Package service implements the two client-side synchronization units:
// conversations (with their messages) and uploaded source files. Both units
// mutate the observable state container optimistically, call the remote
// gateway, and reconcile or roll back when the network answers.
package service

import (
	"context"
	"time"

	"github.com/atharva-again/samvaad/models"
)

// IDGenerator produces globally unique, time-ordered identifiers for
// provisional conversation, message, and file ids.
type IDGenerator interface {
	Generate() string
}

// Hasher computes a deterministic, content-only digest of a binary blob.
type Hasher interface {
	Digest(data []byte) string
}

// ConversationService owns the conversation list and the active
// conversation's message list. Every mutation is optimistic: the container
// is updated before the network round-trip, and restored from a snapshot if
// the round-trip fails.
type ConversationService interface {
	// SendMessage appends the user's turn to the active conversation and
	// requests the assistant's reply. With no active conversation it first
	// creates one optimistically under a provisional id; once the server
	// confirms, every reference to the provisional id is atomically
	// rewritten to the server-assigned id. A cancelled or superseded call
	// resolves as a no-op.
	SendMessage(ctx context.Context, text string) error

	// StopGeneration cancels the outstanding send, if any. Cancellation is
	// not a failure: no error notice is produced and no rollback happens.
	StopGeneration()

	// LoadCached populates the container's conversation list from the local
	// cache without touching the network. Called on startup.
	LoadCached(ctx context.Context) error

	// LoadConversations fetches the conversation list from the server. The
	// list is fetched at most once per session unless force is true.
	LoadConversations(ctx context.Context, force bool) error

	// LoadConversation opens the conversation and loads its messages,
	// serving cached rows first. Concurrent duplicate fetches for the same
	// id are collapsed; a failed fetch leaves previously loaded messages
	// untouched.
	LoadConversation(ctx context.Context, id string) error

	// EditMessage removes the message and everything after it from the
	// local list, then instructs the server to retain only the ids that
	// remain.
	EditMessage(ctx context.Context, messageID string) error

	// Rename changes a conversation's title optimistically; on failure the
	// previous list snapshot is restored verbatim.
	Rename(ctx context.Context, id, title string) error

	// SetPinned pins or unpins a conversation optimistically, re-sorting so
	// pinned items precede unpinned; on failure the previous list snapshot
	// is restored verbatim.
	SetPinned(ctx context.Context, id string, pinned bool) error

	// Delete removes a conversation optimistically; on failure the previous
	// list snapshot is restored verbatim.
	Delete(ctx context.Context, id string) error

	// DeleteSelected removes every conversation in the current selection
	// with the same optimistic/rollback pattern. The selection is cleared
	// on commit regardless of outcome.
	DeleteSelected(ctx context.Context) error
}

// BatchSummary aggregates the outcome of one upload batch. Callers get one
// summary per batch rather than one notice per file.
type BatchSummary struct {
	Uploaded   int
	Failed     int
	Duplicates int
	Rejected   []string
}

// FileService owns the uploaded-file list: stale-while-revalidate loading,
// duplicate-aware uploads, and deletion.
type FileService interface {
	// LoadFiles serves cached rows synchronously when any exist and kicks a
	// background refresh; with an empty cache it fetches from the network
	// and populates the cache afterwards.
	LoadFiles(ctx context.Context) error

	// Refresh fetches the full file list from the server and overwrites
	// both the container and the local cache.
	Refresh(ctx context.Context) error

	// RefreshIfStale refreshes only when the last full sync is older than
	// threshold. A non-positive threshold uses the configured default.
	RefreshIfStale(ctx context.Context, threshold time.Duration) error

	// UploadFiles validates, hashes, and classifies the candidates:
	// oversized files are rejected before any hashing (reported through an
	// error wrapping [ErrFileTooLarge] per offending file), name and
	// content collisions are queued for user resolution, and unique files
	// are uploaded concurrently. The summary always covers the whole batch.
	UploadFiles(ctx context.Context, uploads []models.FileUpload) (BatchSummary, error)

	// ResolveDuplicate settles a queued collision. With replace=true the
	// new version is uploaded and confirmed before the existing record is
	// deleted, never the reverse; with replace=false both are kept.
	ResolveDuplicate(ctx context.Context, filename string, replace bool) error

	// RenameFile changes a stored filename optimistically, restoring the
	// previous name on failure.
	RenameFile(ctx context.Context, id, name string) error

	// DeleteFiles removes the records from the container, the local cache,
	// and the remote store, clearing any selection referencing them.
	DeleteFiles(ctx context.Context, ids ...string) error
}

// RevalidateJob periodically refreshes the cached file list in the
// background.
type RevalidateJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
